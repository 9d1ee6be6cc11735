// Package bubble draws the outlines of chat bubbles: rounded rectangles with
// an optional speech tail protruding from the bottom-left or bottom-right
// corner.
//
// # Outlines
//
// [Style.Outline] turns a [Rect] and a [TailSide] into a [BezPath]. The
// result depends only on its inputs and the style's four parameters, see
// [Style]. [Outline] uses [DefaultStyle]. The corner radius is clamped to
// half of the rectangle's smaller side, which keeps the corner curves from
// crossing each other on small rectangles.
//
// The tail is built from three quadratic Béziers: one bulging out past the
// side of the rectangle to the tail's tip, one curving back in to a notch a
// third of the corner radius inside the side, and one curving out again to
// rejoin the bottom edge. The left tail is the exact mirror image of the
// right tail.
//
// # Paths
//
// Paths consist of lines and quadratic Béziers. [BezPath] represents them as
// a slice of path elements, akin to drawing commands in graphics APIs like
// PostScript, consisting of pen moves ([MoveTo]) and drawing commands
// ([LineTo], [QuadTo], [ClosePath]). Each command moves the current position
// of the pen, which acts as the start position of the following command.
//
// Segments ([PathSegment]), on the other hand, are self-contained
// descriptions of a portion of the path, containing explicit start points.
// [Segments] converts elements to segments.
//
// Paths can compute their tight bounding box, signed area and winding
// numbers, can be transformed with an [Affine], reversed, flattened to lines
// for rasterization ([Flatten]) and serialized as SVG path data ([SVG]).
//
// # Coordinates
//
// All coordinates are in a y-down space: the origin is the top-left corner
// and y grows downward, as in most UI toolkits and image formats. In that
// space, outlines run clockwise and have positive signed area.
package bubble
