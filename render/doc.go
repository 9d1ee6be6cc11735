// Package render lays out chat messages as bubbles and draws them, either
// rasterized into an image or as SVG.
//
// Text is measured and drawn with a [font.Face], by default Go Regular.
// Bubble outlines come from [bubble.Style.Outline] and are filled with
// golang.org/x/image/vector.
//
// A [Renderer] is not safe for concurrent use, because font faces aren't.
package render
