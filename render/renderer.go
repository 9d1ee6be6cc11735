package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/bubble"
	"honnef.co/go/bubble/message"
)

// Options configures a [Renderer]. Zero fields are replaced with the
// package defaults.
type Options struct {
	// Style shapes the outlines. If nil, [bubble.DefaultStyle] is used. The
	// zero Style is valid and draws square bubbles without tails.
	Style   *bubble.Style
	Layout  Layout
	Palette Palette
	// Face is used to measure and draw text. If nil, Go Regular at
	// Layout.FontSize is used.
	Face font.Face
}

// Renderer lays out and draws conversations.
type Renderer struct {
	style   bubble.Style
	layout  Layout
	palette Palette
	m       *Measurer
}

func New(opts Options) (*Renderer, error) {
	style := bubble.DefaultStyle
	if opts.Style != nil {
		style = *opts.Style
	}
	if opts.Layout == (Layout{}) {
		opts.Layout = DefaultLayout
	}
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette
	}
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}
	if err := opts.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if opts.Face == nil {
		face, err := DefaultFace(opts.Layout.FontSize)
		if err != nil {
			return nil, err
		}
		opts.Face = face
	}
	return &Renderer{
		style:   style,
		layout:  opts.Layout,
		palette: opts.Palette,
		m:       NewMeasurer(opts.Face),
	}, nil
}

func (r *Renderer) Style() bubble.Style { return r.style }
func (r *Renderer) Layout() Layout      { return r.layout }
func (r *Renderer) Palette() Palette    { return r.palette }
func (r *Renderer) Measurer() *Measurer { return r.m }

// Bubble is a message placed on the canvas.
type Bubble struct {
	Message message.Message
	// Rect is the body of the bubble, excluding the tail.
	Rect  bubble.Rect
	Tail  bubble.TailSide
	Lines []string
}

// Outline returns the bubble's outline in canvas coordinates.
func (r *Renderer) Outline(b Bubble) bubble.BezPath {
	origin := bubble.NewRectFromOrigin(bubble.Point{}, b.Rect.Size())
	return r.style.Outline(origin, b.Tail).Transform(bubble.Translate(bubble.Vec2(b.Rect.Origin())))
}

func (r *Renderer) wrapWidth(canvasWidth float64) float64 {
	w := r.layout.MaxWidth
	if canvasWidth > 0 {
		w = min(w, canvasWidth-2*r.layout.Margin)
	}
	return max(1, w-2*r.layout.PaddingX)
}

func (r *Renderer) bubbleSize(lines []string) bubble.Size {
	ts := r.m.Size(lines)
	// Empty and single-line bubbles are as high as a line holding ".".
	ts.Height = max(ts.Height, r.m.Size([]string{"."}).Height)
	sz := ts.Pad(r.layout.PaddingX, r.layout.PaddingY)
	sz.Width = max(sz.Width, r.layout.MinWidth)
	return sz.Ceil()
}

// BubbleRect returns the rectangle, at the origin, of a bubble holding text
// wrapped to the layout's maximum width.
func (r *Renderer) BubbleRect(text string) bubble.Rect {
	lines := r.m.Wrap(text, r.wrapWidth(0))
	return bubble.NewRectFromOrigin(bubble.Point{}, r.bubbleSize(lines))
}

// Arrange places the visible messages on a canvas of the given width, top to
// bottom. Sent messages are aligned to the right, received messages to the
// left. tails must be nil or have one entry per message; if nil, the tails
// are computed with [message.Tails]. Arrange returns the bubbles and the
// height of the canvas.
//
// Arrange panics if tails is non-nil and its length differs from msgs.
func (r *Renderer) Arrange(msgs []message.Message, tails []message.TailPosition, width float64) ([]Bubble, float64) {
	if tails == nil {
		tails = message.Tails(msgs)
	}
	if len(tails) != len(msgs) {
		panic(fmt.Sprintf("got %d tails for %d messages", len(tails), len(msgs)))
	}

	l := r.layout
	var out []Bubble
	y := l.Margin
	for i, msg := range msgs {
		if !msg.Visible() {
			continue
		}
		lines := r.m.Wrap(msg.Content, r.wrapWidth(width))
		sz := r.bubbleSize(lines)
		x := l.Margin
		if msg.Type == message.Sent {
			x = width - l.Margin - sz.Width
		}
		out = append(out, Bubble{
			Message: msg,
			Rect:    bubble.NewRectFromOrigin(bubble.Pt(x, y), sz),
			Tail:    tails[i].Resolve(msg.Type),
			Lines:   lines,
		})
		y += sz.Height + l.Spacing
	}
	if len(out) > 0 {
		y -= l.Spacing
	}
	return out, math.Ceil(y + l.Margin)
}

func (r *Renderer) colors(typ message.Type) (fill, text image.Image) {
	if typ == message.Sent {
		return image.NewUniform(r.palette.Sent), image.NewUniform(r.palette.SentText)
	}
	return image.NewUniform(r.palette.Received), image.NewUniform(r.palette.ReceivedText)
}

// Draw draws the bubbles onto dst.
func (r *Renderer) Draw(dst draw.Image, bubbles []Bubble) {
	for _, b := range bubbles {
		fill, text := r.colors(b.Message.Type)
		FillPath(dst, r.Outline(b), fill)
		d := &font.Drawer{
			Dst:  dst,
			Src:  text,
			Face: r.m.Face(),
		}
		for i, line := range b.Lines {
			x, y := r.textOrigin(b, i)
			d.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
			d.DrawString(line)
		}
	}
}

// textOrigin returns the start of the baseline of the i'th line of b.
func (r *Renderer) textOrigin(b Bubble, i int) (float64, float64) {
	x := b.Rect.X0 + r.layout.PaddingX
	y := b.Rect.Y0 + r.layout.PaddingY + r.m.Ascent() + float64(i)*r.m.LineHeight()
	return x, y
}

// DrawConversation renders msgs onto a new image of the given width. The
// height is chosen to fit all visible messages.
func (r *Renderer) DrawConversation(msgs []message.Message, tails []message.TailPosition, width int) *image.RGBA {
	bubbles, height := r.Arrange(msgs, tails, float64(width))
	img := image.NewRGBA(image.Rect(0, 0, width, int(height)))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.palette.Background), image.Point{}, draw.Src)
	r.Draw(img, bubbles)
	return img
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
