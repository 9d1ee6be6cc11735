package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"honnef.co/go/bubble"
	"honnef.co/go/bubble/message"
)

// SVGOptions controls SVG output.
type SVGOptions struct {
	// Stroke, if not nil, outlines each bubble in this color.
	Stroke      *color.RGBA
	StrokeWidth float64
	// Precision is the number of decimal places of path coordinates. Zero
	// writes coordinates with full precision.
	Precision int
}

func (opts SVGOptions) strokeAttrs() string {
	if opts.Stroke == nil {
		return ""
	}
	w := opts.StrokeWidth
	if w <= 0 {
		w = 1
	}
	return fmt.Sprintf(` stroke="%s" stroke-width="%s"`, FormatColor(*opts.Stroke), strconv.FormatFloat(w, 'f', -1, 64))
}

// WriteSVG writes the bubbles as a standalone SVG document of the given
// size. Text asks for the Go font, falling back to sans-serif, so viewers
// without it may wrap lines differently from the measured layout.
func (r *Renderer) WriteSVG(w io.Writer, bubbles []Bubble, width, height float64, opts SVGOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n", width, height, width, height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", FormatColor(r.palette.Background))
	popts := bubble.SVGOptions{MaxPrecision: opts.Precision}
	for _, b := range bubbles {
		fill, text := r.palette.Received, r.palette.ReceivedText
		if b.Message.Type == message.Sent {
			fill, text = r.palette.Sent, r.palette.SentText
		}
		fmt.Fprintf(bw, `<path fill="%s"%s d="`, FormatColor(fill), opts.strokeAttrs())
		if err := r.Outline(b).WriteSVG(bw, popts); err != nil {
			return err
		}
		bw.WriteString("\"/>\n")
		for i, line := range b.Lines {
			x, y := r.textOrigin(b, i)
			fmt.Fprintf(bw, `<text x="%g" y="%g" font-family="Go, sans-serif" font-size="%g" fill="%s">`, x, y, r.layout.FontSize, FormatColor(text))
			if err := xml.EscapeText(bw, []byte(line)); err != nil {
				return err
			}
			bw.WriteString("</text>\n")
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// WriteOutlineSVG writes a standalone SVG document containing a single path.
// The document's view box is the path's bounding box, grown by margin on
// every side.
func WriteOutlineSVG(w io.Writer, p bubble.BezPath, fill color.RGBA, margin float64, opts SVGOptions) error {
	box := p.BoundingBox().Inflate(margin, margin)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="%g %g %g %g">`+"\n",
		box.Width(), box.Height(), box.X0, box.Y0, box.Width(), box.Height())
	fmt.Fprintf(bw, `<path fill="%s"%s d="`, FormatColor(fill), opts.strokeAttrs())
	if err := p.WriteSVG(bw, bubble.SVGOptions{MaxPrecision: opts.Precision}); err != nil {
		return err
	}
	bw.WriteString("\"/>\n</svg>\n")
	return bw.Flush()
}
