package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/bubble"
)

// DefaultFace returns Go Regular at the given size in pixels.
func DefaultFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Measurer measures and wraps text set in a single face.
type Measurer struct {
	face       font.Face
	ascent     float64
	lineHeight float64
}

func NewMeasurer(face font.Face) *Measurer {
	m := face.Metrics()
	return &Measurer{
		face:       face,
		ascent:     fixedToFloat(m.Ascent),
		lineHeight: fixedToFloat(m.Height),
	}
}

func (m *Measurer) Face() font.Face { return m.face }

// Ascent is the distance from the top of a line to its baseline.
func (m *Measurer) Ascent() float64 { return m.ascent }

func (m *Measurer) LineHeight() float64 { return m.lineHeight }

// Width returns the advance width of s.
func (m *Measurer) Width(s string) float64 {
	return fixedToFloat(font.MeasureString(m.face, s))
}

// Size returns the size of the block of lines.
func (m *Measurer) Size(lines []string) bubble.Size {
	var w float64
	for _, l := range lines {
		w = max(w, m.Width(l))
	}
	return bubble.Sz(w, float64(len(lines))*m.lineHeight)
}

// Wrap breaks text into lines no wider than maxWidth. Explicit newlines are
// kept. Lines break between words; a word that doesn't fit on a line of its
// own is broken between runes. Empty text has no lines.
func (m *Measurer) Wrap(text string, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for para := range strings.SplitSeq(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var cur string
		for _, w := range words {
			cand := w
			if cur != "" {
				cand = cur + " " + w
			}
			if m.Width(cand) <= maxWidth {
				cur = cand
				continue
			}
			if cur != "" {
				lines = append(lines, cur)
			}
			cur = w
			for m.Width(cur) > maxWidth {
				head, tail := m.split(cur, maxWidth)
				if tail == "" {
					break
				}
				lines = append(lines, head)
				cur = tail
			}
		}
		lines = append(lines, cur)
	}
	return lines
}

// split returns the longest prefix of s that fits in maxWidth, and the rest.
// The prefix has at least one rune.
func (m *Measurer) split(s string, maxWidth float64) (string, string) {
	_, n := utf8.DecodeRuneInString(s)
	for i := n; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if m.Width(s[:i+size]) > maxWidth {
			break
		}
		i += size
		n = i
	}
	return s[:n], s[n:]
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
