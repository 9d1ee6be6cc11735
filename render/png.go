package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
)

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(bw, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return bw.Flush()
}
