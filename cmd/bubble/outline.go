package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/bubble"
	"honnef.co/go/bubble/render"
)

var (
	outlineX         float64
	outlineY         float64
	outlineWidth     float64
	outlineHeight    float64
	outlineTail      string
	outlineFormat    string
	outlinePrecision int
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the outline of a single bubble",
	Long: `Prints the outline of a bubble with the given rectangle and tail.

Formats:
  svg       a standalone SVG document
  path      SVG path data, suitable for the d attribute
  commands  one drawing command per line

Example:
  bubble outline --width 120 --height 40 --tail left --format path`,
	Args: cobra.NoArgs,
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().Float64Var(&outlineX, "x", 0, "Left edge of the rectangle")
	outlineCmd.Flags().Float64Var(&outlineY, "y", 0, "Top edge of the rectangle")
	outlineCmd.Flags().Float64Var(&outlineWidth, "width", 100, "Width of the rectangle")
	outlineCmd.Flags().Float64Var(&outlineHeight, "height", 40, "Height of the rectangle")
	outlineCmd.Flags().StringVar(&outlineTail, "tail", "right", "Tail side: left, right or none")
	outlineCmd.Flags().StringVarP(&outlineFormat, "format", "f", "svg", "Output format: svg, path or commands")
	outlineCmd.Flags().IntVar(&outlinePrecision, "precision", 2, "Decimal places of coordinates, 0 for full precision")
}

func runOutline(cmd *cobra.Command, args []string) error {
	tail, err := bubble.ParseTailSide(outlineTail)
	if err != nil {
		return err
	}
	r := bubble.NewRect(outlineX, outlineY, outlineWidth, outlineHeight)
	if err := bubble.ValidateRect(r); err != nil {
		return err
	}
	p := cfg.Style.Outline(r, tail)
	logger.Debug("Generated outline",
		zap.Stringer("tail", tail),
		zap.Float64("radius", cfg.Style.Radius(r)),
		zap.Int("elements", len(p)))

	out := cmd.OutOrStdout()
	switch outlineFormat {
	case "svg":
		palette, err := cfg.Palette()
		if err != nil {
			return err
		}
		return render.WriteOutlineSVG(out, p, palette.Sent, 1, render.SVGOptions{Precision: outlinePrecision})
	case "path":
		if err := p.WriteSVG(out, bubble.SVGOptions{MaxPrecision: outlinePrecision}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	case "commands":
		for _, el := range p {
			if _, err := fmt.Fprintln(out, el); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", outlineFormat)
	}
}
