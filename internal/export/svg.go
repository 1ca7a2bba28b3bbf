package export

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"

	"ShapeBoard/internal/state"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders the document as an SVG image.
func WriteSVG(w io.Writer, doc state.Document) error {
	var buf bytes.Buffer
	pw, ph := pageSize(doc)

	canvas := svg.New(&buf)
	canvas.Start(int(math.Ceil(pw)), int(math.Ceil(ph)))
	canvas.Title(doc.Name)
	canvas.Rect(0, 0, int(math.Ceil(pw)), int(math.Ceil(ph)), "fill:#ffffff")

	for _, s := range doc.Shapes {
		id := fmt.Sprintf(`id="shape-%d"`, s.ID)
		style := "fill:" + svgColor(s.Color)
		x, y := round(s.X), round(s.Y)
		switch s.Type {
		case state.Square:
			canvas.Rect(x, y, state.ShapeWidth, state.ShapeHeight, id, style)
		case state.Circle:
			canvas.Circle(x+state.Radius, y+state.Radius, state.Radius, id, style)
		case state.Triangle, state.Trapezoid:
			outline := state.Outline(s.Type)
			xs := make([]int, len(outline))
			ys := make([]int, len(outline))
			for i, pt := range outline {
				xs[i] = round(s.X + pt.X)
				ys[i] = round(s.Y + pt.Y)
			}
			canvas.Polygon(xs, ys, id, style)
		default:
			log.Printf("[EXPORT] Skipping shape %d of unknown type %q", s.ID, s.Type)
		}
	}
	canvas.End()

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write svg for %q: %w", doc.Name, err)
	}
	return nil
}

// svgColor only lets well-formed hex colors into the style attribute.
func svgColor(s string) string {
	c, ok := state.ParseColor(s)
	if !ok {
		c.R, c.G, c.B = uint8(fallbackColor[0]), uint8(fallbackColor[1]), uint8(fallbackColor[2])
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func round(v float64) int {
	return int(math.Round(v))
}
