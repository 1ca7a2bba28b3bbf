package export

import (
	"fmt"
	"io"
	"log"

	"ShapeBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// Smallest page the renderers produce, matching the default canvas.
const (
	MinPageWidth  = 800
	MinPageHeight = 600
)

var fallbackColor = [3]int{0x88, 0x88, 0x88}

// WritePDF renders the document as a single-page PDF sized to hold every
// shape, one point per canvas pixel.
func WritePDF(w io.Writer, doc state.Document) error {
	pw, ph := pageSize(doc)
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	p.SetTitle(doc.Name, true)
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	for _, s := range doc.Shapes {
		r, g, b := pdfColor(s.Color)
		p.SetFillColor(r, g, b)
		switch s.Type {
		case state.Square:
			p.Rect(s.X, s.Y, state.ShapeWidth, state.ShapeHeight, "F")
		case state.Circle:
			p.Circle(s.X+state.Radius, s.Y+state.Radius, state.Radius, "F")
		case state.Triangle, state.Trapezoid:
			outline := state.Outline(s.Type)
			pts := make([]gofpdf.PointType, 0, len(outline))
			for _, pt := range outline {
				pts = append(pts, gofpdf.PointType{X: s.X + pt.X, Y: s.Y + pt.Y})
			}
			p.Polygon(pts, "F")
		default:
			log.Printf("[EXPORT] Skipping shape %d of unknown type %q", s.ID, s.Type)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf for %q: %w", doc.Name, err)
	}
	return nil
}

func pdfColor(s string) (int, int, int) {
	c, ok := state.ParseColor(s)
	if !ok {
		return fallbackColor[0], fallbackColor[1], fallbackColor[2]
	}
	return int(c.R), int(c.G), int(c.B)
}

// pageSize is the extent of the drawing, never smaller than the default canvas.
func pageSize(doc state.Document) (float64, float64) {
	w, h := float64(MinPageWidth), float64(MinPageHeight)
	for _, s := range doc.Shapes {
		w = max(w, s.X+state.ShapeWidth)
		h = max(h, s.Y+state.ShapeHeight)
	}
	return w, h
}
