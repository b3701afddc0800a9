package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"PixelPad/internal/raster"
)

// ExportPDF draws the artwork onto a single A4 page, one filled rect per
// opaque cell, scaled to fit the page with a margin. Transparent cells are
// left as paper.
func ExportPDF(path string, b *raster.Buffer) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	const margin = 15.0
	availW := pageW - 2*margin
	availH := pageH - 2*margin

	cell := availW / float64(b.Width)
	if h := availH / float64(b.Height); h < cell {
		cell = h
	}
	offX := margin + (availW-cell*float64(b.Width))/2
	offY := margin + (availH-cell*float64(b.Height))/2

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.At(x, y)
			if c.A == 0 {
				continue
			}
			p.SetFillColor(int(c.R), int(c.G), int(c.B))
			p.Rect(offX+float64(x)*cell, offY+float64(y)*cell, cell, cell, "F")
		}
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
