// seehuhn.de/go/fractal - escape-time rendering of the Mandelbrot set
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf renders every scene in testcases.All into a grayscale
// PDF file.  Each pixel becomes a filled square of 1pt, and horizontal
// runs of equal gray are merged into a single rectangle.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	scale := flag.Float64("scale", 4, "size of one pixel in PDF points")
	flag.Parse()

	if err := run(*outDir, *scale); err != nil {
		log.Fatalf("genpdf: %v", err)
	}
}

func run(outDir string, scale float64) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(sc, pdfPath, scale); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			log.Printf("wrote %s", pdfPath)
		}
	}
	return nil
}

func generatePDF(sc testcases.Scene, pdfPath string, scale float64) error {
	pal, err := fractal.ParsePalette(sc.Palette)
	if err != nil {
		return err
	}
	sim, err := fractal.NewSim(fractal.Config{
		Width:  sc.Width,
		Height: sc.Height,
		Frame:  sc.Frame,
	})
	if err != nil {
		return err
	}
	for range sc.Steps {
		sim.Update()
	}
	fb := make([]uint32, sim.Len())
	sim.Draw(fb, pal.Func())

	paper := &pdf.Rectangle{
		URx: float64(sc.Width) * scale,
		URy: float64(sc.Height) * scale,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, the framebuffer starts with the top row.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, float64(sc.Height) * scale})

	for y := range sc.Height {
		row := fb[y*sc.Width : (y+1)*sc.Width]
		for x0 := 0; x0 < len(row); {
			g := luminance(row[x0])
			x1 := x0 + 1
			for x1 < len(row) && luminance(row[x1]) == g {
				x1++
			}
			page.SetFillColor(color.DeviceGray(float64(g) / 255))
			page.Rectangle(float64(x0), float64(y), float64(x1-x0), 1)
			page.Fill()
			x0 = x1
		}
	}

	return page.Close()
}

// luminance converts a packed pixel to an 8-bit gray value (Rec. 601).
func luminance(px uint32) uint8 {
	r, g, b := fractal.Unpack(px)
	y := (299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000
	return uint8(y)
}
