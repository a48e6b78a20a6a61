// Command genref renders every scene in testcases.All and stores the
// result as a reference PNG image.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := run(); err != nil {
		log.Fatalf("genref: %v", err)
	}
}

func run() error {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := writeReference(sc, filepath.Join(refDir, name+".png")); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			log.Printf("wrote %s (%dx%d, %d steps, %s)",
				name, sc.Width, sc.Height, sc.Steps, sc.Palette)
		}
	}
	return nil
}

func writeReference(sc testcases.Scene, fname string) (err error) {
	pal, err := fractal.ParsePalette(sc.Palette)
	if err != nil {
		return err
	}
	cfg := fractal.Config{Width: sc.Width, Height: sc.Height, Frame: sc.Frame}
	img, err := fractal.Render(cfg, sc.Steps, pal.Func())
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
