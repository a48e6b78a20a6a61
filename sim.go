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

package fractal

import (
	"fmt"
	"image"
)

// Sim owns one Cell per pixel and advances all of them in lock step.
//
// The per-cell work inside Update and Draw may run in parallel, but a Sim
// itself is not safe for concurrent use: Reset, Update and Draw must not
// overlap.
type Sim struct {
	// Exec runs the per-cell work of Update and Draw.
	// It may be changed between calls.
	Exec Executor

	config Config
	grid   []Cell
	steps  int
}

// NewSim allocates the grid for cfg and seeds every cell with its sample
// point.  Exec is set to a Parallel executor using all available CPUs.
func NewSim(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sim{
		Exec:   Parallel{},
		config: cfg,
		grid:   make([]Cell, cfg.Len()),
	}
	s.seed()
	return s, nil
}

// Reset discards all iteration state and returns every cell to iteration 0.
func (s *Sim) Reset() {
	s.grid = s.grid[:s.config.Len()]
	s.seed()
	s.steps = 0
}

func (s *Sim) seed() {
	s.exec().Run(len(s.grid), func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			s.grid[idx] = NewCell(s.config.IdxToComplex(idx))
		}
	})
}

// Update advances every cell which has not yet escaped by one step.
func (s *Sim) Update() {
	s.exec().Run(len(s.grid), func(lo, hi int) {
		cells := s.grid[lo:hi]
		for i := range cells {
			if !cells[i].Escaped {
				cells[i].Step()
			}
		}
	})
	s.steps++
}

// Draw evaluates color for every cell and stores the packed result in fb,
// row-major with the top row first.  See [Pack] for the pixel layout.
//
// Draw panics without writing anything if len(fb) differs from the number
// of cells.
func (s *Sim) Draw(fb []uint32, color ColorFunc) {
	if len(fb) != len(s.grid) {
		panic(fmt.Sprintf("fractal: framebuffer has %d pixels, grid has %d",
			len(fb), len(s.grid)))
	}

	s.exec().Run(len(s.grid), func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			fb[idx] = Pack(color(&s.grid[idx]))
		}
	})
}

// DrawImage draws the grid into a new opaque RGBA image.
func (s *Sim) DrawImage(color ColorFunc) *image.RGBA {
	fb := make([]uint32, len(s.grid))
	s.Draw(fb, color)

	img := image.NewRGBA(image.Rect(0, 0, s.config.Width, s.config.Height))
	for i, px := range fb {
		r, g, b := Unpack(px)
		pix := img.Pix[4*i : 4*i+4 : 4*i+4]
		pix[0] = r
		pix[1] = g
		pix[2] = b
		pix[3] = 0xFF
	}
	return img
}

// Render creates a Sim for cfg, applies the given number of updates and
// draws the result with color.
func Render(cfg Config, steps int, color ColorFunc) (*image.RGBA, error) {
	s, err := NewSim(cfg)
	if err != nil {
		return nil, err
	}
	for range steps {
		s.Update()
	}
	return s.DrawImage(color), nil
}

// Config returns the configuration the Sim was created with.
func (s *Sim) Config() Config {
	return s.config
}

// Len returns the number of cells.
func (s *Sim) Len() int {
	return len(s.grid)
}

// Cell returns a copy of the cell with the given row-major index.
func (s *Sim) Cell(idx int) Cell {
	return s.grid[idx]
}

// Steps returns the number of Update calls since the Sim was created or
// last reset.
func (s *Sim) Steps() int {
	return s.steps
}

// Escaped returns the number of cells whose orbit has escaped.
func (s *Sim) Escaped() int {
	n := 0
	for i := range s.grid {
		if s.grid[i].Escaped {
			n++
		}
	}
	return n
}

func (s *Sim) exec() Executor {
	if s.Exec == nil {
		return Sequential{}
	}
	return s.Exec
}
