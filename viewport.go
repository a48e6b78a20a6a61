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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// MaxCells is the largest number of grid cells a Sim will allocate.
// Pixel indices must fit into 32 bits.
const MaxCells = math.MaxUint32

var (
	// ErrDimensions is returned for a pixel grid with a non-positive side.
	ErrDimensions = errors.New("invalid pixel dimensions")

	// ErrFrame is returned for an empty, inverted or non-finite frame.
	ErrFrame = errors.New("invalid frame")

	// ErrTooLarge is returned when Width*Height exceeds MaxCells.
	ErrTooLarge = errors.New("pixel grid too large")
)

// Config describes which part of the complex plane is sampled, and onto
// how many pixels.
type Config struct {
	// Width and Height are the dimensions of the pixel grid.
	// Both must be > 0.
	Width, Height int

	// Frame is the sampled rectangle in the complex plane.  The lower-left
	// corner (LLx, LLy) is the point with the smallest real and imaginary
	// parts, the upper-right corner (URx, URy) the one with the largest.
	// Must satisfy URx > LLx and URy > LLy, with all coordinates finite.
	Frame rect.Rect
}

// Validate checks that c describes a usable pixel grid and frame.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrDimensions)
	}
	if int64(c.Width) > MaxCells/int64(c.Height) {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrTooLarge)
	}

	f := c.Frame
	for _, v := range []float64{f.LLx, f.LLy, f.URx, f.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite coordinate %g: %w", v, ErrFrame)
		}
	}
	if !(f.URx > f.LLx) || !(f.URy > f.LLy) {
		return fmt.Errorf("(%g,%g)..(%g,%g): %w", f.LLx, f.LLy, f.URx, f.URy, ErrFrame)
	}
	return nil
}

// Len returns the number of pixels in the grid.
func (c Config) Len() int {
	return c.Width * c.Height
}

// IdxToComplex returns the sample point for the pixel with the given
// row-major index.  Row 0 is the top of the image and maps to the largest
// imaginary part; column 0 maps to the smallest real part.
func (c Config) IdxToComplex(idx int) complex128 {
	x := idx % c.Width
	y := idx / c.Width

	nx := float64(x) / float64(c.Width)
	ny := float64(y) / float64(c.Height)

	// bigger imaginary parts at the top
	ny = 1 - ny

	re := nx*c.Frame.URx + (1-nx)*c.Frame.LLx
	im := ny*c.Frame.URy + (1-ny)*c.Frame.LLy
	return complex(re, im)
}

// SquareFrame returns the square frame centered at center, extending r in
// each direction.
func SquareFrame(center vec.Vec2, r float64) rect.Rect {
	return rect.Rect{
		LLx: center.X - r,
		LLy: center.Y - r,
		URx: center.X + r,
		URy: center.Y + r,
	}
}

// DefaultFrame returns the frame showing the whole Mandelbrot set in its
// usual orientation.
func DefaultFrame() rect.Rect {
	return rect.Rect{LLx: -2.5, LLy: -1.25, URx: 1.0, URy: 1.25}
}

// FitDims returns the largest pixel dimensions which fit into maxW×maxH
// and have the same aspect ratio as frame.
func FitDims(frame rect.Rect, maxW, maxH float64) (w, h int) {
	boxRatio := maxW / maxH
	frameRatio := (frame.URx - frame.LLx) / (frame.URy - frame.LLy)
	if math.IsNaN(boxRatio) || math.IsNaN(frameRatio) {
		panic("fractal: aspect ratio is not comparable")
	}

	var x, y float64
	switch {
	case frameRatio > boxRatio:
		// frame is wider than the box
		x = maxW
		y = maxW / frameRatio
	case frameRatio < boxRatio:
		x = maxH * frameRatio
		y = maxH
	default:
		x = maxW
		y = maxH
	}

	return max(1, int(math.Round(x))), max(1, int(math.Round(y)))
}
