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

// EscapeRadius2 is the squared magnitude an orbit must strictly exceed to
// count as escaped.  An iterate with |z|² == 4 has not escaped.
const EscapeRadius2 = 4.0

// Cell holds the escape-time state of one pixel.
//
// Once Escaped is set, Step leaves the cell unchanged.
type Cell struct {
	C  complex128 // sample point, fixed for the lifetime of the cell
	Z  complex128 // current iterate, starts at 0
	DC complex128 // seed of the derivative recurrence, always 1
	DZ complex128 // dz/dc along the orbit, starts at 1

	Iters   int  // number of steps applied
	Escaped bool // |Z|² has exceeded EscapeRadius2
}

// NewCell returns the initial state for the sample point c.
func NewCell(c complex128) Cell {
	return Cell{
		C:  c,
		DC: 1,
		DZ: 1,
	}
}

// Step applies one iteration of z ← z² + c together with the chain rule
// dz ← 2·dz·z + dc.
func (cell *Cell) Step() {
	if cell.Escaped {
		return
	}

	cell.Iters++

	c, z, dc, dz := cell.C, cell.Z, cell.DC, cell.DZ
	z2 := z*z + c
	dz2 := 2*dz*z + dc

	if abs2(z2) > EscapeRadius2 {
		cell.Escaped = true
	}
	cell.Z = z2
	cell.DZ = dz2
}

// abs2 returns |z|².
func abs2(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
