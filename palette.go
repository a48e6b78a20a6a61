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
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// A ColorFunc maps the state of a cell to a color with components in
// [0, 1].  Color functions must not modify the cell, and must be safe for
// concurrent use.
type ColorFunc func(cell *Cell) RGB

// colorTable is the cyclic palette for iteration counts, taken from
// https://stackoverflow.com/a/16505538 .
var colorTable = [16]color.RGBA{
	{66, 30, 15, 255},
	{25, 7, 26, 255},
	{9, 1, 47, 255},
	{4, 4, 73, 255},
	{0, 7, 100, 255},
	{12, 44, 138, 255},
	{24, 82, 177, 255},
	{57, 125, 209, 255},
	{134, 181, 229, 255},
	{211, 236, 248, 255},
	{241, 233, 191, 255},
	{248, 201, 95, 255},
	{255, 170, 0, 255},
	{204, 128, 0, 255},
	{153, 87, 0, 255},
	{106, 52, 3, 255},
}

// TableColor returns entry i mod 16 of the banded color table.
func TableColor(i int) RGB {
	i %= len(colorTable)
	if i < 0 {
		i += len(colorTable)
	}
	c := colorTable[i]
	return RGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// Lighting parameters for the Lambert palettes.
const (
	lightX, lightY, lightZ = -2.1, 0.75, 4.0

	// lightPower is divided by the distance between light and sample point.
	lightPower = 0.75
)

// interiorColor is the base color of non-escaped cells in LambertColors.
var interiorColor = RGB{205.0 / 255, 92.0 / 255, 92.0 / 255}.Scale(0.8)

// PlainColors colors escaped cells by their iteration count, using the
// banded color table.  Cells which have not escaped are black.
func PlainColors(cell *Cell) RGB {
	if cell.Escaped {
		return TableColor(cell.Iters)
	}
	return Gray(0)
}

// SmoothStripes shades escaped cells with (1 + cos 2πx)/2, where
// x = log2(log2(|z|²) / 2^iters).  Cells which have not escaped are white.
func SmoothStripes(cell *Cell) RGB {
	if !cell.Escaped {
		return Gray(1)
	}

	// log2(log2(|z|²)/2^n) = log2(log2(|z|²)) - n, without overflowing 2^n
	x := math.Log2(math.Log2(abs2(cell.Z))) - float64(cell.Iters)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Gray(1)
	}
	return Gray((1 + math.Cos(2*math.Pi*x)) / 2)
}

// LambertColors multiplies the banded colors of PlainColors by a
// Lambertian light term.  Cells which have not escaped use a dim red base
// color instead of black.
func LambertColors(cell *Cell) RGB {
	base := interiorColor
	if cell.Escaped {
		base = TableColor(cell.Iters)
	}
	return base.Scale(lambert(cell))
}

// WhiteLambert shows the Lambertian light term on white for escaped cells.
// Cells which have not escaped are black.
func WhiteLambert(cell *Cell) RGB {
	if !cell.Escaped {
		return Gray(0)
	}
	return Gray(lambert(cell))
}

// DerivativeColors indexes the banded color table by 30·Re(dz).  Escape
// status is ignored.
func DerivativeColors(cell *Cell) RGB {
	x := 30 * real(cell.DZ)

	var idx int
	switch {
	case !(x > 0):
		idx = 0
	case x >= math.MaxUint64:
		idx = int(uint64(math.MaxUint64) % uint64(len(colorTable)))
	default:
		idx = int(uint64(x) % uint64(len(colorTable)))
	}
	return TableColor(idx)
}

// lambert returns the light intensity in [0, 1] for a cell, treating
// z/dz as the direction of the surface normal.
func lambert(cell *Cell) float64 {
	n := surfaceNormal(cell)

	dx := lightX - real(cell.C)
	dy := lightY - imag(cell.C)
	dz := lightZ
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

	t := positive(lightPower / dist)
	cos := positive((n[0]*dx + n[1]*dy + n[2]*dz) / dist)
	return min(1, t*cos)
}

// surfaceNormal returns (ux, uy, 1) for the unit vector u in the
// direction of z/dz.  If this direction is undefined, the normal points
// straight up.
func surfaceNormal(cell *Cell) [3]float64 {
	up := [3]float64{0, 0, 1}
	if cell.DZ == 0 {
		return up
	}

	q := cell.Z / cell.DZ
	u := vec.Vec2{X: real(q), Y: imag(q)}
	l := u.Length()
	if !(l > 0) || math.IsInf(l, 0) {
		return up
	}
	u = u.Mul(1 / l)
	return [3]float64{u.X, u.Y, 1}
}

// positive returns max(0, x), mapping NaN to 0.
func positive(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Palette selects one of the built-in color functions.
type Palette int

// The built-in palettes.
const (
	PalettePlain Palette = iota
	PaletteStripes
	PaletteLambert
	PaletteWhiteLambert
	PaletteDerivative
)

// Palettes lists all built-in palettes in order.
var Palettes = []Palette{
	PalettePlain,
	PaletteStripes,
	PaletteLambert,
	PaletteWhiteLambert,
	PaletteDerivative,
}

var paletteInfo = [...]struct {
	name string
	fn   ColorFunc
}{
	PalettePlain:        {"plain", PlainColors},
	PaletteStripes:      {"stripes", SmoothStripes},
	PaletteLambert:      {"lambert", LambertColors},
	PaletteWhiteLambert: {"white-lambert", WhiteLambert},
	PaletteDerivative:   {"derivative", DerivativeColors},
}

// Func returns the color function of the palette.
// Unknown values fall back to PlainColors.
func (p Palette) Func() ColorFunc {
	if p < 0 || int(p) >= len(paletteInfo) {
		return PlainColors
	}
	return paletteInfo[p].fn
}

func (p Palette) String() string {
	if p < 0 || int(p) >= len(paletteInfo) {
		return fmt.Sprintf("Palette(%d)", int(p))
	}
	return paletteInfo[p].name
}

// ParsePalette returns the palette with the given name, as reported by
// [Palette.String].
func ParsePalette(name string) (Palette, error) {
	for _, p := range Palettes {
		if paletteInfo[p].name == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown palette %q", name)
}
