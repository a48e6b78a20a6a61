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

// RGB is a color with components nominally in [0, 1].
type RGB struct {
	R, G, B float64
}

// Scale returns the color with every component multiplied by t.
func (c RGB) Scale(t float64) RGB {
	return RGB{c.R * t, c.G * t, c.B * t}
}

// Gray returns the color with all three components equal to v.
func Gray(v float64) RGB {
	return RGB{v, v, v}
}

// Pack converts c to a pixel value 0x00RRGGBB.  Each component is clamped
// to [0, 1] and scaled to [0, 255], truncating towards zero.  NaN
// components become 0.
func Pack(c RGB) uint32 {
	r, g, b := channel(c.R), channel(c.G), channel(c.B)
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack returns the three 8-bit channels of a pixel value produced by
// [Pack].
func Unpack(px uint32) (r, g, b uint8) {
	return uint8(px >> 16), uint8(px >> 8), uint8(px)
}

func channel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
