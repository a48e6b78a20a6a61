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

package testcases

// paletteScenes render the same view with every built-in palette.
var paletteScenes = []Scene{
	{
		Name:    "plain",
		Frame:   square(-0.722, 0.246, 0.019),
		Width:   80,
		Height:  80,
		Steps:   250,
		Palette: "plain",
	},
	{
		Name:    "stripes",
		Frame:   square(-0.722, 0.246, 0.019),
		Width:   80,
		Height:  80,
		Steps:   250,
		Palette: "stripes",
	},
	{
		Name:    "lambert",
		Frame:   square(-0.722, 0.246, 0.019),
		Width:   80,
		Height:  80,
		Steps:   250,
		Palette: "lambert",
	},
	{
		Name:    "white_lambert",
		Frame:   square(-0.722, 0.246, 0.019),
		Width:   80,
		Height:  80,
		Steps:   250,
		Palette: "white-lambert",
	},
	{
		Name:    "derivative",
		Frame:   square(-0.722, 0.246, 0.019),
		Width:   80,
		Height:  80,
		Steps:   250,
		Palette: "derivative",
	},
	{
		Name:    "lambert_overview",
		Frame:   region(-2.5, 1.0, -1.25, 1.25),
		Width:   112,
		Height:  80,
		Steps:   60,
		Palette: "lambert",
	},
}
