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

// Classic regions of the Mandelbrot set.
var landmarkScenes = []Scene{
	{
		// dense filaments and repeating "seahorse" curls
		Name:    "seahorse_valley",
		Frame:   region(-0.8, -0.7, 0.05, 0.15),
		Width:   96,
		Height:  96,
		Steps:   300,
		Palette: "plain",
	},
	{
		// large bulb with trunk-like tendrils
		Name:    "elephant_valley",
		Frame:   region(-1.85, -1.75, -0.10, -0.02),
		Width:   100,
		Height:  80,
		Steps:   300,
		Palette: "plain",
	},
	{
		// small copy of the set with tight spiral arms
		Name:    "spiral_minibrot",
		Frame:   region(-0.7435, -0.7420, 0.1310, 0.1325),
		Width:   96,
		Height:  96,
		Steps:   600,
		Palette: "plain",
	},
	{
		Name:    "triple_spiral",
		Frame:   region(-0.7480, -0.7450, 0.0950, 0.0980),
		Width:   96,
		Height:  96,
		Steps:   600,
		Palette: "plain",
	},
	{
		Name:    "valley_of_the_dragon",
		Frame:   region(-0.7400, -0.7350, 0.1800, 0.1850),
		Width:   96,
		Height:  96,
		Steps:   600,
		Palette: "plain",
	},
	{
		// period-3 copy of the set on the real axis
		Name:    "real_axis_minibrot",
		Frame:   square(-1.768, 0, 0.025),
		Width:   96,
		Height:  96,
		Steps:   600,
		Palette: "plain",
	},
	{
		// http://www.cuug.ab.ca/dewara/mandelbrot/Mandelbrowser.html
		Name:    "dewar_spiral",
		Frame:   square(-0.722, 0.246, 0.019),
		Width:   96,
		Height:  96,
		Steps:   400,
		Palette: "plain",
	},
	{
		Name:    "dewar_deep",
		Frame:   square(-1.25066, 0.02012, 1.7e-4),
		Width:   96,
		Height:  96,
		Steps:   1000,
		Palette: "plain",
	},
}
