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

var overviewScenes = []Scene{
	{
		Name:    "default_frame",
		Frame:   region(-2.5, 1.0, -1.25, 1.25),
		Width:   112,
		Height:  80,
		Steps:   100,
		Palette: "plain",
	},
	{
		Name:    "default_frame_few_steps",
		Frame:   region(-2.5, 1.0, -1.25, 1.25),
		Width:   112,
		Height:  80,
		Steps:   8,
		Palette: "plain",
	},
	{
		Name:    "symmetric_square",
		Frame:   square(0, 0, 2),
		Width:   64,
		Height:  64,
		Steps:   50,
		Palette: "plain",
	},
	{
		Name:    "tall_strip",
		Frame:   region(-0.8, -0.7, -1.2, 1.2),
		Width:   16,
		Height:  128,
		Steps:   200,
		Palette: "plain",
	},
}
