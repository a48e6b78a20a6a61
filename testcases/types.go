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

// Package testcases contains named views of the Mandelbrot set, used for
// reference images and as presets by the command line tools.
package testcases

import (
	"seehuhn.de/go/geom/rect"
)

// Scene defines a single rendering test.
type Scene struct {
	Name    string    // lowercase a-z, 0-9 and _ only
	Frame   rect.Rect // sampled region of the complex plane
	Width   int       // pixel grid width
	Height  int       // pixel grid height
	Steps   int       // number of updates before drawing
	Palette string    // palette name, as accepted by fractal.ParsePalette
}

// Find returns the scene with the given name, searching all categories.
// Names may be given either plain or prefixed by the category
// ("landmark_seahorse_valley").
func Find(name string) (Scene, bool) {
	for category, scenes := range All {
		for _, sc := range scenes {
			if sc.Name == name || category+"_"+sc.Name == name {
				return sc, true
			}
		}
	}
	return Scene{}, false
}

// square returns the square frame of radius r around (x, y).
func square(x, y, r float64) rect.Rect {
	return rect.Rect{LLx: x - r, LLy: y - r, URx: x + r, URy: y + r}
}

// region returns the frame with the given extent.
func region(xMin, xMax, yMin, yMax float64) rect.Rect {
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}
