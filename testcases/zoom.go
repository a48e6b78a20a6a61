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

import "math"

// zoomScenes approach the seahorse valley in steps of 4x magnification.
var zoomScenes = makeZoom("seahorse", -0.7453, 0.1127, 1.5, 4, 6)

// makeZoom returns n square scenes around (x, y), starting with radius r0
// and shrinking the radius by the given factor each time.  Deeper views
// get more iterations.
func makeZoom(prefix string, x, y, r0, factor float64, n int) []Scene {
	scenes := make([]Scene, 0, n)
	r := r0
	for i := range n {
		depth := math.Log2(r0 / r)
		scenes = append(scenes, Scene{
			Name:    prefix + "_" + string(rune('a'+i)),
			Frame:   square(x, y, r),
			Width:   64,
			Height:  64,
			Steps:   100 + int(60*depth),
			Palette: "stripes",
		})
		r /= factor
	}
	return scenes
}
