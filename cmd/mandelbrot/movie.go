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

package main

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"seehuhn.de/go/fractal"
)

// movie records snapshots of a simulation into an MJPEG AVI file.
type movie struct {
	aw      mjpeg.AviWriter
	every   int
	picture func(*fractal.Sim) image.Image
	frames  int

	buf bytes.Buffer
}

func newMovie(fname string, w, h, fps, every int, picture func(*fractal.Sim) image.Image) (*movie, error) {
	aw, err := mjpeg.New(fname, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, err
	}
	return &movie{
		aw:      aw,
		every:   every,
		picture: picture,
	}, nil
}

// observe adds a frame if the step count is a multiple of m.every.
func (m *movie) observe(sim *fractal.Sim) error {
	if sim.Steps()%m.every != 0 {
		return nil
	}

	m.buf.Reset()
	err := jpeg.Encode(&m.buf, m.picture(sim), &jpeg.Options{Quality: 90})
	if err != nil {
		return err
	}
	m.frames++
	return m.aw.AddFrame(m.buf.Bytes())
}

// Close finalizes the AVI file.
func (m *movie) Close() error {
	return m.aw.Close()
}
