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
	"log"
	"time"

	"github.com/guptarohit/asciigraph"
)

// stepStats records the duration of each update.
type stepStats struct {
	wall  time.Duration
	steps []time.Duration
}

func (s *stepStats) sum() time.Duration {
	var sum time.Duration
	for _, d := range s.steps {
		sum += d
	}
	return sum
}

func (s *stepStats) avg() time.Duration {
	if len(s.steps) == 0 {
		return 0
	}
	return s.sum() / time.Duration(len(s.steps))
}

func (s *stepStats) log() {
	sum := s.sum()
	log.Printf("wall=%s steps=%d sum=%s avg=%s overhead=%s",
		s.wall, len(s.steps), sum, s.avg(), s.wall-sum)
}

// plot returns a terminal chart of the update durations in milliseconds.
func (s *stepStats) plot() string {
	if len(s.steps) == 0 {
		return ""
	}
	ms := make([]float64, len(s.steps))
	for i, d := range s.steps {
		ms[i] = float64(d) / float64(time.Millisecond)
	}
	return plotSeries(ms, "update time [ms] per step")
}

const plotWidth = 72

func plotSeries(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(2),
		asciigraph.Caption(caption))
}
