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

// Command mandelbrot renders a view of the Mandelbrot set to a PNG file.
//
// The view is iterated for a fixed number of steps.  Timing statistics
// for the updates are printed when the image is written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/testcases"
)

type options struct {
	width, height int
	scene         string
	center        string
	radius        float64
	steps         int
	palette       string
	exec          string
	workers       int
	supersample   int
	label         bool
	out           string
	movie         string
	movieEvery    int
	fps           int
	plot          bool
}

func main() {
	var opt options
	flag.IntVar(&opt.width, "width", 1080, "image width in pixels")
	flag.IntVar(&opt.height, "height", 0, "image height in pixels (0 = match the frame's aspect ratio)")
	flag.StringVar(&opt.scene, "scene", "", "use the frame of a named scene")
	flag.StringVar(&opt.center, "center", "", "center of a square frame, as `x,y`")
	flag.Float64Var(&opt.radius, "radius", 0.5, "radius of the square frame around -center")
	flag.IntVar(&opt.steps, "steps", 1000, "number of updates")
	flag.StringVar(&opt.palette, "palette", "plain", "color palette: plain, stripes, lambert, white-lambert, derivative")
	flag.StringVar(&opt.exec, "exec", "par", "update strategy: seq or par")
	flag.IntVar(&opt.workers, "workers", 0, "number of worker goroutines for -exec par (0 = all CPUs)")
	flag.IntVar(&opt.supersample, "ss", 1, "supersampling factor")
	flag.BoolVar(&opt.label, "label", false, "stamp palette and step count onto the image")
	flag.StringVar(&opt.out, "o", "", "output file (default mandelbrot-WxH.png)")
	flag.StringVar(&opt.movie, "movie", "", "also record the iteration as an MJPEG `file.avi`")
	flag.IntVar(&opt.movieEvery, "movie-every", 10, "number of updates between movie frames")
	flag.IntVar(&opt.fps, "fps", 25, "movie frame rate")
	flag.BoolVar(&opt.plot, "plot", false, "plot step timings and escaped cells in the terminal")
	flag.Parse()

	if err := run(opt); err != nil {
		log.Fatalf("mandelbrot: %v", err)
	}
}

func run(opt options) (err error) {
	frame, err := chooseFrame(opt)
	if err != nil {
		return err
	}
	pal, err := fractal.ParsePalette(opt.palette)
	if err != nil {
		return err
	}
	exec, err := chooseExecutor(opt.exec, opt.workers)
	if err != nil {
		return err
	}
	if opt.supersample < 1 {
		return fmt.Errorf("invalid supersampling factor %d", opt.supersample)
	}

	w, h := opt.width, opt.height
	if h <= 0 {
		aspect := (frame.URx - frame.LLx) / (frame.URy - frame.LLy)
		h = max(1, int(float64(w)/aspect))
	}
	if opt.out == "" {
		opt.out = fmt.Sprintf("mandelbrot-%dx%d.png", w, h)
	}

	sim, err := fractal.NewSim(fractal.Config{
		Width:  w * opt.supersample,
		Height: h * opt.supersample,
		Frame:  frame,
	})
	if err != nil {
		return err
	}
	sim.Exec = exec

	// picture turns the current state into an output image
	picture := func(sim *fractal.Sim) image.Image {
		var img draw.Image = sim.DrawImage(pal.Func())
		if opt.supersample > 1 {
			small := image.NewRGBA(image.Rect(0, 0, w, h))
			draw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)
			img = small
		}
		if opt.label {
			stamp(img, fmt.Sprintf("%s, %d steps", pal, sim.Steps()))
		}
		return img
	}

	var observers []observer
	if opt.movie != "" {
		if opt.movieEvery < 1 || opt.fps < 1 {
			return fmt.Errorf("invalid movie settings: every %d steps at %d fps",
				opt.movieEvery, opt.fps)
		}
		m, merr := newMovie(opt.movie, w, h, opt.fps, opt.movieEvery, picture)
		if merr != nil {
			return merr
		}
		defer func() {
			if cerr := m.Close(); err == nil {
				err = cerr
			}
			log.Printf("wrote %d frames to %s", m.frames, opt.movie)
		}()
		if err := m.observe(sim); err != nil {
			return err
		}
		observers = append(observers, m.observe)
	}
	var escaped []float64
	if opt.plot {
		observers = append(observers, func(sim *fractal.Sim) error {
			escaped = append(escaped, 100*float64(sim.Escaped())/float64(sim.Len()))
			return nil
		})
	}

	log.Printf("rendering %s", opt.out)
	stats, err := iterate(sim, opt.steps, observers...)
	if err != nil {
		return err
	}
	stats.log()
	log.Printf("%d of %d cells escaped", sim.Escaped(), sim.Len())
	if opt.plot {
		fmt.Println(stats.plot())
		if len(escaped) > 0 {
			fmt.Println(plotSeries(escaped, "escaped cells [%] per step"))
		}
	}

	return writePNG(opt.out, picture(sim))
}

func chooseFrame(opt options) (rect.Rect, error) {
	switch {
	case opt.scene != "" && opt.center != "":
		return rect.Rect{}, errors.New("-scene and -center are mutually exclusive")
	case opt.scene != "":
		sc, ok := testcases.Find(opt.scene)
		if !ok {
			return rect.Rect{}, fmt.Errorf("unknown scene %q", opt.scene)
		}
		return sc.Frame, nil
	case opt.center != "":
		c, err := parsePoint(opt.center)
		if err != nil {
			return rect.Rect{}, err
		}
		return fractal.SquareFrame(c, opt.radius), nil
	default:
		return fractal.DefaultFrame(), nil
	}
}

func parsePoint(s string) (vec.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return vec.Vec2{}, fmt.Errorf("malformed point %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("point %q: %w", s, err)
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func chooseExecutor(name string, workers int) (fractal.Executor, error) {
	switch name {
	case "seq":
		return fractal.Sequential{}, nil
	case "par":
		return fractal.Parallel{Workers: workers}, nil
	default:
		return nil, fmt.Errorf("unknown update strategy %q", name)
	}
}

// An observer inspects the simulation after each update.
type observer func(sim *fractal.Sim) error

// iterate applies n updates to sim.  Only the updates themselves are
// timed, not the observers.
func iterate(sim *fractal.Sim, n int, observers ...observer) (*stepStats, error) {
	stats := &stepStats{steps: make([]time.Duration, 0, n)}
	begin := time.Now()
	for range n {
		t0 := time.Now()
		sim.Update()
		stats.steps = append(stats.steps, time.Since(t0))

		for _, obs := range observers {
			if err := obs(sim); err != nil {
				return nil, err
			}
		}
	}
	stats.wall = time.Since(begin)
	return stats, nil
}

// stamp writes text into the lower-left corner of img.
func stamp(img draw.Image, text string) {
	face := basicfont.Face7x13
	b := img.Bounds()
	x := b.Min.X + 4
	y := b.Max.Y - 4

	// dark backing box for legibility
	adv := font.MeasureString(face, text).Ceil()
	box := image.Rect(x-2, y-face.Ascent-2, x+adv+2, y+face.Descent+2).Intersect(b)
	draw.Draw(img, box, image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
