package fractal

import (
	"fmt"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// BenchmarkUpdate compares the sequential and parallel executors on a
// view where most cells stay alive.
func BenchmarkUpdate(b *testing.B) {
	sizes := []int{64, 256, 1024}
	execs := []struct {
		name string
		exec Executor
	}{
		{"seq", Sequential{}},
		{"par", Parallel{}},
	}

	for _, size := range sizes {
		for _, e := range execs {
			b.Run(fmt.Sprintf("%s/%dx%d", e.name, size, size), func(b *testing.B) {
				cfg := Config{
					Width:  size,
					Height: size,
					Frame:  SquareFrame(vec.Vec2{X: -0.25}, 0.5),
				}
				s, err := NewSim(cfg)
				if err != nil {
					b.Fatal(err)
				}
				s.Exec = e.exec

				b.ReportAllocs()
				for b.Loop() {
					s.Update()
				}
			})
		}
	}
}

// BenchmarkDraw measures the cost of each palette on a partially
// escaped grid.
func BenchmarkDraw(b *testing.B) {
	const size = 512
	s, err := NewSim(Config{Width: size, Height: size, Frame: DefaultFrame()})
	if err != nil {
		b.Fatal(err)
	}
	for range 100 {
		s.Update()
	}
	fb := make([]uint32, s.Len())

	for _, p := range Palettes {
		b.Run(p.String(), func(b *testing.B) {
			fn := p.Func()
			b.ReportAllocs()
			for b.Loop() {
				s.Draw(fb, fn)
			}
		})
	}
}

// BenchmarkStep measures a single cell update.
func BenchmarkStep(b *testing.B) {
	cell := NewCell(complex(-0.1, 0.1))
	for b.Loop() {
		cell.Step()
	}
}
