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

import (
	"math"
	"math/rand/v2"
	"testing"
)

// awkwardCells returns cell states which exercise the edge cases of the
// color functions.
func awkwardCells() []Cell {
	inf := math.Inf(1)
	nan := math.NaN()
	cells := []Cell{
		NewCell(0),
		{C: complex(0.3, 0.5), Z: complex(2, 1), DZ: 0, Iters: 3, Escaped: true},
		{C: complex(-1, 0), Z: complex(0, 0), DZ: 0, Iters: 50},
		{C: complex(1, 1), Z: complex(1, 3), DZ: complex(-7, 2), Iters: 2, Escaped: true},
		{C: complex(0.25, 0), Z: complex(0.5, 0), DZ: complex(1e300, 1e300), Iters: 1000},
		{C: complex(-2, 0), Z: complex(inf, 0), DZ: complex(inf, inf), Iters: 10, Escaped: true},
		{C: complex(0, 1), Z: complex(nan, nan), DZ: complex(nan, 0), Iters: 7, Escaped: true},
		{C: complex(0, 0), Z: complex(1e-320, 0), DZ: complex(-inf, 0), Iters: 1},
		{C: complex(-0.75, 0.1), Z: complex(2.0000001, 0), DZ: complex(1e25, -3), Iters: 1 << 30, Escaped: true},
		{C: complex(-0.75, 0.1), Z: complex(1e200, 1e200), DZ: complex(-1e25, 0), Iters: 0, Escaped: true},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		c := complex(4*rng.Float64()-2.5, 3*rng.Float64()-1.5)
		cell := NewCell(c)
		for range rng.IntN(200) {
			cell.Step()
		}
		cells = append(cells, cell)
	}
	return cells
}

func TestPalettesInRange(t *testing.T) {
	cells := awkwardCells()
	for _, p := range Palettes {
		t.Run(p.String(), func(t *testing.T) {
			fn := p.Func()
			for i := range cells {
				cell := cells[i]
				got := fn(&cell)
				for _, v := range []float64{got.R, got.G, got.B} {
					if !(v >= 0 && v <= 1) {
						t.Errorf("cell %d (%+v): color %v out of range", i, cells[i], got)
						break
					}
				}
			}
		})
	}
}

func TestPalettesDoNotModify(t *testing.T) {
	cell := NewCell(complex(-0.5, 0.6))
	for range 30 {
		cell.Step()
	}
	orig := cell
	for _, p := range Palettes {
		p.Func()(&cell)
		if cell != orig {
			t.Errorf("%s modified the cell", p)
		}
	}
}

func TestPlainColors(t *testing.T) {
	live := Cell{Iters: 5}
	if got := PlainColors(&live); got != Gray(0) {
		t.Errorf("live cell: got %v, want black", got)
	}

	escaped := Cell{Iters: 17, Escaped: true}
	got := Pack(PlainColors(&escaped))
	if got != 0x19071A { // table entry 1
		t.Errorf("iters=17: got %06x, want 19071a", got)
	}
}

func TestTableColor(t *testing.T) {
	cases := []struct {
		i    int
		want uint32
	}{
		{0, 0x421E0F},
		{9, 0xD3ECF8},
		{15, 0x6A3403},
		{16, 0x421E0F},
		{-1, 0x6A3403},
	}
	for _, tc := range cases {
		if got := Pack(TableColor(tc.i)); got != tc.want {
			t.Errorf("TableColor(%d) = %06x, want %06x", tc.i, got, tc.want)
		}
	}
}

func TestSmoothStripes(t *testing.T) {
	live := NewCell(0)
	if got := SmoothStripes(&live); got != Gray(1) {
		t.Errorf("live cell: got %v, want white", got)
	}

	// log2(log2(16)) - 1 = 1, so cos(2π) gives white
	cell := Cell{Z: 4, Iters: 1, Escaped: true}
	got := SmoothStripes(&cell)
	if math.Abs(got.R-1) > 1e-12 || got.R != got.G || got.G != got.B {
		t.Errorf("got %v, want white", got)
	}

	// log2(log2(2^(2^1.5))) - 1 = 0.5 gives black
	cell = Cell{Z: complex(math.Sqrt(math.Exp2(math.Exp2(1.5))), 0), Iters: 1, Escaped: true}
	got = SmoothStripes(&cell)
	if got.R > 1e-12 {
		t.Errorf("got %v, want black", got)
	}
}

func TestLambert(t *testing.T) {
	// directly below the light, with the normal pointing up
	cell := Cell{C: complex(lightX, lightY), DZ: 0, Escaped: true}
	want := lightPower / lightZ
	if got := lambert(&cell); math.Abs(got-want) > 1e-12 {
		t.Errorf("got %g, want %g", got, want)
	}

	got := WhiteLambert(&cell)
	if math.Abs(got.R-want) > 1e-12 {
		t.Errorf("WhiteLambert: got %v, want gray %g", got, want)
	}

	live := Cell{C: complex(lightX, lightY), DZ: 0}
	if got := WhiteLambert(&live); got != Gray(0) {
		t.Errorf("WhiteLambert on live cell: got %v, want black", got)
	}
	lc := LambertColors(&live)
	wantLC := interiorColor.Scale(want)
	if math.Abs(lc.R-wantLC.R) > 1e-12 || math.Abs(lc.G-wantLC.G) > 1e-12 || math.Abs(lc.B-wantLC.B) > 1e-12 {
		t.Errorf("LambertColors on live cell: got %v, want %v", lc, wantLC)
	}
}

func TestSurfaceNormal(t *testing.T) {
	cases := []struct {
		z, dz complex128
		want  [3]float64
	}{
		{0, 1, [3]float64{0, 0, 1}},
		{1, 0, [3]float64{0, 0, 1}},
		{complex(3, 0), 1, [3]float64{1, 0, 1}},
		{complex(0, 2), complex(0, 1), [3]float64{1, 0, 1}},
		{complex(0, -5), 1, [3]float64{0, -1, 1}},
		{complex(math.Inf(1), 0), 1, [3]float64{0, 0, 1}},
	}
	for _, tc := range cases {
		cell := Cell{Z: tc.z, DZ: tc.dz}
		got := surfaceNormal(&cell)
		for k := range got {
			if math.Abs(got[k]-tc.want[k]) > 1e-12 {
				t.Errorf("z=%v dz=%v: got %v, want %v", tc.z, tc.dz, got, tc.want)
				break
			}
		}
	}
}

func TestDerivativeColors(t *testing.T) {
	cases := []struct {
		dz  complex128
		idx int
	}{
		{0, 0},
		{complex(-3, 1), 0},
		{complex(math.NaN(), 0), 0},
		{complex(0.1, 0), 3},
		{complex(1, 0), 14},     // 30 % 16
		{complex(1, 99), 14},    // imaginary part is ignored
		{complex(1e300, 0), 15}, // saturates
		{complex(math.Inf(1), 0), 15},
	}
	for _, tc := range cases {
		for _, escaped := range []bool{false, true} {
			cell := Cell{DZ: tc.dz, Escaped: escaped}
			got := DerivativeColors(&cell)
			if want := TableColor(tc.idx); got != want {
				t.Errorf("dz=%v escaped=%t: got %v, want table entry %d",
					tc.dz, escaped, got, tc.idx)
			}
		}
	}
}

func TestParsePalette(t *testing.T) {
	for _, p := range Palettes {
		q, err := ParsePalette(p.String())
		if err != nil {
			t.Errorf("%s: %v", p, err)
		} else if q != p {
			t.Errorf("%s: round trip gave %s", p, q)
		}
	}
	if _, err := ParsePalette("rainbow"); err == nil {
		t.Error("unknown palette accepted")
	}

	bad := Palette(42)
	if bad.String() != "Palette(42)" {
		t.Errorf("got %q", bad.String())
	}
	cell := Cell{Iters: 3, Escaped: true}
	if bad.Func()(&cell) != PlainColors(&cell) {
		t.Error("unknown palette does not fall back to PlainColors")
	}
}
