package main

import (
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/fractal/testcases"
)

func TestLuminance(t *testing.T) {
	cases := []struct {
		px   uint32
		want uint8
	}{
		{0x000000, 0},
		{0xFFFFFF, 255},
		{0xFF0000, 76},
		{0x00FF00, 150},
		{0x0000FF, 29},
	}
	for _, tc := range cases {
		if got := luminance(tc.px); got != tc.want {
			t.Errorf("luminance(%06x) = %d, want %d", tc.px, got, tc.want)
		}
	}
}

func TestGeneratePDF(t *testing.T) {
	sc, ok := testcases.Find("overview_default_frame_few_steps")
	if !ok {
		t.Fatal("scene not found")
	}
	fname := filepath.Join(t.TempDir(), "test.pdf")
	if err := generatePDF(sc, fname, 1); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Error("output is not a PDF file")
	}
}
