package game

import (
	"testing"
	"time"
)

func TestHsvToRgb(t *testing.T) {
	for _, tc := range []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	} {
		r, g, b := hsvToRgb(tc.h, 1, 1)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("hue %f = (%d,%d,%d), want (%d,%d,%d)", tc.h, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestStrainHue(t *testing.T) {
	for _, tc := range []struct{ strain, want float64 }{
		{-1, 120}, {0, 120}, {0.5, 60}, {1, 0}, {2, 0},
	} {
		if got := strainHue(tc.strain); got != tc.want {
			t.Fatalf("strainHue(%f) = %f, want %f", tc.strain, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(83 * time.Second); got != "01:23" {
		t.Fatalf("got %q, want 01:23", got)
	}
}
