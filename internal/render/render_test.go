package render

import (
	"image/color"
	"slices"
	"testing"

	"conways-life/internal/core"
)

func TestFillRGBA(t *testing.T) {
	cells := []core.Cell{core.Alive, core.Dead}
	buf := make([]byte, 8)
	FillRGBA(buf, cells, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := []byte{255, 255, 255, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, expected %v", buf, want)
	}
}

func TestLines(t *testing.T) {
	alive := func(x, y int) bool { return x == y }
	got := Lines(3, 2, alive, false)
	want := []string{"██    ", "  ██  "}
	if !slices.Equal(got, want) {
		t.Fatalf("lines=%q, expected %q", got, want)
	}
	dotted := Lines(2, 1, alive, true)
	if dotted[0] != "██ ·" {
		t.Fatalf("dotted=%q", dotted[0])
	}
}
