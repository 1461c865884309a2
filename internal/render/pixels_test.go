package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBAFlipsVertically(t *testing.T) {
	palette := []color.RGBA{
		{},
		{R: 255, A: 255},
		{G: 255, A: 255},
	}
	// 2x2 grid, bottom row red, top row green.
	cells := []uint8{1, 1, 2, 2}
	buf := make([]byte, len(cells)*4)

	fillPaletteRGBA(buf, cells, 2, 2, palette)

	// Top of the pixel buffer is the top grid row.
	if buf[0] != 0 || buf[1] != 255 {
		t.Fatalf("top-left pixel %v, want green", buf[0:4])
	}
	if buf[8] != 255 || buf[9] != 0 {
		t.Fatalf("bottom-left pixel %v, want red", buf[8:12])
	}
	if buf[3] != 255 || buf[11] != 255 {
		t.Fatal("alpha not written")
	}
}

func TestFillPaletteRGBAClampsIndices(t *testing.T) {
	palette := []color.RGBA{{}, {B: 255, A: 255}}
	cells := []uint8{9}
	buf := make([]byte, 4)

	fillPaletteRGBA(buf, cells, 1, 1, palette)

	if buf[2] != 255 {
		t.Fatalf("out-of-range index did not clamp to last entry: %v", buf)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{3, 3}, 2, 1, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d is %d, want 0", i, b)
		}
	}
}
