package render

import "image/color"

// fillPaletteRGBA converts bottom-left-origin cell values into
// top-left-origin RGBA pixels using a palette; the renderer owns the
// screen-space vertical flip, not the simulation. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, w, h int, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for y := 0; y < h; y++ {
		src := y * w
		dst := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			idx := int(cells[src+x])
			if idx > last {
				idx = last
			}
			base := (dst + x) * 4
			col := palette[idx]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
