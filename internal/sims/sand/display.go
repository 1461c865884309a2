package sand

import "image/color"

// Palette indices 0 through 8 map material values directly; the three
// extra fire shades follow so fire can flicker across four entries.
const fireShadeCount = 4

const paletteLen = int(materialCount) + fireShadeCount - 1

func fireShade(n int) uint8 {
	if n <= 0 {
		return uint8(Fire)
	}
	return uint8(materialCount) + uint8(n) - 1
}

var palette = buildPalette()

// Palette returns the render palette indexed by Particle.ColorIdx.
func Palette() []color.RGBA {
	return palette
}

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, paletteLen)
	p[Empty] = color.RGBA{}
	p[Sand] = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	p[Water] = color.RGBA{R: 102, G: 191, B: 255, A: 255}
	p[Smoke] = color.RGBA{R: 130, G: 130, B: 130, A: 220}
	p[Oil] = color.RGBA{R: 86, G: 74, B: 47, A: 255}
	p[Wall] = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	p[Wood] = color.RGBA{R: 127, G: 106, B: 79, A: 255}
	p[Fire] = color.RGBA{R: 255, G: 161, B: 0, A: 255}
	p[Flame] = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	p[fireShade(1)] = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	p[fireShade(2)] = color.RGBA{R: 255, G: 203, B: 0, A: 255}
	p[fireShade(3)] = color.RGBA{R: 255, G: 120, B: 20, A: 255}
	return p
}

// ColorAt returns the render color for the cell at (x, y). Out-of-range
// coordinates render as empty space.
func (g *Grid) ColorAt(x, y int) color.RGBA {
	p, ok := g.Get(x, y)
	if !ok {
		return palette[Empty]
	}
	idx := int(p.ColorIdx)
	if idx >= paletteLen {
		idx = int(Empty)
	}
	return palette[idx]
}
