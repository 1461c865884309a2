package sand

import "fallingsand/internal/core"

// Step advances the simulation by one frame in two passes. The simulate
// pass scans cells bottom row first, left to right, skipping any cell a
// swap already touched this frame so nothing is simulated twice. The reset
// pass clears the scratch flags for the next frame.
func (g *Grid) Step(rng *core.RNG) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			if g.updated[idx] {
				continue
			}
			if g.cells[idx].Material == Empty {
				continue
			}
			g.stepCell(rng, x, y)
		}
	}
	for i := range g.updated {
		g.updated[i] = false
	}
}
