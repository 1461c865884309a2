package sand

import (
	"testing"

	"fallingsand/internal/core"
)

func TestSteppingEmptyGridStaysEmpty(t *testing.T) {
	g := NewGrid(8, 8)
	rng := core.NewRNG(1)
	for i := 0; i < 10; i++ {
		g.Step(rng)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !g.IsEmpty(x, y) {
				t.Fatalf("cell (%d,%d) became occupied", x, y)
			}
		}
	}
}

func TestParticleCountNeverIncreases(t *testing.T) {
	g := NewGrid(16, 16)
	rng := core.NewRNG(3)
	materials := []Material{Sand, Water, Smoke, Oil, Fire, Wood}
	for i := 0; i < 80; i++ {
		m := materials[rng.IntN(len(materials))]
		g.AddParticle(rng.IntN(16), rng.IntN(16), m)
	}

	prev := countOccupied(g)
	for i := 0; i < 60; i++ {
		g.Step(rng)
		cur := countOccupied(g)
		if cur > prev {
			t.Fatalf("step %d: occupied cells grew from %d to %d", i, prev, cur)
		}
		prev = cur
	}
}

func TestDisplacementConservesParticles(t *testing.T) {
	g := NewGrid(1, 4)
	g.AddParticle(0, 1, Water)
	g.AddParticle(0, 2, Water)
	g.AddParticle(0, 3, Sand)
	rng := core.NewRNG(1)

	for i := 0; i < 6; i++ {
		g.Step(rng)
		if got := countOccupied(g); got != 3 {
			t.Fatalf("step %d: %d particles, want 3", i, got)
		}
	}
	if p, _ := g.Get(0, 0); p.Material != Sand {
		t.Fatalf("sand did not displace its way to the bottom, found %v", p.Material)
	}
}

func countOccupied(g *Grid) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.IsEmpty(x, y) {
				n++
			}
		}
	}
	return n
}
