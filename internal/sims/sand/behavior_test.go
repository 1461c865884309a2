package sand

import (
	"testing"

	"gonum.org/v1/gonum/stat"

	"fallingsand/internal/core"
)

func TestSandFallsOneRowPerStep(t *testing.T) {
	g := NewGrid(3, 6)
	g.AddParticle(1, 5, Sand)
	rng := core.NewRNG(1)

	for step := 1; step <= 5; step++ {
		g.Step(rng)
		wantY := 5 - step
		count := 0
		for y := 0; y < 6; y++ {
			for x := 0; x < 3; x++ {
				p, _ := g.Get(x, y)
				if p.Material == Empty {
					continue
				}
				count++
				if x != 1 || y != wantY {
					t.Fatalf("step %d: sand at (%d,%d), want (1,%d)", step, x, y, wantY)
				}
			}
		}
		if count != 1 {
			t.Fatalf("step %d: %d occupied cells, want 1", step, count)
		}
	}

	// Settled sand on the bottom row stays put.
	g.Step(rng)
	if p, _ := g.Get(1, 0); p.Material != Sand {
		t.Fatal("settled sand moved off the bottom row")
	}
}

func TestSandTieBreaksToLowerLeft(t *testing.T) {
	g := NewGrid(3, 2)
	g.AddParticle(1, 0, Sand)
	g.AddParticle(1, 1, Sand)

	g.Step(core.NewRNG(1))

	if p, _ := g.Get(0, 0); p.Material != Sand {
		t.Fatal("blocked sand did not slide to the lower left")
	}
	if p, _ := g.Get(1, 0); p.Material != Sand {
		t.Fatal("supporting sand moved")
	}
	if !g.IsEmpty(1, 1) {
		t.Fatal("sliding sand left a copy behind")
	}
}

func TestSandDiagonalVetoedOverStaticCorner(t *testing.T) {
	g := NewGrid(3, 2)
	g.AddParticle(1, 0, Wall)
	g.AddParticle(1, 1, Sand)

	rng := core.NewRNG(1)
	for i := 0; i < 5; i++ {
		g.Step(rng)
	}

	if p, _ := g.Get(1, 1); p.Material != Sand {
		t.Fatal("sand tunneled sideways past a wall corner")
	}
}

func TestSandSinksThroughWater(t *testing.T) {
	g := NewGrid(1, 3)
	g.AddParticle(0, 1, Water)
	g.AddParticle(0, 2, Sand)
	rng := core.NewRNG(1)

	g.Step(rng)
	g.Step(rng)

	if p, _ := g.Get(0, 0); p.Material != Sand {
		t.Fatalf("sand did not sink to the bottom, found %v", p.Material)
	}
	if p, _ := g.Get(0, 1); p.Material != Water {
		t.Fatalf("water was not displaced upward, found %v", p.Material)
	}
}

func TestWaterSinksThroughOil(t *testing.T) {
	g := NewGrid(1, 2)
	g.AddParticle(0, 0, Oil)
	g.AddParticle(0, 1, Water)

	g.Step(core.NewRNG(1))

	if p, _ := g.Get(0, 0); p.Material != Water {
		t.Fatalf("water did not sink through oil, found %v", p.Material)
	}
	if p, _ := g.Get(0, 1); p.Material != Oil {
		t.Fatalf("oil was not displaced upward, found %v", p.Material)
	}
}

func TestOilFloatsOnWater(t *testing.T) {
	g := NewGrid(1, 2)
	g.AddParticle(0, 0, Water)
	g.AddParticle(0, 1, Oil)

	rng := core.NewRNG(1)
	for i := 0; i < 5; i++ {
		g.Step(rng)
	}

	if p, _ := g.Get(0, 1); p.Material != Oil {
		t.Fatal("oil sank through water")
	}
}

func TestWaterSpreadsLeftBeforeRight(t *testing.T) {
	g := NewGrid(3, 2)
	for x := 0; x < 3; x++ {
		g.AddParticle(x, 0, Wall)
	}
	g.AddParticle(1, 1, Water)

	g.Step(core.NewRNG(1))

	if p, _ := g.Get(0, 1); p.Material != Water {
		t.Fatal("water did not spread to the left first")
	}
}

func TestSmokeRisesOneRowPerStep(t *testing.T) {
	p := DefaultParams()
	p.SmokeDecayMax = 0
	g := NewGridWithParams(3, 5, p)
	g.AddParticle(1, 0, Smoke)
	rng := core.NewRNG(1)

	for step := 1; step <= 4; step++ {
		g.Step(rng)
		if got, _ := g.Get(1, step); got.Material != Smoke {
			t.Fatalf("step %d: smoke not at (1,%d)", step, step)
		}
	}
}

func TestSmokeEventuallyDecays(t *testing.T) {
	g := NewGrid(1, 4)
	g.AddParticle(0, 0, Smoke)
	rng := core.NewRNG(7)

	for i := 0; i < 300; i++ {
		g.Step(rng)
	}
	for y := 0; y < 4; y++ {
		if !g.IsEmpty(0, y) {
			t.Fatalf("smoke still present at (0,%d) after 300 steps", y)
		}
	}
}

func TestFireFlickersWithinShadeSet(t *testing.T) {
	g := NewGrid(1, 1)
	g.AddParticle(0, 0, Fire)

	g.Step(core.NewRNG(1))

	p, _ := g.Get(0, 0)
	if p.Material != Fire {
		t.Fatalf("fire expired after a single step: %v", p.Material)
	}
	if p.LifeTime >= 1 {
		t.Fatal("fire life budget did not shrink")
	}
	valid := map[uint8]bool{
		fireShade(0): true,
		fireShade(1): true,
		fireShade(2): true,
		fireShade(3): true,
	}
	if !valid[p.ColorIdx] {
		t.Fatalf("fire color index %d outside the shade set", p.ColorIdx)
	}
}

func TestFireExpiryLeavesSmokeOneInFive(t *testing.T) {
	rng := core.NewRNG(42)
	const trials = 2000
	smoke := 0
	for i := 0; i < trials; i++ {
		g := NewGrid(1, 1)
		g.AddParticle(0, 0, Fire)
		for s := 0; s < 200; s++ {
			p, _ := g.Get(0, 0)
			if p.Material != Fire {
				break
			}
			g.Step(rng)
		}
		if p, _ := g.Get(0, 0); p.Material == Smoke {
			smoke++
		}
	}
	rate := float64(smoke) / trials
	if rate < 0.16 || rate > 0.24 {
		t.Fatalf("fire-to-smoke rate %.3f outside [0.16, 0.24]", rate)
	}
}

func TestWoodIgnitionRate(t *testing.T) {
	rng := core.NewRNG(12345)
	const trials = 10000
	samples := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		g := NewGrid(3, 2)
		g.AddParticle(1, 0, Fire)
		g.AddParticle(1, 1, Wood)
		g.Step(rng)
		ignited := 0.0
		if p, _ := g.Get(1, 1); p.Material == Fire {
			ignited = 1
		}
		samples = append(samples, ignited)
	}
	mean := stat.Mean(samples, nil)
	if mean < 0.48 || mean > 0.52 {
		t.Fatalf("wood ignition rate %.4f outside 0.50 ± 0.02", mean)
	}
}

func TestOilIgnitionRate(t *testing.T) {
	rng := core.NewRNG(54321)
	const trials = 10000
	samples := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		g := NewGrid(3, 2)
		g.AddParticle(0, 0, Wall)
		g.AddParticle(2, 0, Wall)
		g.AddParticle(0, 1, Wall)
		g.AddParticle(2, 1, Wall)
		g.AddParticle(1, 0, Fire)
		g.AddParticle(1, 1, Oil)
		g.Step(rng)
		ignited := 0.0
		if p, _ := g.Get(1, 1); p.Material == Fire {
			ignited = 1
		}
		samples = append(samples, ignited)
	}
	mean := stat.Mean(samples, nil)
	if mean < 0.73 || mean > 0.77 {
		t.Fatalf("oil ignition rate %.4f outside 0.75 ± 0.02", mean)
	}
}

func TestIgnitedOilBurnsAsLiquid(t *testing.T) {
	p := DefaultParams()
	p.OilIgniteChance = 1
	g := NewGridWithParams(3, 2, p)
	g.AddParticle(0, 0, Wall)
	g.AddParticle(2, 0, Wall)
	g.AddParticle(0, 1, Wall)
	g.AddParticle(2, 1, Wall)
	g.AddParticle(1, 0, Fire)

	oil := DefaultParticle(Oil)
	oil.Velocity = Vec2{X: 3, Y: 4}
	g.Set(1, 1, oil)

	g.Step(core.NewRNG(1))

	got, _ := g.Get(1, 1)
	if got.Material != Fire {
		t.Fatalf("oil did not ignite, found %v", got.Material)
	}
	if got.Class != ClassLiquid {
		t.Fatalf("ignited oil burns with class %v, want liquid", got.Class)
	}
	if got.Velocity != (Vec2{X: 3, Y: 4}) {
		t.Fatalf("ignition dropped velocity: %+v", got.Velocity)
	}
	if got.LifeTime != DefaultParticle(Fire).LifeTime {
		t.Fatalf("ignited oil life budget %v, want fresh fire budget", got.LifeTime)
	}
}

func TestIgnitedWoodBurnsInPlace(t *testing.T) {
	p := DefaultParams()
	p.WoodIgniteChance = 1
	g := NewGridWithParams(3, 2, p)
	g.AddParticle(1, 0, Fire)
	g.AddParticle(1, 1, Wood)

	g.Step(core.NewRNG(1))

	got, _ := g.Get(1, 1)
	if got.Material != Fire {
		t.Fatalf("wood did not ignite, found %v", got.Material)
	}
	if got.Class != ClassStatic {
		t.Fatalf("ignited wood burns with class %v, want static", got.Class)
	}
}

func TestWallNeverIgnitesOrMoves(t *testing.T) {
	g := NewGrid(3, 3)
	g.AddParticle(1, 1, Wall)
	g.AddParticle(0, 0, Fire)
	g.AddParticle(2, 2, Fire)

	rng := core.NewRNG(1)
	for i := 0; i < 30; i++ {
		g.Step(rng)
	}

	if p, _ := g.Get(1, 1); p.Material != Wall {
		t.Fatalf("wall transformed into %v", p.Material)
	}
}
