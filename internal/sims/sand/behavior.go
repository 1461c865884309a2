package sand

import "fallingsand/internal/core"

// stepCell advances the particle at (x, y) by one frame: movement
// dispatched on element class, then decay and ignition acting on the
// particle wherever the move left it.
func (g *Grid) stepCell(rng *core.RNG, x, y int) {
	p := g.cells[g.index(x, y)]

	nx, ny := x, y
	switch p.Class {
	case ClassSolid:
		nx, ny = g.moveSolid(x, y)
	case ClassLiquid:
		nx, ny = g.moveLiquid(x, y, p.Material)
	case ClassGas:
		nx, ny = g.moveGas(x, y)
	}

	switch p.Material {
	case Fire:
		g.burnFire(rng, nx, ny)
	case Smoke, Flame:
		g.decay(rng, nx, ny)
	case Oil, Wood:
		g.igniteFromNeighbors(rng, nx, ny)
	}
}

// moveSolid drops a solid straight down, then down-left, then down-right.
// A diagonal drop is vetoed when the cell straight below is static so
// grains cannot tunnel around a wall corner. Destinations qualify when
// empty, liquid, or gas, which lets solids sink through fluids. Bottom-row
// solids never move.
func (g *Grid) moveSolid(x, y int) (int, int) {
	if y == 0 {
		return x, y
	}
	below := y - 1
	if g.solidDest(x, below) {
		g.Swap(x, y, x, below)
		return x, below
	}
	if g.classAt(x, below) == ClassStatic {
		return x, y
	}
	if g.solidDest(x-1, below) {
		g.Swap(x, y, x-1, below)
		return x - 1, below
	}
	if g.solidDest(x+1, below) {
		g.Swap(x, y, x+1, below)
		return x + 1, below
	}
	return x, y
}

func (g *Grid) solidDest(x, y int) bool {
	switch g.classAt(x, y) {
	case ClassEmpty, ClassLiquid, ClassGas:
		return true
	}
	return false
}

// moveLiquid uses the solid fall order, then spreads sideways, left before
// right. Water additionally sinks through oil.
func (g *Grid) moveLiquid(x, y int, m Material) (int, int) {
	below := y - 1
	if g.liquidDest(m, x, below) {
		g.Swap(x, y, x, below)
		return x, below
	}
	if g.classAt(x, below) != ClassStatic {
		if g.liquidDest(m, x-1, below) {
			g.Swap(x, y, x-1, below)
			return x - 1, below
		}
		if g.liquidDest(m, x+1, below) {
			g.Swap(x, y, x+1, below)
			return x + 1, below
		}
	}
	if g.liquidDest(m, x-1, y) {
		g.Swap(x, y, x-1, y)
		return x - 1, y
	}
	if g.liquidDest(m, x+1, y) {
		g.Swap(x, y, x+1, y)
		return x + 1, y
	}
	return x, y
}

func (g *Grid) liquidDest(m Material, x, y int) bool {
	p, ok := g.Get(x, y)
	if !ok {
		return false
	}
	switch p.Class {
	case ClassEmpty, ClassGas:
		return true
	}
	return m == Water && p.Material == Oil
}

// moveGas rises with inverted gravity: straight up, up-left, up-right,
// then sideways, into empty cells only. Diagonal rises are vetoed when the
// cell straight above is static.
func (g *Grid) moveGas(x, y int) (int, int) {
	above := y + 1
	if g.IsEmpty(x, above) {
		g.Swap(x, y, x, above)
		return x, above
	}
	if g.classAt(x, above) != ClassStatic {
		if g.IsEmpty(x-1, above) {
			g.Swap(x, y, x-1, above)
			return x - 1, above
		}
		if g.IsEmpty(x+1, above) {
			g.Swap(x, y, x+1, above)
			return x + 1, above
		}
	}
	if g.IsEmpty(x-1, y) {
		g.Swap(x, y, x-1, y)
		return x - 1, y
	}
	if g.IsEmpty(x+1, y) {
		g.Swap(x, y, x+1, y)
		return x + 1, y
	}
	return x, y
}

// decay shrinks the particle's life budget by a uniform draw from [0, K)
// and replaces it with empty once the budget runs out.
func (g *Grid) decay(rng *core.RNG, x, y int) {
	idx := g.index(x, y)
	p := &g.cells[idx]
	p.LifeTime -= rng.Float64() * g.params.decayMax(p.Material)
	if p.LifeTime > 0 {
		return
	}
	g.cells[idx] = DefaultParticle(Empty)
}

// burnFire recolors fire from its shade set every frame, then decays it.
// Expired fire leaves smoke behind one time in five.
func (g *Grid) burnFire(rng *core.RNG, x, y int) {
	idx := g.index(x, y)
	p := &g.cells[idx]
	p.ColorIdx = fireShade(rng.IntN(fireShadeCount))
	p.LifeTime -= rng.Float64() * g.params.FireDecayMax
	if p.LifeTime > 0 {
		return
	}
	if rng.Chance(g.params.FireSmokeChance) {
		g.cells[idx] = DefaultParticle(Smoke)
		return
	}
	g.cells[idx] = DefaultParticle(Empty)
}

// igniteFromNeighbors rolls the ignition chance once per burning neighbor
// among the eight surrounding cells. On success the cell transforms in
// place into fire, keeping its velocity and taking the class its material
// burns with: oil burns as a liquid, wood keeps burning where it stands.
func (g *Grid) igniteFromNeighbors(rng *core.RNG, x, y int) {
	idx := g.index(x, y)
	chance := g.params.OilIgniteChance
	burnClass := ClassLiquid
	if g.cells[idx].Material == Wood {
		chance = g.params.WoodIgniteChance
		burnClass = ClassStatic
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n, ok := g.Get(x+dx, y+dy)
			if !ok || (n.Material != Fire && n.Material != Flame) {
				continue
			}
			if !rng.Chance(chance) {
				continue
			}
			fire := DefaultParticle(Fire)
			fire.Velocity = g.cells[idx].Velocity
			fire.Class = burnClass
			g.cells[idx] = fire
			return
		}
	}
}
