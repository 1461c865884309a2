package sand

// Grid owns the flat particle buffer. (0, 0) is the bottom left of the
// simulated space and gravity acts toward decreasing y; cell (x, y) lives
// at buffer offset y*width + x. The per-frame updated flags live on the
// grid as scheduling scratch, not on the particle records.
type Grid struct {
	w, h    int
	cells   []Particle
	updated []bool
	params  Params
}

// NewGrid allocates a grid of empty cells using the default behavior
// tunables.
func NewGrid(w, h int) *Grid {
	return NewGridWithParams(w, h, DefaultParams())
}

// NewGridWithParams allocates a grid with the provided behavior tunables.
// Non-positive dimensions are a construction error and panic rather than
// produce a half-built grid.
func NewGridWithParams(w, h int, params Params) *Grid {
	if w <= 0 || h <= 0 {
		panic("sand: grid dimensions must be positive")
	}
	g := &Grid{
		w:       w,
		h:       h,
		cells:   make([]Particle, w*h),
		updated: make([]bool, w*h),
		params:  params,
	}
	for i := range g.cells {
		g.cells[i] = DefaultParticle(Empty)
	}
	return g
}

// Width returns the horizontal cell count.
func (g *Grid) Width() int { return g.w }

// Height returns the vertical cell count.
func (g *Grid) Height() int { return g.h }

// Params returns the active behavior tunables.
func (g *Grid) Params() Params { return g.params }

// SetParams replaces the behavior tunables for subsequent steps.
func (g *Grid) SetParams(p Params) { g.params = p }

func (g *Grid) index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the particle at (x, y). The second result is false for
// out-of-range coordinates.
func (g *Grid) Get(x, y int) (Particle, bool) {
	if !g.InBounds(x, y) {
		return Particle{}, false
	}
	return g.cells[g.index(x, y)], true
}

// Set overwrites the cell at (x, y). Out-of-range coordinates are a no-op.
func (g *Grid) Set(x, y int, p Particle) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = p
}

// Swap exchanges the full particle state of two cells and marks both as
// updated for the remainder of the current frame. Either coordinate being
// out of range makes the swap a no-op.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	i, j := g.index(x1, y1), g.index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	g.updated[i] = true
	g.updated[j] = true
}

// Clear resets every cell to the Empty default.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = DefaultParticle(Empty)
		g.updated[i] = false
	}
}

// IsEmpty reports whether (x, y) holds an Empty cell. Out-of-range
// coordinates read as occupied so nothing flows past the grid edge.
func (g *Grid) IsEmpty(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].Material == Empty
}

// classAt returns the element class at (x, y), treating out-of-range
// coordinates as a static boundary.
func (g *Grid) classAt(x, y int) Class {
	if !g.InBounds(x, y) {
		return ClassStatic
	}
	return g.cells[g.index(x, y)].Class
}

// AddParticle writes the default particle for the material into (x, y).
// Occupied and out-of-range targets are left untouched.
func (g *Grid) AddParticle(x, y int, m Material) {
	if !g.IsEmpty(x, y) {
		return
	}
	g.cells[g.index(x, y)] = DefaultParticle(m)
}

// RemoveParticle overwrites (x, y) with the Empty default. Already-empty
// and out-of-range targets are a no-op.
func (g *Grid) RemoveParticle(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	if g.cells[idx].Material == Empty {
		return
	}
	g.cells[idx] = DefaultParticle(Empty)
}
