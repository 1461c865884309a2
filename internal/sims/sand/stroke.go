package sand

// DrawStroke rasterizes the segment between the previous and current
// cursor cells and paints the material into every cell on it; Empty
// erases. A zero-length stroke still affects its single cell, and cells
// beyond the grid edge are silently skipped.
func (g *Grid) DrawStroke(x1, y1, x2, y2 int, m Material) {
	g.DrawStrokeRadius(x1, y1, x2, y2, m, 0)
}

// DrawStrokeRadius draws a stroke with a square brush of the given radius
// stamped at every rasterized cell.
func (g *Grid) DrawStrokeRadius(x1, y1, x2, y2 int, m Material, radius int) {
	dx := abs(x2 - x1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	dy := -abs(y2 - y1)
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx + dy
	for {
		g.stamp(x1, y1, m, radius)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x1 == x2 {
				return
			}
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			if y1 == y2 {
				return
			}
			err += dx
			y1 += sy
		}
	}
}

func (g *Grid) stamp(x, y int, m Material, radius int) {
	if radius <= 0 {
		g.applyCell(x, y, m)
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			g.applyCell(x+dx, y+dy, m)
		}
	}
}

func (g *Grid) applyCell(x, y int, m Material) {
	if m == Empty {
		g.RemoveParticle(x, y)
		return
	}
	g.AddParticle(x, y, m)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
