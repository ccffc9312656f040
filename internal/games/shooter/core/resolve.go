package core

import "math"

// Placement is the outcome of resolving a collided shot into a grid cell.
type Placement struct {
	Bubble   Bubble
	Degraded bool // true when every neighbor was taken and an occupied cell was reused
}

// ResolvePlacement converts a collided projectile into a placed bubble.
// The target cell is derived from the pre-collision position (current
// position minus velocity, the last sample known not to collide). If
// that cell is occupied, the free cell of the 3x3 neighborhood nearest
// to the pre-collision point wins. If the whole neighborhood is
// occupied the original cell is reused anyway and the placement is
// flagged degraded so callers can tell the overlap apart from a normal
// landing.
func ResolvePlacement(f *Field, p Projectile) Placement {
	prevX := p.X - p.VX
	prevY := p.Y - p.VY

	l := f.layout
	row := l.RowOf(prevY)
	col := l.ColOf(prevX, row)

	// Derived addresses stay non-negative and inside the row's usable
	// columns; overshoot past the ceiling or a wall clamps back in.
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	if m := l.MaxCol(row); col > m {
		col = m
	}

	degraded := false
	if f.IsOccupied(row, col) {
		if r, c, ok := nearestFree(f, row, col, prevX, prevY); ok {
			row, col = r, c
		} else {
			degraded = true
		}
	}

	return Placement{
		Bubble:   f.AddAt(row, col, p.Color),
		Degraded: degraded,
	}
}

// nearestFree scans the 3x3 neighborhood of (row, col) in row-major
// order and returns the free cell whose center is nearest the
// pre-collision point. Only a strictly smaller distance replaces the
// candidate, so exact ties keep the lowest row, then the lowest column.
func nearestFree(f *Field, row, col int, px, py float64) (int, int, bool) {
	l := f.layout
	best := math.MaxFloat64
	bestRow, bestCol := 0, 0
	found := false

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c > l.MaxCol(r) {
				continue
			}
			if f.IsOccupied(r, c) {
				continue
			}
			x, y := l.CenterOf(r, c)
			dx := x - px
			dy := y - py
			if d := dx*dx + dy*dy; d < best {
				best = d
				bestRow, bestCol = r, c
				found = true
			}
		}
	}
	return bestRow, bestCol, found
}
