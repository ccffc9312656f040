package core

// hitFactor scales the radius for projectile-vs-bubble collision. It is
// slightly under one diameter so the shot visibly reaches the cluster
// before it snaps.
const hitFactor = 1.8

// Projectile is the single in-flight shot. At most one is active at any
// time; the simulation owns it and reuses the value shot after shot.
type Projectile struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Color  Color
	Active bool
}

// advance integrates one tick of motion and reflects off the side
// walls. Reflection only negates the horizontal velocity: the position
// is not corrected, so a slight overshoot past a wall is tolerated and
// recovers on the following tick.
func (p *Projectile) advance(l Layout) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < l.Radius || p.X > l.Width()-l.Radius {
		p.VX = -p.VX
	}
}

// hitsCeiling reports whether the shot has reached the ceiling band.
func (p *Projectile) hitsCeiling(l Layout) bool {
	return p.Y < l.Radius
}

// hitsBubble reports whether any placed bubble sits within the
// collision distance of the shot's current position. The first bubble
// in field order decides, so iteration order is part of the behavior.
func (p *Projectile) hitsBubble(f *Field) bool {
	limit := f.layout.Radius * hitFactor
	limitSq := limit * limit
	for i := range f.bubbles {
		dx := f.bubbles[i].X - p.X
		dy := f.bubbles[i].Y - p.Y
		if dx*dx+dy*dy < limitSq {
			return true
		}
	}
	return false
}

// outOfBounds reports whether the shot has left the playfield
// vertically. Bottom exit is unreachable with the fixed upward launch
// but is still retired cleanly.
func (p *Projectile) outOfBounds(l Layout, height float64) bool {
	return p.Y < -l.Radius || p.Y > height+l.Radius
}
