package core

// ColorSource supplies the colors for seeded rows and projectiles.
// Implementations must be deterministic for a fixed seed so whole games
// can be replayed in tests.
type ColorSource interface {
	// Next returns the next color, drawn independently and uniformly
	// from the playable set.
	Next() Color
}

// seededColors is a deterministic xorshift64 generator over the
// playable color set.
type seededColors struct {
	state uint64
}

// NewColorSource creates a uniform color source with the given seed.
func NewColorSource(seed int64) ColorSource {
	s := uint64(seed)
	if s == 0 {
		s = 88172645463325252 // Default seed
	}
	return &seededColors{state: s}
}

// Next returns the next uniformly drawn color.
func (r *seededColors) Next() Color {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return Color(r.state % uint64(ColorCount))
}
