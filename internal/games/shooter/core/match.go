package core

// MatchThreshold is the minimum connected same-color cluster size that
// pops.
const MatchThreshold = 3

// matchFactor scales the radius for cluster adjacency. One cell pitch
// is two radii; the extra half radius absorbs rounding slack between
// logically adjacent cells.
const matchFactor = 2.5

// FindMatches collects the connected same-color cluster containing
// seed. The fill runs over an explicit work list, never recursion: a
// bubble joins when its color equals the seed color and it sits within
// the adjacency distance of the bubble that discovered it. The returned
// set always contains at least the seed; the threshold test is the
// caller's.
func FindMatches(f *Field, seed Bubble) map[BubbleID]bool {
	limit := f.layout.Radius * matchFactor
	limitSq := limit * limit

	bubbles := f.All()
	set := map[BubbleID]bool{seed.ID: true}
	work := []Bubble{seed}

	for head := 0; head < len(work); head++ {
		from := work[head]
		for i := range bubbles {
			b := bubbles[i]
			if set[b.ID] || b.Color != seed.Color {
				continue
			}
			dx := b.X - from.X
			dy := b.Y - from.Y
			if dx*dx+dy*dy < limitSq {
				set[b.ID] = true
				work = append(work, b)
			}
		}
	}
	return set
}
