package core

// ceilingFactor scales the radius for the ceiling band: every bubble
// whose center is within two radii of the top edge counts as anchored.
const ceilingFactor = 2

// FindFloating returns every bubble no longer connected to the ceiling,
// in field order. A color-agnostic work-list flood from all ceiling
// bubbles marks the grounded set, using the same adjacency distance as
// matching; whatever is left unmarked is floating. The result is
// computed from scratch on every call, there is no incremental
// tracking.
func FindFloating(f *Field) []Bubble {
	limit := f.layout.Radius * matchFactor
	limitSq := limit * limit
	ceiling := f.layout.Radius * ceilingFactor

	bubbles := f.All()
	grounded := make(map[BubbleID]bool, len(bubbles))
	var work []Bubble

	for i := range bubbles {
		if bubbles[i].Y <= ceiling {
			grounded[bubbles[i].ID] = true
			work = append(work, bubbles[i])
		}
	}

	for head := 0; head < len(work); head++ {
		from := work[head]
		for i := range bubbles {
			b := bubbles[i]
			if grounded[b.ID] {
				continue
			}
			dx := b.X - from.X
			dy := b.Y - from.Y
			if dx*dx+dy*dy < limitSq {
				grounded[b.ID] = true
				work = append(work, b)
			}
		}
	}

	var floating []Bubble
	for i := range bubbles {
		if !grounded[bubbles[i].ID] {
			floating = append(floating, bubbles[i])
		}
	}
	return floating
}
