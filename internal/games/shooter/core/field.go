package core

import "strconv"

// BubbleID uniquely identifies a placed bubble. IDs come from a counter
// owned by the field, so a fixed seed replays the exact same IDs.
type BubbleID string

// Bubble is a single placed bubble. The position is the world-space
// center of its grid cell; a bubble never moves once placed, it is only
// removed by a match or a floating-cluster drop.
type Bubble struct {
	ID    BubbleID
	X     float64
	Y     float64
	Color Color
}

// Field is the collection of placed bubbles. It is storage only:
// occupancy is derived through the layout on every query, and the
// one-bubble-per-cell invariant is upheld by the placement resolver,
// not enforced here.
type Field struct {
	layout  Layout
	bubbles []Bubble
	nextID  int
}

// NewField creates an empty field over the given layout.
func NewField(l Layout) *Field {
	return &Field{layout: l}
}

// Layout returns the grid layout the field was built with.
func (f *Field) Layout() Layout {
	return f.layout
}

// Add places a bubble at an arbitrary world position and returns it
// with its assigned ID.
func (f *Field) Add(x, y float64, c Color) Bubble {
	f.nextID++
	b := Bubble{
		ID:    BubbleID("b" + strconv.Itoa(f.nextID)),
		X:     x,
		Y:     y,
		Color: c,
	}
	f.bubbles = append(f.bubbles, b)
	return b
}

// AddAt places a bubble snapped to the center of a grid cell.
func (f *Field) AddAt(row, col int, c Color) Bubble {
	x, y := f.layout.CenterOf(row, col)
	return f.Add(x, y, c)
}

// All returns the placed bubbles in insertion order. The slice is the
// field's backing store; callers must not mutate it.
func (f *Field) All() []Bubble {
	return f.bubbles
}

// Len returns the number of placed bubbles.
func (f *Field) Len() int {
	return len(f.bubbles)
}

// IsOccupied reports whether any stored bubble maps to the given cell.
// This scans the whole field; board sizes keep that cheap.
func (f *Field) IsOccupied(row, col int) bool {
	for i := range f.bubbles {
		r := f.layout.RowOf(f.bubbles[i].Y)
		if r != row {
			continue
		}
		if f.layout.ColOf(f.bubbles[i].X, r) == col {
			return true
		}
	}
	return false
}

// RemoveAll deletes every bubble whose ID is in the set and returns the
// removed bubbles in their former field order.
func (f *Field) RemoveAll(ids map[BubbleID]bool) []Bubble {
	if len(ids) == 0 {
		return nil
	}
	var removed []Bubble
	kept := f.bubbles[:0]
	for _, b := range f.bubbles {
		if ids[b.ID] {
			removed = append(removed, b)
		} else {
			kept = append(kept, b)
		}
	}
	f.bubbles = kept
	return removed
}

// Clear drops all bubbles and restarts ID assignment.
func (f *Field) Clear() {
	f.bubbles = f.bubbles[:0]
	f.nextID = 0
}
