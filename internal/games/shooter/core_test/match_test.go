package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter/core"
)

func TestFindMatchesSingleBubble(t *testing.T) {
	f := core.NewField(testLayout())
	seed := f.AddAt(0, 0, core.ColorRed)

	set := core.FindMatches(f, seed)

	if len(set) != 1 {
		t.Errorf("len(set) = %d, expected 1", len(set))
	}
	if !set[seed.ID] {
		t.Error("seed bubble missing from its own match set")
	}
}

func TestFindMatchesAdjacentChain(t *testing.T) {
	f := core.NewField(testLayout())

	// Three reds in a row chain together; the blue neighbor and the
	// far red stay out.
	a := f.AddAt(0, 2, core.ColorRed)
	b := f.AddAt(0, 3, core.ColorRed)
	c := f.AddAt(0, 4, core.ColorRed)
	blue := f.AddAt(0, 5, core.ColorBlue)
	far := f.AddAt(0, 7, core.ColorRed)

	set := core.FindMatches(f, b)

	if len(set) != 3 {
		t.Errorf("len(set) = %d, expected 3", len(set))
	}
	for _, id := range []core.BubbleID{a.ID, b.ID, c.ID} {
		if !set[id] {
			t.Errorf("expected %q in match set", id)
		}
	}
	if set[blue.ID] {
		t.Error("different color joined the match set")
	}
	if set[far.ID] {
		t.Error("far bubble joined the match set across a gap")
	}
}

func TestFindMatchesAcrossRows(t *testing.T) {
	f := core.NewField(testLayout())

	// A vertical zigzag: each link is one diameter long, well inside
	// the chain distance.
	top := f.AddAt(0, 3, core.ColorGreen)
	mid := f.AddAt(1, 3, core.ColorGreen)
	bot := f.AddAt(2, 3, core.ColorGreen)

	set := core.FindMatches(f, top)

	if len(set) != 3 {
		t.Errorf("len(set) = %d, expected 3", len(set))
	}
	if !set[mid.ID] || !set[bot.ID] {
		t.Error("chain did not propagate across rows")
	}
}

func TestFindMatchesSkipsGaps(t *testing.T) {
	f := core.NewField(testLayout())

	// Same color two diameters apart never chains.
	f.AddAt(0, 0, core.ColorRed)
	seed := f.AddAt(0, 2, core.ColorRed)
	f.AddAt(0, 4, core.ColorRed)

	set := core.FindMatches(f, seed)

	if len(set) != 1 {
		t.Errorf("len(set) = %d, expected 1", len(set))
	}
}

func TestFindMatchesLargeCluster(t *testing.T) {
	f := core.NewField(testLayout())

	// Four full rows of one color collapse into a single set.
	want := 0
	for row := 0; row < 4; row++ {
		for col := 0; col <= testLayout().MaxCol(row); col++ {
			f.AddAt(row, col, core.ColorPurple)
			want++
		}
	}
	seed := f.All()[0]

	set := core.FindMatches(f, seed)

	if len(set) != want {
		t.Errorf("len(set) = %d, expected %d", len(set), want)
	}
}
