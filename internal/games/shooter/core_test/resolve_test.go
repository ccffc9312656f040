package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter/core"
)

func addressOf(b core.Bubble) core.Address {
	return testLayout().AddressOf(b.X, b.Y)
}

func TestResolveEmptyCell(t *testing.T) {
	f := core.NewField(testLayout())

	// Pre-collision position sits exactly on the center of (2,3).
	cx, cy := testLayout().CenterOf(2, 3)
	p := core.Projectile{X: cx + 4, Y: cy + 3, VX: 4, VY: 3, Color: core.ColorRed}

	placed := core.ResolvePlacement(f, p)

	if placed.Degraded {
		t.Error("placement into a free cell should not be degraded")
	}
	if got := addressOf(placed.Bubble); got != (core.Address{Row: 2, Col: 3}) {
		t.Errorf("placed at %v, expected (2,3)", got)
	}
	if placed.Bubble.Color != core.ColorRed {
		t.Errorf("placed color = %v, expected red", placed.Bubble.Color)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", f.Len())
	}
}

func TestResolveOccupiedPicksNearestNeighbor(t *testing.T) {
	f := core.NewField(testLayout())
	f.AddAt(2, 3, core.ColorBlue)

	// Pre-collision position is nudged right of the occupied center,
	// so (2,4) is strictly the nearest free neighbor.
	cx, cy := testLayout().CenterOf(2, 3)
	p := core.Projectile{X: cx + 3, Y: cy + 4, VX: 0, VY: 4, Color: core.ColorRed}

	placed := core.ResolvePlacement(f, p)

	if placed.Degraded {
		t.Error("placement should not be degraded while neighbors are free")
	}
	if got := addressOf(placed.Bubble); got != (core.Address{Row: 2, Col: 4}) {
		t.Errorf("placed at %v, expected (2,4)", got)
	}
}

func TestResolveTieKeepsScanOrder(t *testing.T) {
	f := core.NewField(testLayout())

	// Only (2,2) and (2,4) are free, both exactly one diameter from the
	// pre-collision point at the center of (2,3). The scan keeps the
	// first minimum, so the lower column wins.
	f.AddAt(2, 3, core.ColorBlue)
	for _, col := range []int{2, 3, 4} {
		f.AddAt(1, col, core.ColorBlue)
		f.AddAt(3, col, core.ColorBlue)
	}

	cx, cy := testLayout().CenterOf(2, 3)
	p := core.Projectile{X: cx, Y: cy + 5, VX: 0, VY: 5, Color: core.ColorRed}

	placed := core.ResolvePlacement(f, p)

	if placed.Degraded {
		t.Error("placement should not be degraded while (2,2) is free")
	}
	if got := addressOf(placed.Bubble); got != (core.Address{Row: 2, Col: 2}) {
		t.Errorf("placed at %v, expected (2,2)", got)
	}
}

func TestResolveDegradedFallback(t *testing.T) {
	f := core.NewField(testLayout())

	// The target cell and its whole neighborhood are taken.
	for row := 1; row <= 3; row++ {
		for col := 2; col <= 4; col++ {
			f.AddAt(row, col, core.ColorBlue)
		}
	}

	cx, cy := testLayout().CenterOf(2, 3)
	p := core.Projectile{X: cx, Y: cy + 5, VX: 0, VY: 5, Color: core.ColorRed}

	placed := core.ResolvePlacement(f, p)

	if !placed.Degraded {
		t.Error("expected degraded placement with no free neighbor")
	}
	// The shot is still placed, stacked on the occupied target cell.
	if got := addressOf(placed.Bubble); got != (core.Address{Row: 2, Col: 3}) {
		t.Errorf("placed at %v, expected (2,3)", got)
	}
	if f.Len() != 10 {
		t.Errorf("Len() = %d, expected 10", f.Len())
	}
}

func TestResolveClampsCeilingOvershoot(t *testing.T) {
	f := core.NewField(testLayout())

	// Pre-collision position (34, 0) derives row -1; placement clamps
	// back to row 0.
	p := core.Projectile{X: 34, Y: -6, VX: 0, VY: -6, Color: core.ColorGreen}

	placed := core.ResolvePlacement(f, p)

	if placed.Degraded {
		t.Error("ceiling overshoot should not be degraded")
	}
	if got := addressOf(placed.Bubble); got != (core.Address{Row: 0, Col: 1}) {
		t.Errorf("placed at %v, expected (0,1)", got)
	}
}

func TestResolveClampsOddRowRightEdge(t *testing.T) {
	f := core.NewField(testLayout())

	// Pre-collision position near the right wall on an odd row derives
	// column 7, past the last usable odd-row column.
	_, cy := testLayout().CenterOf(1, 0)
	p := core.Projectile{X: 160, Y: cy, VX: 5, VY: 0, Color: core.ColorGreen}

	placed := core.ResolvePlacement(f, p)

	if got := addressOf(placed.Bubble); got != (core.Address{Row: 1, Col: 6}) {
		t.Errorf("placed at %v, expected (1,6)", got)
	}
	if x := placed.Bubble.X; x > testLayout().Width()-testLayout().Radius {
		t.Errorf("placed bubble x = %v, crosses the right wall", x)
	}
}
