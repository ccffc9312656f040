package core

import (
	"fmt"
	"math"
)

// sqrt3 is the row pitch of the staggered layout: rows sit radius*sqrt(3)
// apart so offset-row bubbles nest into the gaps of the row above.
var sqrt3 = math.Sqrt(3)

// Address is a logical grid position. Addresses are derived from world
// coordinates on demand; bubbles store only their world position.
type Address struct {
	Row int
	Col int
}

// String returns a string representation of the address.
func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}

// Layout converts between world coordinates and grid addresses for a
// staggered (offset-row) bubble grid. Odd rows are shifted right by one
// radius. The four mapping functions are exact inverses for every
// address actually produced by placement.
type Layout struct {
	Radius float64 // Bubble radius in world units
	Cols   int     // Column count of even rows; odd rows hold one less
}

// Width returns the playfield width: Cols bubble diameters.
func (l Layout) Width() float64 {
	return float64(l.Cols) * 2 * l.Radius
}

// offset returns the horizontal shift of a row: one radius on odd rows.
// Works for negative rows too, which projectile overshoot can produce.
func (l Layout) offset(row int) float64 {
	if row%2 != 0 {
		return l.Radius
	}
	return 0
}

// RowOf converts a world y coordinate to a row index.
func (l Layout) RowOf(y float64) int {
	return int(math.Round((y - l.Radius) / (l.Radius * sqrt3)))
}

// ColOf converts a world x coordinate to a column index within a row.
func (l Layout) ColOf(x float64, row int) int {
	return int(math.Round((x - l.Radius - l.offset(row)) / (2 * l.Radius)))
}

// CenterOf returns the world center of a grid cell.
func (l Layout) CenterOf(row, col int) (x, y float64) {
	x = float64(col)*2*l.Radius + l.Radius + l.offset(row)
	y = float64(row)*l.Radius*sqrt3 + l.Radius
	return x, y
}

// MaxCol returns the highest usable column of a row. Odd rows stop one
// column short so their offset does not push the last bubble outside
// the right wall.
func (l Layout) MaxCol(row int) int {
	if row%2 != 0 {
		return l.Cols - 2
	}
	return l.Cols - 1
}

// AddressOf converts a world position to its grid address.
func (l Layout) AddressOf(x, y float64) Address {
	row := l.RowOf(y)
	return Address{Row: row, Col: l.ColOf(x, row)}
}
