// Package core implements the bubble shooter simulation: a staggered
// grid of colored bubbles, a single projectile integrated per tick,
// nearest-free-cell placement, same-color match detection, and
// ceiling-connectivity pruning. The package is pure and deterministic:
// no I/O, no globals, and all randomness flows through an injected
// ColorSource so whole games can be replayed from a seed.
package core

import "strings"

// Color represents a bubble color.
type Color uint8

const (
	ColorRed Color = iota
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorOrange
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	default:
		return ColorRed, false
	}
}

// AllColors returns a slice of all playable colors.
func AllColors() []Color {
	return []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorOrange}
}
