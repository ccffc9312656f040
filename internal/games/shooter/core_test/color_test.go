package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter/core"
)

func TestColorStringParseRoundTrip(t *testing.T) {
	for _, c := range core.AllColors() {
		got, ok := core.ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v, true", c.String(), got, ok, c)
		}
	}

	if _, ok := core.ParseColor("magenta"); ok {
		t.Error("ParseColor accepted an unknown color name")
	}
}

func TestColorCharsDistinct(t *testing.T) {
	seen := map[rune]bool{}
	for _, c := range core.AllColors() {
		ch := c.Char()
		if seen[ch] {
			t.Errorf("Char() %q reused by %v", ch, c)
		}
		seen[ch] = true
	}
}
