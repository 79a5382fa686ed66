package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Ramp is the glyph ladder from still water to breaking crest, ordered
// sparse to dense.
var Ramp = []rune(" ·:~≈=o*O0@█")

// Index maps a character-selection value onto the ramp by linear
// scaling. Inputs outside [0,1] saturate to the first or last glyph.
func Index(v float64) int {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return int(v*float64(len(Ramp)-1) + 0.5)
}

// GlyphFor returns the ramp glyph for a character-selection value.
func GlyphFor(v float64) rune {
	return Ramp[Index(v)]
}

// ValidateRamp rejects ramps that would break the grid: empty ramps and
// glyphs wider than one terminal cell.
func ValidateRamp(ramp []rune) error {
	if len(ramp) == 0 {
		return fmt.Errorf("empty glyph ramp")
	}
	for _, r := range ramp {
		if runewidth.RuneWidth(r) != 1 {
			return fmt.Errorf("glyph %q is not one cell wide", r)
		}
	}
	return nil
}
