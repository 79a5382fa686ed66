package render

import (
	"math"

	"github.com/crazy3lf/colorconv"

	"asciipond/constants"
	"asciipond/sim"
)

// Colorize maps one cell's composite signal to a paint color. The base
// hue comes from a small decision table: interference zones get their
// own treatment so overlap reads clearly at character resolution, and
// everything else rides a single hue gradient on intensity. Gaze glow
// and drag displacement adjust the result afterward, and the cell's
// alpha blends it toward the background.
func Colorize(cell sim.Cell) RGB {
	h, s, l := baseHSL(cell)

	// Gaze brightens and washes out the water under the cursor.
	l += cell.Glow * 0.25
	s *= 1 - cell.Glow*0.3

	// Dragged water catches a little extra light.
	disp := math.Hypot(cell.DispX, cell.DispY)
	l += math.Min(0.15, disp*0.1)

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	r, g, b, err := colorconv.HSLToRGB(h, s, l)
	if err != nil {
		return Background
	}
	return Background.Blend(RGB{R: r, G: g, B: b}, cell.Alpha)
}

// baseHSL is the interference decision table.
func baseHSL(cell sim.Cell) (h, s, l float64) {
	interfering := cell.Overlap > 1 &&
		math.Abs(cell.Interference) > constants.InterferenceThreshold

	switch {
	case interfering && cell.Wave > 0:
		// Constructive: bright, washed-out crest
		return 185, 0.35, 0.55 + 0.35*cell.Intensity
	case interfering:
		// Destructive: deep, saturated trough
		return 215, 0.85, 0.2 + 0.3*cell.Intensity
	default:
		return 210 - 25*cell.Intensity, 0.65, 0.15 + 0.55*cell.Intensity
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
