package sim

import (
	"math"

	"asciipond/constants"
	"asciipond/wave"
)

// Cell is one grid cell's composite signal for a single frame. Cells
// are ephemeral: the whole frame buffer is recomputed every step and
// nothing in here survives the frame.
type Cell struct {
	// Wave is the clamped composite wave value
	Wave float64
	// Intensity is (wave+1)/2 clamped to [0,1], drives color
	Intensity float64
	// CharValue is (wave*1.5+1)/2 clamped to [0,1], drives glyph choice.
	// The two are clamped independently so extreme values saturate to the
	// darkest or brightest glyph instead of wrapping.
	CharValue float64
	// Overlap counts sources with nonzero influence here
	Overlap int
	// Interference is the amplified source sum when Overlap > 1
	Interference float64
	// Glow is the cursor gaze falloff in [0,1]
	Glow float64
	// DispX, DispY is the drag displacement in cells
	DispX, DispY float64
	// Alpha is the paint opacity in [0,1]
	Alpha float64
}

// compositeCell computes one cell's signal from every active layer:
// ambient field, pooled sources with interference amplification, the
// continuous trail field, the drag grid, and cursor gaze.
func (s *Simulation) compositeCell(col, row int) Cell {
	x := (float64(col) + 0.5) * constants.CellWidth
	y := (float64(row) + 0.5) * constants.CellHeight
	nx := x / s.worldW
	ny := y / s.worldH

	w := wave.Ambient(nx, ny, s.now, s.weather.Wind)

	srcSum := 0.0
	overlap := 0
	for _, r := range s.pool.Ripples {
		if v := r.Influence(x, y, s.now); v != 0 {
			srcSum += v
			overlap++
		}
	}
	for _, wk := range s.pool.Wakes {
		if v := wk.Influence(x, y, s.now); v != 0 {
			srcSum += v
			overlap++
		}
	}

	interference := 0.0
	if overlap > 1 {
		srcSum *= 1 + float64(overlap-1)*constants.InterferenceBoost
		interference = srcSum
	}
	w += srcSum

	// The trail field is continuous, not a discrete source; it does not
	// inflate the overlap count.
	w += wave.TrailField(s.trail, x, y, s.now)

	w += s.fluid.HeightAt(col, row) * constants.FluidHeightWeight

	glow := 0.0
	if s.pointer.OnScreen {
		dist := math.Hypot(x-s.pointer.X, y-s.pointer.Y)
		if dist < constants.GazeRadius {
			fall := 1 - dist/constants.GazeRadius
			glow = fall * fall
			w += glow * constants.GazeShimmerAmp * math.Sin(s.now*constants.GazeShimmerFreq+dist*0.08)
		}
	}

	if w > constants.WaveClamp {
		w = constants.WaveClamp
	} else if w < -constants.WaveClamp {
		w = -constants.WaveClamp
	}

	vx, vy := s.fluid.VelocityAt(col, row)

	cell := Cell{
		Wave:         w,
		Intensity:    clamp01((w + 1) / 2),
		CharValue:    clamp01((w*1.5 + 1) / 2),
		Overlap:      overlap,
		Interference: interference,
		Glow:         glow,
		DispX:        vx * constants.DisplacementScale,
		DispY:        vy * constants.DisplacementScale,
	}
	cell.Alpha = clamp01(0.4 + 0.6*cell.Intensity + 0.2*glow)
	return cell
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
