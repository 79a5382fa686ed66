package sim

import (
	"math"
	"testing"

	"asciipond/constants"
	"asciipond/wave"
)

func newQuietSim(cols, rows int) *Simulation {
	s := New(Config{Cols: cols, Rows: rows, Seed: 1, Rain: false})
	// Park the weather spawners so cells see only what the test places.
	s.weather.nextDrop = 1e9
	s.weather.nextMicro = 1e9
	return s
}

func TestCompositeAmplifiesOverlap(t *testing.T) {
	s := newQuietSim(48, 24)
	s.now = 1.0

	// Cell (20,10) has its center at world (246, 252). Two ripples born
	// at t=0 sit exactly one second of propagation away on either side,
	// so both ring fronts cross the cell center at now=1.
	const cx, cy = 246.0, 252.0
	r1 := wave.Ripple{X: cx - constants.RippleSpeed, Y: cy}
	r2 := wave.Ripple{X: cx + constants.RippleSpeed, Y: cy}
	s.pool.Ripples = append(s.pool.Ripples, r1, r2)

	v1 := r1.Influence(cx, cy, s.now)
	v2 := r2.Influence(cx, cy, s.now)
	if v1 == 0 || v2 == 0 {
		t.Fatalf("Expected both ring fronts on the cell, got %v and %v", v1, v2)
	}

	cell := s.compositeCell(20, 10)

	if cell.Overlap != 2 {
		t.Fatalf("Expected overlap 2, got %d", cell.Overlap)
	}
	amplified := (v1 + v2) * (1 + constants.InterferenceBoost)
	if math.Abs(cell.Interference-amplified) > 1e-9 {
		t.Errorf("Expected amplified interference %v, got %v", amplified, cell.Interference)
	}
	want := wave.Ambient(cx/s.worldW, cy/s.worldH, s.now, 0) + amplified
	if math.Abs(cell.Wave-want) > 1e-9 {
		t.Errorf("Expected composite wave %v, got %v", want, cell.Wave)
	}
}

func TestCompositeSingleSourceNoAmplification(t *testing.T) {
	s := newQuietSim(48, 24)
	s.now = 1.0

	const cx, cy = 246.0, 252.0
	r := wave.Ripple{X: cx - constants.RippleSpeed, Y: cy}
	s.pool.Ripples = append(s.pool.Ripples, r)

	cell := s.compositeCell(20, 10)

	if cell.Overlap != 1 {
		t.Fatalf("Expected overlap 1, got %d", cell.Overlap)
	}
	if cell.Interference != 0 {
		t.Errorf("Expected no interference with a lone source, got %v", cell.Interference)
	}
	want := wave.Ambient(cx/s.worldW, cy/s.worldH, s.now, 0) + r.Influence(cx, cy, s.now)
	if math.Abs(cell.Wave-want) > 1e-9 {
		t.Errorf("Expected composite wave %v, got %v", want, cell.Wave)
	}
}

func TestCompositeFluidHeightContribution(t *testing.T) {
	s := newQuietSim(16, 16)
	s.now = 2.0

	base := s.compositeCell(8, 8)
	s.fluid.height[8*16+8] = 0.4
	lifted := s.compositeCell(8, 8)

	want := 0.4 * constants.FluidHeightWeight
	if got := lifted.Wave - base.Wave; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected drag height to add %v, got %v", want, got)
	}
}

func TestCompositeGazeGlow(t *testing.T) {
	s := newQuietSim(32, 16)
	s.now = 0.5

	// Cursor exactly on the cell center: full glow.
	s.pointer.MoveTo((10+0.5)*constants.CellWidth, (5+0.5)*constants.CellHeight)
	cell := s.compositeCell(10, 5)
	if math.Abs(cell.Glow-1) > 1e-9 {
		t.Errorf("Expected full glow under the cursor, got %v", cell.Glow)
	}
	wantAlpha := clamp01(0.4 + 0.6*cell.Intensity + 0.2*cell.Glow)
	if math.Abs(cell.Alpha-wantAlpha) > 1e-9 {
		t.Errorf("Expected alpha %v under the cursor, got %v", wantAlpha, cell.Alpha)
	}

	// Far cell: no glow at all.
	far := s.compositeCell(31, 15)
	if far.Glow != 0 {
		t.Errorf("Expected no glow far from the cursor, got %v", far.Glow)
	}
}

func TestCompositeClampsWave(t *testing.T) {
	s := newQuietSim(16, 16)
	s.now = 2.0

	s.fluid.height[8*16+8] = 100
	cell := s.compositeCell(8, 8)
	if cell.Wave != constants.WaveClamp {
		t.Errorf("Expected wave clamped to %v, got %v", constants.WaveClamp, cell.Wave)
	}
	if cell.Intensity != 1 || cell.CharValue != 1 {
		t.Errorf("Expected saturated intensity and char value, got %v and %v",
			cell.Intensity, cell.CharValue)
	}

	s.fluid.height[8*16+8] = -100
	cell = s.compositeCell(8, 8)
	if cell.Wave != -constants.WaveClamp {
		t.Errorf("Expected wave clamped to %v, got %v", -constants.WaveClamp, cell.Wave)
	}
	if cell.Intensity != 0 || cell.CharValue != 0 {
		t.Errorf("Expected floored intensity and char value, got %v and %v",
			cell.Intensity, cell.CharValue)
	}
}
