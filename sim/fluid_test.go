package sim

import (
	"math"
	"testing"

	"asciipond/constants"
)

func TestFluidImpulseStampsCenter(t *testing.T) {
	f := NewFluid(20, 10)
	f.Impulse(10, 5, 2.0, -1.0, 0.5)

	vx, vy := f.VelocityAt(10, 5)
	if vx != 2.0 || vy != -1.0 {
		t.Errorf("Expected full impulse at stamp center, got (%v,%v)", vx, vy)
	}
	if h := f.HeightAt(10, 5); h != 0.5 {
		t.Errorf("Expected full height lift at center, got %v", h)
	}

	// Falloff is linear: one cell out carries less than the center.
	vx1, _ := f.VelocityAt(11, 5)
	if vx1 <= 0 || vx1 >= 2.0 {
		t.Errorf("Expected attenuated impulse one cell out, got %v", vx1)
	}
	// Beyond the stamp radius nothing changes.
	if vx2, _ := f.VelocityAt(10+constants.FluidImpulseRadius+1, 5); vx2 != 0 {
		t.Errorf("Expected zero outside stamp radius, got %v", vx2)
	}
}

func TestFluidImpulseClipsAtEdges(t *testing.T) {
	f := NewFluid(8, 8)
	// Must not panic or write out of bounds.
	f.Impulse(0, 0, 1, 1, 1)
	f.Impulse(7, 7, 1, 1, 1)
	f.Impulse(-5, -5, 1, 1, 1)
	if vx, _ := f.VelocityAt(0, 0); vx == 0 {
		t.Error("Expected corner stamp to land inside the grid")
	}
}

func TestFluidStepDampsVelocity(t *testing.T) {
	f := NewFluid(10, 10)
	f.Impulse(5, 5, 1.0, 0, 0)
	f.Step()
	vx, _ := f.VelocityAt(5, 5)
	if math.Abs(vx-constants.FluidDamping) > 1e-12 {
		t.Errorf("Expected velocity damped to %v, got %v", constants.FluidDamping, vx)
	}
}

func TestFluidStepSpreadsHeight(t *testing.T) {
	f := NewFluid(11, 11)
	center := 5*11 + 5
	f.height[center] = 1.0

	f.Step()

	if got := f.HeightAt(5, 5); got >= 1.0 {
		t.Errorf("Expected spike to relax below 1.0, got %v", got)
	}
	if got := f.HeightAt(6, 5); got <= 0 {
		t.Errorf("Expected neighbor to rise above 0, got %v", got)
	}
	// The relaxation must decay, not blow up.
	total := 0.0
	for _, h := range f.height {
		total += math.Abs(h)
	}
	if total > 2.0 {
		t.Errorf("Expected bounded total height after one step, got %v", total)
	}

	for i := 0; i < 600; i++ {
		f.Step()
	}
	if got := math.Abs(f.HeightAt(5, 5)); got > 0.01 {
		t.Errorf("Expected surface to settle toward flat, got %v", got)
	}
}

func TestFluidResizeClears(t *testing.T) {
	f := NewFluid(10, 10)
	f.Impulse(5, 5, 1, 1, 1)
	f.Resize(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if h := f.HeightAt(x, y); h != 0 {
				t.Fatalf("Expected cleared grid after resize, found %v at (%d,%d)", h, x, y)
			}
		}
	}
}

func TestFluidOutOfBoundsReads(t *testing.T) {
	f := NewFluid(4, 4)
	if h := f.HeightAt(-1, 2); h != 0 {
		t.Errorf("Expected zero height outside grid, got %v", h)
	}
	if vx, vy := f.VelocityAt(2, 99); vx != 0 || vy != 0 {
		t.Errorf("Expected zero velocity outside grid, got (%v,%v)", vx, vy)
	}
}
