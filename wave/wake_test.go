package wave

import (
	"math"
	"testing"

	"asciipond/constants"
)

func TestWakeZeroBehindOrigin(t *testing.T) {
	w := NewWake(200, 200, 0, 0) // travelling +x
	if v := w.Influence(150, 200, 0.5); v != 0 {
		t.Errorf("Expected zero influence behind origin, got %v", v)
	}
	if v := w.Influence(200, 200, 0.5); v != 0 {
		t.Errorf("Expected zero influence at origin, got %v", v)
	}
}

func TestWakeZeroBeyondLateralWidth(t *testing.T) {
	w := NewWake(0, 0, 0, 0)
	along := 100.0
	halfWidth := constants.WakeBaseHalfWidth + along*constants.WakeSpreadRate
	if v := w.Influence(along, halfWidth+1, 0.5); v != 0 {
		t.Errorf("Expected zero beyond the V's width, got %v", v)
	}
	if v := w.Influence(along, -(halfWidth + 1), 0.5); v != 0 {
		t.Errorf("Expected zero beyond the V's width below axis, got %v", v)
	}
}

func TestWakeNonzeroOnTravellingFront(t *testing.T) {
	w := NewWake(0, 0, 0, 0)
	age := 0.5
	front := age * constants.RippleSpeed * constants.WakeFrontFactor
	v := w.Influence(front, 0, age)
	if v == 0 {
		t.Fatal("Expected nonzero influence on the travelling front")
	}
	// On the axis at the front the crest reduces to the phase term.
	crest := math.Sin(constants.RipplePhase)
	alongFall := 1 - front/constants.WakeMaxRange
	life := 1 - age/constants.WakeLifespan
	want := crest * alongFall * 1.0 * life * constants.WakeStrength
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("Expected %v on the front, got %v", want, v)
	}
}

func TestWakeLifecycle(t *testing.T) {
	w := NewWake(0, 0, math.Pi/3, 1)
	if !w.Alive(1) {
		t.Error("Expected wake alive at birth")
	}
	if w.Alive(1 + constants.WakeLifespan) {
		t.Error("Expected wake dead at exactly its lifespan")
	}
	if v := w.Influence(50, 50, 1+constants.WakeLifespan); v != 0 {
		t.Errorf("Expected zero influence at death, got %v", v)
	}
}

func TestWakeDirectionIsUnit(t *testing.T) {
	for _, angle := range []float64{0, 1, math.Pi, -2.5} {
		w := NewWake(0, 0, angle, 0)
		mag := math.Hypot(w.DirX, w.DirY)
		if math.Abs(mag-1) > 1e-12 {
			t.Errorf("Expected unit direction for angle %v, got magnitude %v", angle, mag)
		}
	}
}
