package sim

import (
	"math"

	"asciipond/constants"
)

// Fluid is the drag grid: per-cell surface height plus a 2D velocity
// field fed by pointer movement. It is a first-order relaxation — each
// step damps velocity and blends every cell's height toward its
// 4-neighbor average — and is the only part of the simulation with
// spatial coupling between cells. It must step exactly once per frame,
// before the compositor reads it.
type Fluid struct {
	cols, rows int
	height     []float64
	next       []float64
	velX       []float64
	velY       []float64
}

// NewFluid allocates a grid of the given dimensions.
func NewFluid(cols, rows int) *Fluid {
	f := &Fluid{}
	f.Resize(cols, rows)
	return f
}

// Resize rebuilds the buffers, discarding previous state.
func (f *Fluid) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	f.cols, f.rows = cols, rows
	n := cols * rows
	f.height = make([]float64, n)
	f.next = make([]float64, n)
	f.velX = make([]float64, n)
	f.velY = make([]float64, n)
}

// Impulse stamps a radius-limited circular velocity and height bump
// around a cell, with linear falloff toward the rim. Out-of-grid parts
// of the stamp are clipped.
func (f *Fluid) Impulse(col, row int, vx, vy, lift float64) {
	r := constants.FluidImpulseRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := col+dx, row+dy
			if x < 0 || x >= f.cols || y < 0 || y >= f.rows {
				continue
			}
			fall := 1 - math.Sqrt(float64(dx*dx+dy*dy))/float64(r+1)
			i := y*f.cols + x
			f.velX[i] += vx * fall
			f.velY[i] += vy * fall
			f.height[i] += lift * fall
		}
	}
}

// Step runs one relaxation pass over the whole grid.
func (f *Fluid) Step() {
	for i := range f.velX {
		f.velX[i] *= constants.FluidDamping
		f.velY[i] *= constants.FluidDamping
	}

	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			i := y*f.cols + x
			avg := (f.heightAtClamped(x-1, y) + f.heightAtClamped(x+1, y) +
				f.heightAtClamped(x, y-1) + f.heightAtClamped(x, y+1)) / 4
			own := f.height[i] * constants.FluidDamping
			f.next[i] = avg*constants.FluidBlend + own*(1-constants.FluidBlend) +
				(f.velX[i]+f.velY[i])*constants.FluidVelocityLift
		}
	}
	f.height, f.next = f.next, f.height
}

// heightAtClamped reads height with edge clamping, so borders relax
// against themselves instead of a phantom zero wall.
func (f *Fluid) heightAtClamped(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= f.cols {
		x = f.cols - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.rows {
		y = f.rows - 1
	}
	return f.height[y*f.cols+x]
}

// HeightAt returns the surface height at a cell, zero outside the grid.
func (f *Fluid) HeightAt(col, row int) float64 {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return 0
	}
	return f.height[row*f.cols+col]
}

// VelocityAt returns the cell velocity, zero outside the grid.
func (f *Fluid) VelocityAt(col, row int) (float64, float64) {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return 0, 0
	}
	i := row*f.cols + col
	return f.velX[i], f.velY[i]
}
