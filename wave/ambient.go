package wave

import "math"

// Ambient is the resting water surface: a sum of four low-frequency
// sines over normalized grid coordinates and time. It is stateless and
// smooth, and is what remains visible when no sources are active. The
// drift argument is a slow global wind phase that keeps the pattern
// from ever repeating exactly.
func Ambient(nx, ny, t, drift float64) float64 {
	v := 0.08 * math.Sin(nx*4.1+t*0.6+drift)
	v += 0.06 * math.Sin(ny*3.3-t*0.45)
	v += 0.05 * math.Sin((nx+ny)*2.2+t*0.3+drift*0.5)
	v += 0.04 * math.Sin(nx*7.7-ny*5.1+t*0.8)
	return v
}
