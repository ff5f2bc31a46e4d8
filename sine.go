package ease

import "math"

// Sine is the sinusoidal easing curve
//
//	1 - (sin(1-t) + π/2)
//
// Sine does not follow the boundary convention of the other curves: it maps 0
// to 1-(sin(1)+π/2) ≈ -1.412 and 1 to 1-π/2 ≈ -0.571 rather than to 0 and 1,
// so its outputs lie outside the unit interval for every t in [0, 1]. The
// curve still rises monotonically over the interval.
type Sine struct{}

var _ Curve = Sine{}

func (s Sine) EaseIn(t float64) float64 {
	return 1 - (math.Sin(1-t) + math.Pi/2)
}

func (s Sine) EaseOut(t float64) float64   { return EaseOut(s, t) }
func (s Sine) EaseInOut(t float64) float64 { return EaseInOut(t, s, s) }
