package ease

import "math"

// Circular is the quarter-circle easing curve 1 - √(1-t²): the lower arc of
// the unit circle, rising with unbounded slope as t approaches 1.
type Circular struct{}

var _ Curve = Circular{}

func (c Circular) EaseIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

func (c Circular) EaseOut(t float64) float64   { return EaseOut(c, t) }
func (c Circular) EaseInOut(t float64) float64 { return EaseInOut(t, c, c) }
