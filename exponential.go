package ease

import "math"

// Exponential is the easing curve
//
//	(e^(Rate·t) - 1) / (e^Rate - 1)
//
// Rate controls how sharply the curve accelerates. Large positive rates
// concentrate the change near the end of the interval, negative rates near the
// start. Rate must not be zero: the formula then divides zero by zero and
// every evaluation is NaN. The zero rate is not guarded.
type Exponential struct {
	Rate float64
}

var _ Curve = Exponential{}

func (e Exponential) EaseIn(t float64) float64 {
	return (math.Exp(e.Rate*t) - 1) / (math.Exp(e.Rate) - 1)
}

func (e Exponential) EaseOut(t float64) float64   { return EaseOut(e, t) }
func (e Exponential) EaseInOut(t float64) float64 { return EaseInOut(t, e, e) }
