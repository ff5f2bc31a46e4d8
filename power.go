package ease

import "math"

// Power is the polynomial easing curve t^Exponent. It generalizes the classic
// quadratic through quintic curves, which are provided as the package-level
// values [Quad], [Cubic], [Quart] and [Quint]; an exponent of 1 yields
// [Linear], and fractional exponents are valid.
type Power struct {
	Exponent float64
}

var _ Curve = Power{}

// The standard polynomial curves.
var (
	Linear = Power{Exponent: 1}
	Quad   = Power{Exponent: 2}
	Cubic  = Power{Exponent: 3}
	Quart  = Power{Exponent: 4}
	Quint  = Power{Exponent: 5}
)

func (p Power) EaseIn(t float64) float64 {
	return math.Pow(t, p.Exponent)
}

func (p Power) EaseOut(t float64) float64   { return EaseOut(p, t) }
func (p Power) EaseInOut(t float64) float64 { return EaseInOut(t, p, p) }
