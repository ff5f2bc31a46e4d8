package ease

import "math"

// Back is an easing curve with anticipation: it retreats below zero before
// accelerating toward the target,
//
//	t³ - t·Amplitude·sin(π·t)
//
// Amplitude scales the retreat. The derived EaseOut correspondingly overshoots
// past 1 before settling, and with an amplitude of 0 the curve reduces to the
// plain cubic.
type Back struct {
	Amplitude float64
}

var _ Curve = Back{}

// NewBack returns a Back curve with the default amplitude 1.
func NewBack() Back {
	return Back{Amplitude: 1}
}

func (b Back) EaseIn(t float64) float64 {
	return t*t*t - t*b.Amplitude*math.Sin(math.Pi*t)
}

func (b Back) EaseOut(t float64) float64   { return EaseOut(b, t) }
func (b Back) EaseInOut(t float64) float64 { return EaseInOut(t, b, b) }
