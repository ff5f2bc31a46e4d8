package ease

import "math"

// Elastic is an easing curve that oscillates around zero with growing
// amplitude before landing on 1 at the end of the interval, like a mass on a
// spring being driven toward its target.
//
// Oscillations is the number of full swings over the interval. Springiness
// weights the swings toward the end: with Springiness s ≠ 0 the amplitude
// envelope is (e^(s·t)-1)/(e^s-1), and with s == 0 the envelope degenerates to
// t, growing linearly.
type Elastic struct {
	Oscillations int
	Springiness  float64
}

var _ Curve = Elastic{}

// NewElastic returns an Elastic curve with the default three oscillations and
// springiness 3.
func NewElastic() Elastic {
	return Elastic{Oscillations: 3, Springiness: 3}
}

func (e Elastic) EaseIn(t float64) float64 {
	factor := t
	if e.Springiness != 0 {
		factor = (math.Exp(e.Springiness*t) - 1) / (math.Exp(e.Springiness) - 1)
	}
	return factor * math.Sin((2*math.Pi*float64(e.Oscillations)+math.Pi/2)*t)
}

func (e Elastic) EaseOut(t float64) float64   { return EaseOut(e, t) }
func (e Elastic) EaseInOut(t float64) float64 { return EaseInOut(t, e, e) }
