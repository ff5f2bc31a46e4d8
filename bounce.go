package ease

import "math"

// Bounce models a ball dropped onto a surface: a train of parabolic arcs whose
// heights and widths decay geometrically, coming to rest exactly at the end of
// the interval. As an ease-in the arcs run smallest first; the derived
// EaseOut plays them largest first, which is the familiar bouncing-ball
// profile.
//
// Bounces is the number of full arcs before the final half arc that carries
// the curve to 1. Bounciness controls the decay: each arc is Bounciness times
// as wide and as tall as the one before it. Bounciness must be greater than 1
// for the arc widths to sum to a finite interval; values of 1 or less are
// evaluated as 1.0000001.
type Bounce struct {
	Bounces    int
	Bounciness float64
}

var _ Curve = Bounce{}

// NewBounce returns a Bounce curve with the default three bounces and
// bounciness 2.
func NewBounce() Bounce {
	return Bounce{Bounces: 3, Bounciness: 2}
}

func (b Bounce) EaseIn(t float64) float64 {
	bounces := float64(b.Bounces)
	bounciness := b.Bounciness
	if bounciness <= 1 {
		bounciness = 1.0000001
	}

	pow := math.Pow(bounciness, bounces)
	oneMinusBounciness := 1 - bounciness

	// Work in "unit" space, where the first arc has width 1 and each arc is
	// bounciness times wider than the last. The full arcs sum to a geometric
	// series; the final arc contributes only half its width, since half an arc
	// is enough to reach the resting value.
	sumOfUnits := (1-pow)/oneMinusBounciness + pow*0.5
	unitAtT := t * sumOfUnits

	// Invert the series to find which arc t falls into, then project the
	// arc's endpoints back into time space.
	bounceAtT := math.Log(-unitAtT*oneMinusBounciness+1) / math.Log(bounciness)
	start := math.Floor(bounceAtT)
	end := start + 1
	startTime := (1 - math.Pow(bounciness, start)) / (oneMinusBounciness * sumOfUnits)
	endTime := (1 - math.Pow(bounciness, end)) / (oneMinusBounciness * sumOfUnits)

	// Evaluate a downward parabola over [startTime, endTime] that is zero at
	// both endpoints and peaks midway at (1/bounciness)^(bounces-start), so
	// that successive peaks decay at the same rate the widths grow.
	midTime := (startTime + endTime) / 2
	timeRelativeToPeak := t - midTime
	radius := midTime - startTime
	amplitude := math.Pow(1/bounciness, bounces-start)

	return (-amplitude / (radius * radius)) * (timeRelativeToPeak - radius) * (timeRelativeToPeak + radius)
}

func (b Bounce) EaseOut(t float64) float64   { return EaseOut(b, t) }
func (b Bounce) EaseInOut(t float64) float64 { return EaseInOut(t, b, b) }
