package ease

import "iter"

// Easer describes an easing curve in terms of the one operation every curve
// defines for itself.
//
// EaseIn maps a normalized time t to a shaped progress value. Conventionally t
// lies in [0, 1], but implementations accept any finite time and apply no
// clamping: callers may pass out-of-range times to extrapolate, and outputs
// may leave [0, 1] for curves that overshoot or oscillate.
type Easer interface {
	EaseIn(t float64) float64
}

// Curve is the full easing surface: the ease-in together with the two
// operations derived from it.
//
// The derived operations are defined by [EaseOut] and [EaseInOut]. The types
// in this package implement the methods as one-line delegations to those
// functions, so each formula exists in exactly one place; the methods are only
// a convenience for callers holding a concrete curve.
type Curve interface {
	Easer
	EaseOut(t float64) float64
	EaseInOut(t float64) float64
}

// EaseOut evaluates the ease-out complement of c at time t, defined as
//
//	1 - c.EaseIn(1-t)
//
// which runs the ease-in shape backwards through both time and value: a curve
// that starts slowly eases out by ending slowly.
func EaseOut(c Easer, t float64) float64 {
	return 1 - c.EaseIn(1-t)
}

// EaseInOut blends two curves into a single S-shaped curve: in's acceleration
// shape on [0, 0.5] and out's deceleration shape on [0.5, 1], each compressed
// into half the time and half the value range. Passing the same curve twice
// yields that curve's symmetric ease-in-out; passing different curves yields
// an asymmetric blend.
//
// Like the evaluators themselves, EaseInOut performs no bounds checking; times
// outside [0, 1] flow through to the underlying curves.
func EaseInOut(t float64, in, out Easer) float64 {
	t *= 2
	if t < 1 {
		return in.EaseIn(t) * 0.5
	}
	return EaseOut(out, t-1)*0.5 + 0.5
}

// Func adapts an ordinary function to the [Curve] interface. The function
// provides the ease-in shape; the derived operations are computed from it like
// for any other curve.
type Func func(t float64) float64

var _ Curve = Func(nil)

// EaseIn returns f(t).
func (f Func) EaseIn(t float64) float64 { return f(t) }

func (f Func) EaseOut(t float64) float64   { return EaseOut(f, t) }
func (f Func) EaseInOut(t float64) float64 { return EaseInOut(t, f, f) }

// Samples returns an iterator over n+1 evenly spaced samples of c's ease-in,
// yielding pairs (t, c.EaseIn(t)) for t = 0, 1/n, ..., 1. To sample a derived
// operation instead, adapt it with [Func]:
//
//	Samples(Func(c.EaseOut), n)
//
// Samples panics if n < 1.
func Samples(c Easer, n int) iter.Seq2[float64, float64] {
	if n < 1 {
		panic("sample count must be at least 1")
	}
	return func(yield func(float64, float64) bool) {
		for i := range n + 1 {
			t := float64(i) / float64(n)
			if !yield(t, c.EaseIn(t)) {
				return
			}
		}
	}
}
