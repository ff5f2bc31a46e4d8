// Package ease provides easing curves for animation timing: functions that
// map a normalized time t ∈ [0, 1] to a shaped progress value, controlling
// the perceived velocity of a transition. Animation systems multiply the
// shaped value with the animated quantity's total change; this package only
// computes the shape.
//
// # Curves
//
// An easing curve is anything implementing [Easer], which has the single
// operation EaseIn. This package includes the following curves:
//
//   - [Power] (with the fixed instances [Linear], [Quad], [Cubic], [Quart],
//     and [Quint])
//   - [Exponential]
//   - [Circular]
//   - [Sine]
//   - [Elastic]
//   - [Bounce]
//   - [Back]
//
// Curves are immutable values. Construct one directly from its parameters, or
// with the NewXxx constructors for the kinds that have conventional defaults,
// and evaluate it from any number of goroutines; every evaluation is a pure
// function of the time argument and the curve's parameters. [ByName] returns
// the default form of a curve by its lower-case name, and [Random] picks one
// using a caller-supplied source of randomness.
//
// Arbitrary functions can participate via the [Func] adapter.
//
// # Derived operations
//
// Curves only ever define their ease-in shape. The ease-out complement and
// the ease-in-out combination are derived from it by the free functions
// [EaseOut] and [EaseInOut], which hold the only copies of those formulas.
// The [Curve] interface exposes all three operations as methods, and every
// curve in this package implements the derived two by delegating to the free
// functions. [EaseInOut] also accepts two different curves, producing an
// asymmetric blend that accelerates with one shape and decelerates with
// another.
//
// # Domain and range
//
// Evaluation does not clamp, in either direction: times outside [0, 1]
// extrapolate along the curve's formula, and several curves intentionally
// leave [0, 1] inside the interval. [Elastic] swings to both sides of its
// start, [Back] retreats below zero before accelerating, and the ease-out
// complements of both overshoot the target before settling. Callers that need
// hard bounds must clamp on their side.
//
// One parameter is guarded: a [Bounce] bounciness of 1 or less would make the
// bounce widths sum to a divergent series and is evaluated as 1.0000001. An
// [Exponential] rate of zero, by contrast, is not guarded and evaluates to
// NaN everywhere. [Sine] does not pass through (0,0) and (1,1) at all; see
// its documentation before composing it.
//
// # Sampling
//
// [Samples] returns an iterator over evenly spaced (t, value) pairs of a
// curve, for rendering or for building lookup tables. It follows the usual
// iterator conventions; use [maps.Collect] or a plain range loop as needed.
//
// # Literature
//
// The curve shapes follow the animation easing tradition:
//   - [Robert Penner's easing functions]
//   - [easings.net], a visual catalogue of common curves
//
// [Robert Penner's easing functions]: http://robertpenner.com/easing/
// [easings.net]: https://easings.net/
package ease
