package ease

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrUnknownCurve is returned by [ByName] for names with no registered curve.
var ErrUnknownCurve = errors.New("unknown easing curve")

// The registered names, in a fixed order so that [Random] draws the same
// sequence from equal generators.
var curveNames = []string{
	"linear",
	"quad",
	"cubic",
	"quart",
	"quint",
	"exponential",
	"circular",
	"sine",
	"elastic",
	"bounce",
	"back",
}

var curvesByName = map[string]Curve{
	"linear":      Linear,
	"quad":        Quad,
	"cubic":       Cubic,
	"quart":       Quart,
	"quint":       Quint,
	"exponential": Exponential{Rate: 2},
	"circular":    Circular{},
	"sine":        Sine{},
	"elastic":     NewElastic(),
	"bounce":      NewBounce(),
	"back":        NewBack(),
}

// ByName returns the curve registered under name, with default parameters
// where the kind has any: "linear", "quad", "cubic", "quart", "quint",
// "exponential" (rate 2), "circular", "sine", "elastic", "bounce" or "back".
// For any other name it returns an error wrapping [ErrUnknownCurve].
func ByName(name string) (Curve, error) {
	c, ok := curvesByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c, nil
}

// Random returns one of the named curves, chosen uniformly with rng. Callers
// wanting reproducible choices pass a generator with a fixed seed.
func Random(rng *rand.Rand) Curve {
	return curvesByName[curveNames[rng.IntN(len(curveNames))]]
}
