package ease_test

import (
	"math"
	"testing"

	reference "github.com/fogleman/ease"
	"honnef.co/go/ease"
)

// Several curves share closed forms with the identically shaped functions of
// github.com/fogleman/ease. Cross-check them on a grid; the two packages
// compute the formulas differently, so comparison is approximate.
func TestAgainstReference(t *testing.T) {
	cases := []struct {
		name string
		got  func(float64) float64
		want func(float64) float64
	}{
		{"Linear", ease.Linear.EaseIn, reference.Linear},
		{"QuadIn", ease.Quad.EaseIn, reference.InQuad},
		{"QuadOut", ease.Quad.EaseOut, reference.OutQuad},
		{"QuadInOut", ease.Quad.EaseInOut, reference.InOutQuad},
		{"CubicIn", ease.Cubic.EaseIn, reference.InCubic},
		{"CubicOut", ease.Cubic.EaseOut, reference.OutCubic},
		{"CubicInOut", ease.Cubic.EaseInOut, reference.InOutCubic},
		{"QuartIn", ease.Quart.EaseIn, reference.InQuart},
		{"QuartOut", ease.Quart.EaseOut, reference.OutQuart},
		{"QuintIn", ease.Quint.EaseIn, reference.InQuint},
		{"QuintOut", ease.Quint.EaseOut, reference.OutQuint},
		{"CircIn", ease.Circular{}.EaseIn, reference.InCirc},
		{"CircOut", ease.Circular{}.EaseOut, reference.OutCirc},
		{"CircInOut", ease.Circular{}.EaseInOut, reference.InOutCirc},
	}
	const n = 64
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for i := range n + 1 {
				ts := float64(i) / n
				got, want := c.got(ts), c.want(ts)
				if math.Abs(got-want) > 1e-12 {
					t.Errorf("at t=%v: got %v, expected %v", ts, got, want)
				}
			}
		})
	}
}
