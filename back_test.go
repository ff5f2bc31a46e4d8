package ease

import "testing"

func TestBackAnticipates(t *testing.T) {
	b := NewBack()
	diff(t, Back{Amplitude: 1}, b)

	// The ease-in retreats below zero before committing; the complement
	// overshoots past 1.
	if v := b.EaseIn(0.3); v >= 0 {
		t.Errorf("got %v, expected a retreat below zero", v)
	}
	if v := b.EaseOut(0.7); v <= 1 {
		t.Errorf("got %v, expected an overshoot past 1", v)
	}

	// Larger amplitudes retreat further.
	small := b.EaseIn(0.3)
	big := Back{Amplitude: 3}.EaseIn(0.3)
	if big >= small {
		t.Errorf("got %v and %v, expected the larger amplitude to dip lower", small, big)
	}
}

func TestBackZeroAmplitudeIsCubic(t *testing.T) {
	b := Back{}
	const n = 32
	for i := range n + 1 {
		ts := float64(i) / n
		near(t, b.EaseIn(ts), Cubic.EaseIn(ts), 1e-15)
	}
}
