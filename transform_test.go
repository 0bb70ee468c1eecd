package jamjar

import (
	"math"
	"testing"
)

func TestComposeTransformIdentity(t *testing.T) {
	m := composeTransform(0, 0, 0, 1, 1)
	if m != identityTransform {
		t.Errorf("composeTransform(identity) = %v, want %v", m, identityTransform)
	}
}

func TestMultiplyAffineOrder(t *testing.T) {
	translate := [6]float64{1, 0, 0, 1, 10, 0}
	scale := [6]float64{2, 0, 0, 2, 0, 0}

	// Scale first, then translate.
	x, y := transformPoint(multiplyAffine(translate, scale), 1, 1)
	if !approxEqual(x, 12, epsilon) || !approxEqual(y, 2, epsilon) {
		t.Errorf("translate*scale(1,1) = (%f,%f), want (12,2)", x, y)
	}
	// Translate first, then scale.
	x, y = transformPoint(multiplyAffine(scale, translate), 1, 1)
	if !approxEqual(x, 22, epsilon) || !approxEqual(y, 2, epsilon) {
		t.Errorf("scale*translate(1,1) = (%f,%f), want (22,2)", x, y)
	}
}

func TestInvertAffine(t *testing.T) {
	m := composeTransform(5, -3, math.Pi/6, 2, 0.5)
	got := multiplyAffine(m, invertAffine(m))
	for i := range got {
		if !approxEqual(got[i], identityTransform[i], 1e-9) {
			t.Fatalf("m * inv(m) = %v, want identity", got)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 3, 4}); got != identityTransform {
		t.Errorf("invertAffine(singular) = %v, want identity", got)
	}
}
