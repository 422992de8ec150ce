package phys

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
}

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected float64
	}{
		{Vec3{3, 4, 0}, 5},
		{Vec3{1, 0, 0}, 1},
		{Vec3{}, 0},
	}
	for _, tt := range tests {
		if got := tt.v.Norm(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Norm(%+v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	n := (Vec3{0, -8, 0}).Normalize()
	if n != (Vec3{0, -1, 0}) {
		t.Errorf("Normalize = %+v", n)
	}

	// The zero vector has no direction; it must come back unchanged, never
	// as NaN.
	z := (Vec3{}).Normalize()
	if z != (Vec3{}) || !z.IsValid() {
		t.Errorf("Normalize(zero) = %+v", z)
	}
}

func TestVec3IsValid(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vec3{math.NaN(), 0, 0}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vec3{0, math.Inf(1), 0}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{X: -1}
	b := Vec3{X: 2}
	if got := a.Distance(b); got != 3 {
		t.Errorf("Distance = %v", got)
	}
}
