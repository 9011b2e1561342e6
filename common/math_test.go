package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func nearVec(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() < tol
}

func nearVec2(a, b mgl64.Vec2, tol float64) bool {
	return a.Sub(b).Len() < tol
}

func TestClampMagnitude(t *testing.T) {
	cases := []struct {
		name string
		in   mgl64.Vec2
		max  float64
		want mgl64.Vec2
	}{
		{"inside", mgl64.Vec2{0.3, 0.4}, 1, mgl64.Vec2{0.3, 0.4}},
		{"on_edge", mgl64.Vec2{0, 1}, 1, mgl64.Vec2{0, 1}},
		{"outside", mgl64.Vec2{3, 4}, 1, mgl64.Vec2{0.6, 0.8}},
		{"outside_larger_max", mgl64.Vec2{3, 4}, 2, mgl64.Vec2{1.2, 1.6}},
		{"zero", mgl64.Vec2{}, 1, mgl64.Vec2{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampMagnitude(tc.in, tc.max)
			if !nearVec2(got, tc.want, 1e-12) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestYawRotation(t *testing.T) {
	cases := []struct {
		name string
		dir  mgl64.Vec3
	}{
		{"forward", mgl64.Vec3{0, 0, 1}},
		{"right", mgl64.Vec3{1, 0, 0}},
		{"back", mgl64.Vec3{0, 0, -1}},
		{"diagonal_scaled", mgl64.Vec3{-2, 0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := YawRotation(tc.dir).Rotate(Forward)
			want := tc.dir.Normalize()
			if !nearVec(got, want, 1e-9) {
				t.Fatalf("expected forward %v, got %v", want, got)
			}
		})
	}

	if q := YawRotation(mgl64.Vec3{}); q != mgl64.QuatIdent() {
		t.Fatalf("expected identity for zero direction, got %v", q)
	}
}

func TestSlerpTakesShortArc(t *testing.T) {
	from := YawRotation(mgl64.Vec3{0, 0, 1})
	to := YawRotation(mgl64.Vec3{-1, 0, 0})
	// same orientation, opposite hemisphere
	to = to.Scale(-1)

	got := Slerp(from, to, 0.5)
	if a := QuatAngle(from, got); math.Abs(a-math.Pi/4) > 1e-9 {
		t.Fatalf("expected a 45 degree step, got %v rad", a)
	}
}
