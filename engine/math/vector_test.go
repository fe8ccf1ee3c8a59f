package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const testTolerance float32 = 1e-5

func TestVec3NormalizedHasUnitLength(t *testing.T) {
	cases := []Vec3{
		{1, 0, 0},
		{0, -3, 0},
		{1, 2, 3},
		{-4.5, 0.001, 12},
		{1e-3, 1e-3, 1e-3},
		{1000, -2000, 3000},
	}
	for _, v := range cases {
		n := v.Normalized()
		if l := n.Length(); kabs(l-1) > testTolerance {
			t.Errorf("len(normalize(%v)) = %v, want 1", v, l)
		}
	}
}

func TestNormalizeZeroVectorIsZero(t *testing.T) {
	if got := NewVec2Zero().Normalized(); got != NewVec2Zero() {
		t.Errorf("vec2 normalize(0) = %v", got)
	}
	if got := NewVec3Zero().Normalized(); got != NewVec3Zero() {
		t.Errorf("vec3 normalize(0) = %v", got)
	}
	if got := NewVec4Zero().Normalized(); got != NewVec4Zero() {
		t.Errorf("vec4 normalize(0) = %v", got)
	}

	v := NewVec3Zero()
	v.Normalize()
	if math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z) {
		t.Fatalf("in-place normalize of zero vector produced NaN: %v", v)
	}
	if v != NewVec3Zero() {
		t.Errorf("in-place normalize(0) = %v", v)
	}
}

func TestNormalizeInPlace(t *testing.T) {
	v2 := NewVec2(3, 4)
	v2.Normalize()
	if !v2.Compare(NewVec2(0.6, 0.8), testTolerance) {
		t.Errorf("vec2 normalize = %v", v2)
	}

	v4 := NewVec4(2, 0, 0, 0)
	v4.Normalize()
	if v4 != NewVec4(1, 0, 0, 0) {
		t.Errorf("vec4 normalize = %v", v4)
	}
}

func TestVec3CrossAntiCommutativeAndOrthogonal(t *testing.T) {
	pairs := [][2]Vec3{
		{{1, 0, 0}, {0, 1, 0}},
		{{1, 2, 3}, {4, 5, 6}},
		{{-2, 0.5, 7}, {3, -1, 0.25}},
		{{0, 0, 1}, {0, 0, 1}},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		ab := a.Cross(b)
		ba := b.Cross(a)
		if !ab.Compare(ba.Negate(), testTolerance) {
			t.Errorf("cross(%v,%v) = %v, -cross(b,a) = %v", a, b, ab, ba.Negate())
		}
		if d := ab.Dot(a); kabs(d) > 1e-4 {
			t.Errorf("dot(cross(a,b), a) = %v, want 0", d)
		}
		if d := ab.Dot(b); kabs(d) > 1e-4 {
			t.Errorf("dot(cross(a,b), b) = %v, want 0", d)
		}

		want := mgl32.Vec3{a.X, a.Y, a.Z}.Cross(mgl32.Vec3{b.X, b.Y, b.Z})
		if !ab.Compare(NewVec3(want[0], want[1], want[2]), testTolerance) {
			t.Errorf("cross(%v,%v) = %v, mgl32 says %v", a, b, ab, want)
		}
	}
}

func TestVec3CrossIsRightHanded(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("x cross y = %v, want +z", got)
	}
}

func TestVec2Cross(t *testing.T) {
	a := NewVec2(2, 3)
	b := NewVec2(4, 5)
	if got := a.Cross(b); got != 2*5-3*4 {
		t.Errorf("cross = %v, want -2", got)
	}
	if got := b.Cross(a); got != 2 {
		t.Errorf("cross = %v, want 2", got)
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(4, 5, -6)

	if got := a.Add(b); got != NewVec3(5, 3, -3) {
		t.Errorf("add = %v", got)
	}
	if got := a.Sub(b); got != NewVec3(-3, -7, 9) {
		t.Errorf("sub = %v", got)
	}
	if got := a.Scale(2); got != NewVec3(2, -4, 6) {
		t.Errorf("scale = %v", got)
	}
	if got := b.Div(2); got != NewVec3(2, 2.5, -3) {
		t.Errorf("div = %v", got)
	}
	if got := a.Dot(b); got != 4-10-18 {
		t.Errorf("dot = %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, 2, -3) {
		t.Errorf("negate = %v", got)
	}
	if got := NewVec3(2, 3, 6).Length(); got != 7 {
		t.Errorf("length = %v", got)
	}

	v := NewVec4(1, 2, 3, 4)
	w := NewVec4(4, 3, 2, 1)
	if got := v.Add(w); got != NewVec4(5, 5, 5, 5) {
		t.Errorf("vec4 add = %v", got)
	}
	if got := v.Sub(w).Div(3); got != NewVec4(-1, -1.0/3.0, 1.0/3.0, 1) {
		t.Errorf("vec4 sub/div = %v", got)
	}
	if got := v.Dot(w); got != 20 {
		t.Errorf("vec4 dot = %v", got)
	}

	u := NewVec2(1, 2)
	if got := u.Add(NewVec2(1, 1)).Scale(2).Sub(NewVec2(1, 1)); got != NewVec2(3, 5) {
		t.Errorf("vec2 chain = %v", got)
	}
	if got := NewVec2(3, 4).Length(); got != 5 {
		t.Errorf("vec2 length = %v", got)
	}
}

func TestVectorMinMax(t *testing.T) {
	a := NewVec3(1, 5, -3)
	b := NewVec3(2, -5, -3)
	if got := a.Min(b); got != NewVec3(1, -5, -3) {
		t.Errorf("min = %v", got)
	}
	if got := a.Max(b); got != NewVec3(2, 5, -3) {
		t.Errorf("max = %v", got)
	}

	nan := math32.NaN()
	got := NewVec2(nan, 1).Min(NewVec2(2, nan))
	if got != NewVec2(2, 1) {
		t.Errorf("min with NaN = %v, want the non-NaN operands", got)
	}
	got4 := NewVec4(nan, 0, 0, 0).Max(NewVec4(-1, 1, 2, 3))
	if got4 != NewVec4(-1, 1, 2, 3) {
		t.Errorf("max with NaN = %v", got4)
	}
}

func TestVectorConversions(t *testing.T) {
	v := NewVec3(1, 2, 3)
	if got := v.ToVec4(1); got != NewVec4(1, 2, 3, 1) {
		t.Errorf("ToVec4 = %v", got)
	}
	if got := v.ToVec4(0).ToVec3(); got != v {
		t.Errorf("ToVec3 = %v", got)
	}
	if got := v.ToArray(); got != [3]float32{1, 2, 3} {
		t.Errorf("ToArray = %v", got)
	}
}

func TestVectorsAreValues(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := a
	b.X = 10
	if a.X != 1 {
		t.Fatalf("copy aliased the original: %v", a)
	}
	_ = a.Normalized()
	if a != NewVec3(1, 2, 3) {
		t.Fatalf("Normalized mutated its receiver: %v", a)
	}
}
