package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestBasics(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("Vector construction is not obvious")
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, NULL)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, NULL)
	if v != got {
		t.Errorf("Substracting a null vector changed the vector")
	}
	got = Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.Scale(1)
	if v != got {
		t.Errorf("Scaling by 1 changed the vector")
	}
	got = v.Scale(0)
	if got != NULL {
		t.Errorf("Scaling by 0 is not the null vector")
	}
	got = v.Scale(-2)
	want := Vec3{-2, -4, -6}
	if got != want {
		t.Errorf("Scale(%v,-2) = %v want %v", v, got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}
	if got := Cross(x, y); got != z {
		t.Errorf("Cross(%v,%v) = %v want %v", x, y, got, z)
	}
	if got := Cross(y, x); got != z.Scale(-1) {
		t.Errorf("Cross(%v,%v) = %v want %v", y, x, got, z.Scale(-1))
	}
	if got := Cross(x, x); got != NULL {
		t.Errorf("Cross(%v,%v) = %v want %v", x, x, got, NULL)
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 8}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(%v,%v,0) = %v want %v", a, b, got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(%v,%v,1) = %v want %v", a, b, got, b)
	}
	want := Vec3{1, 2, 4}
	if got := Lerp(a, b, 0.5); got != want {
		t.Errorf("Lerp(%v,%v,0.5) = %v want %v", a, b, got, want)
	}
}

func TestMinMax(t *testing.T) {
	a := Vec3{1, 5, 3}
	b := Vec3{2, 4, -3}
	lo, hi := MinMax(a, b)
	wantLo := Vec3{1, 4, -3}
	wantHi := Vec3{2, 5, 3}
	if lo != wantLo || hi != wantHi {
		t.Errorf("MinMax(%v,%v) = %v,%v want %v,%v", a, b, lo, hi, wantLo, wantHi)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := Dot(a, b); got != 32 {
		t.Errorf("Dot(%v,%v) = %v want 32", a, b, got)
	}
	if !Equal(a, a) {
		t.Errorf("Vectors are not considered equal to them self")
	}
	if Equal(a, b) {
		t.Errorf("Vectors %v and %v are considered equal", a, b)
	}
}
