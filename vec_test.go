package vec3

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 {
		t.Errorf("New(1, 2, 3) = %v", &v)
	}
}

func TestZero(t *testing.T) {
	v := Zero[float64]()
	if v.X() != 0 || v.Y() != 0 || v.Z() != 0 {
		t.Errorf("Zero() = %v", &v)
	}
}

func TestUniform(t *testing.T) {
	v := Uniform(7)
	want := New(7, 7, 7)
	if v != want {
		t.Errorf("Uniform(7) = %v, want %v", &v, &want)
	}
}

func TestSetters(t *testing.T) {
	v := Zero[float64]()
	v.SetX(1)
	v.SetY(2)
	v.SetZ(3)
	want := New(1.0, 2, 3)
	if v != want {
		t.Errorf("after SetX/SetY/SetZ: %v, want %v", &v, &want)
	}
	v.Set(4, 5, 6)
	want = New(4.0, 5, 6)
	if v != want {
		t.Errorf("after Set(4, 5, 6): %v, want %v", &v, &want)
	}
}

func TestSetConstant(t *testing.T) {
	v := New(1.0, 2, 3)
	got := v.SetConstant(9)
	if got != &v {
		t.Error("SetConstant did not return its receiver")
	}
	want := New(9.0, 9, 9)
	if v != want {
		t.Errorf("after SetConstant(9): %v, want %v", &v, &want)
	}
}

func TestEqual(t *testing.T) {
	a := New(1.0, 2, 3)
	b := New(1.0, 2, 3)
	c := New(1.0, 2, 4)
	if !a.Equal(&b) {
		t.Errorf("%v should equal %v", &a, &b)
	}
	if a.Equal(&c) {
		t.Errorf("%v should not equal %v", &a, &c)
	}
}

func TestCompoundAssignment(t *testing.T) {
	a := New(1.0, 2, 3)
	b := New(1.0, 1, 1)

	a.AddAssign(&b)
	want := New(2.0, 3, 4)
	if a != want {
		t.Errorf("after AddAssign: %v, want %v", &a, &want)
	}

	a.MulAssign(2)
	want = New(4.0, 6, 8)
	if a != want {
		t.Errorf("after MulAssign: %v, want %v", &a, &want)
	}

	a.SubAssign(&b)
	want = New(3.0, 5, 7)
	if a != want {
		t.Errorf("after SubAssign: %v, want %v", &a, &want)
	}

	a.DivAssign(1)
	if a != want {
		t.Errorf("after DivAssign(1): %v, want %v", &a, &want)
	}
}

func TestCompoundAssignmentChains(t *testing.T) {
	a := New(1.0, 2, 3)
	b := New(1.0, 1, 1)
	a.AddAssign(&b).MulAssign(3)
	want := New(6.0, 9, 12)
	if a != want {
		t.Errorf("chained assign: %v, want %v", &a, &want)
	}
}

func TestCompoundAssignmentTakesExpressions(t *testing.T) {
	a := New(1.0, 2, 3)
	b := New(10.0, 20, 30)
	c := New(1.0, 2, 3)
	a.AddAssign(b.Sub(&c))
	want := New(10.0, 20, 30)
	if a != want {
		t.Errorf("AddAssign(b - c): %v, want %v", &a, &want)
	}
}

func TestNorm(t *testing.T) {
	v := New(3.0, 4, 0)
	if got := v.Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
	if got := v.SquaredNorm(); got != 25 {
		t.Errorf("SquaredNorm() = %v, want 25", got)
	}
}

func TestIntegerNorm(t *testing.T) {
	// sqrt(1+1+1) truncates to 1 in integer vectors.
	v := New(1, 1, 1)
	if got := v.Norm(); got != 1 {
		t.Errorf("Norm() = %v, want 1", got)
	}
	if got := v.SquaredNorm(); got != 3 {
		t.Errorf("SquaredNorm() = %v, want 3", got)
	}
}

func TestNormalized(t *testing.T) {
	v := New(5.0, 0, 0)
	got := v.Normalized()
	want := New(1.0, 0, 0)
	if got != want {
		t.Errorf("Normalized() = %v, want %v", &got, &want)
	}
	if v.X() != 5 {
		t.Error("Normalized mutated its receiver")
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	v := Zero[float64]()
	got := v.Normalized()
	if !math.IsNaN(got.X()) || !math.IsNaN(got.Y()) || !math.IsNaN(got.Z()) {
		t.Errorf("Normalized() of zero = %v, want NaN components", &got)
	}
}

func TestDivAssignByZeroFloat(t *testing.T) {
	v := New(1.0, -1, 0)
	v.DivAssign(0)
	if !math.IsInf(v.X(), 1) || !math.IsInf(v.Y(), -1) || !math.IsNaN(v.Z()) {
		t.Errorf("DivAssign(0) = %v, want (+Inf, -Inf, NaN)", &v)
	}
}

func TestDivIntByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected integer divide by zero to panic")
		}
	}()
	v := New(1, 2, 3)
	_ = v.Div(0).X()
}
