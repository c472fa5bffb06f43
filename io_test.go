package vec3

import (
	"strings"
	"testing"
)

func TestFprint(t *testing.T) {
	var sb strings.Builder
	v := New(1.0, 2.5, -3.0)
	if err := Fprint(&sb, &v); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got := sb.String(); got != "1 2.5 -3" {
		t.Errorf("Fprint wrote %q, want %q", got, "1 2.5 -3")
	}
}

func TestFprintExpression(t *testing.T) {
	var sb strings.Builder
	a := New(1, 2, 3)
	b := New(4, 5, 6)
	if err := Fprint(&sb, a.Add(&b)); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got := sb.String(); got != "5 7 9" {
		t.Errorf("Fprint wrote %q, want %q", got, "5 7 9")
	}
}

func TestFscan(t *testing.T) {
	var v Vec[float64]
	if err := Fscan(strings.NewReader("1.5 -2 3e2"), &v); err != nil {
		t.Fatalf("Fscan: %v", err)
	}
	want := New(1.5, -2, 300)
	if v != want {
		t.Errorf("Fscan read %v, want %v", &v, &want)
	}
}

func TestFscanSkipsNewlines(t *testing.T) {
	var v Vec[int]
	if err := Fscan(strings.NewReader("1\n2\n3"), &v); err != nil {
		t.Fatalf("Fscan: %v", err)
	}
	want := New(1, 2, 3)
	if v != want {
		t.Errorf("Fscan read %v, want %v", &v, &want)
	}
}

func TestFscanBadInput(t *testing.T) {
	var v Vec[int]
	if err := Fscan(strings.NewReader("1 oops 3"), &v); err == nil {
		t.Error("Fscan accepted malformed input")
	}
}

func TestRoundTrip(t *testing.T) {
	var sb strings.Builder
	out := New(0.125, -42.5, 1e9)
	if err := Fprint(&sb, &out); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	var in Vec[float64]
	if err := Fscan(strings.NewReader(sb.String()), &in); err != nil {
		t.Fatalf("Fscan: %v", err)
	}
	if !in.Equal(&out) {
		t.Errorf("round trip read %v, want %v", &in, &out)
	}
}

func TestRoundTripInt(t *testing.T) {
	var sb strings.Builder
	out := New(7, -40, 1000000)
	if err := Fprint(&sb, &out); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	var in Vec[int]
	if err := Fscan(strings.NewReader(sb.String()), &in); err != nil {
		t.Fatalf("Fscan: %v", err)
	}
	if in != out {
		t.Errorf("round trip read %v, want %v", &in, &out)
	}
}

func TestString(t *testing.T) {
	v := New(1, 2, 3)
	if got := v.String(); got != "1 2 3" {
		t.Errorf("String() = %q, want %q", got, "1 2 3")
	}
	if got := v.Neg().String(); got != "-1 -2 -3" {
		t.Errorf("Neg().String() = %q, want %q", got, "-1 -2 -3")
	}
}
