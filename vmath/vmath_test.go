package vmath

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0.1, 0.01, 0.5, 0.055},
		{0.25, 0.1, 1, 0.1},
		{2, 4, 0.25, 2.5},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Lerp(%v, %v, %v) mismatch: got %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp below range: got %v", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp above range: got %v", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp in range: got %v", got)
	}
	if got := Clamp(math.NaN(), -1, 1); got != -1 {
		t.Errorf("Clamp NaN: got %v", got)
	}
	if got := Clamp(math.Inf(1), -1, 1); got != 1 {
		t.Errorf("Clamp +Inf: got %v", got)
	}
}

func TestSign(t *testing.T) {
	if Sign(0) != 1 || Sign(0.2) != 1 || Sign(-0.2) != -1 {
		t.Errorf("Sign mismatch: got %v %v %v", Sign(0), Sign(0.2), Sign(-0.2))
	}
}

func TestBucket(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{-1, 0},
		{-0.51, 0},
		{-0.5, 1},
		{0, 2},
		{0.99, 3},
		{1, 3},
		{5, 3},
	}
	for _, tt := range tests {
		if got := Bucket(tt.v, -1, 1, 4); got != tt.want {
			t.Errorf("Bucket(%v) mismatch: got %d, want %d", tt.v, got, tt.want)
		}
	}
	if got := Bucket(0.5, 0, 1, 1); got != 0 {
		t.Errorf("single bucket: got %d", got)
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range at %d: %v", i, v)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequence diverged at %d", i)
		}
	}
}
