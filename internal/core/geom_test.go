package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxesOverlap(t *testing.T) {
	unit := r3.Vec{X: 1, Y: 1, Z: 1}

	tests := []struct {
		name     string
		a, b     r3.Box
		expected bool
	}{
		{
			name:     "same center",
			a:        BoxAround(r3.Vec{}, unit),
			b:        BoxAround(r3.Vec{}, unit),
			expected: true,
		},
		{
			name:     "partial overlap on every axis",
			a:        BoxAround(r3.Vec{}, unit),
			b:        BoxAround(r3.Vec{X: 1.5, Y: 1.5, Z: 1.5}, unit),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        BoxAround(r3.Vec{}, unit),
			b:        BoxAround(r3.Vec{X: 3}, unit),
			expected: false,
		},
		{
			name:     "separated on y",
			a:        BoxAround(r3.Vec{}, unit),
			b:        BoxAround(r3.Vec{Y: -2.5}, unit),
			expected: false,
		},
		{
			name:     "separated on travel axis only",
			a:        BoxAround(r3.Vec{}, unit),
			b:        BoxAround(r3.Vec{Z: -2.01}, unit),
			expected: false,
		},
		{
			name:     "touching faces",
			a:        BoxAround(r3.Vec{}, unit),
			b:        BoxAround(r3.Vec{X: 2}, unit),
			expected: true,
		},
		{
			name:     "contained box",
			a:        BoxAround(r3.Vec{}, r3.Vec{X: 5, Y: 5, Z: 5}),
			b:        BoxAround(r3.Vec{X: 1, Y: -1, Z: 2}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BoxesOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("BoxesOverlap() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := BoxesOverlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("BoxesOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 0.5, Y: 1, Z: 2})

	if b.Min != (r3.Vec{X: 0.5, Y: 1, Z: 1}) {
		t.Errorf("Min = %v, expected {0.5 1 1}", b.Min)
	}
	if b.Max != (r3.Vec{X: 1.5, Y: 3, Z: 5}) {
		t.Errorf("Max = %v, expected {1.5 3 5}", b.Max)
	}
}

func TestLerpVec(t *testing.T) {
	got := LerpVec(r3.Vec{}, r3.Vec{X: 10, Y: -10, Z: 4}, 0.25)
	want := r3.Vec{X: 2.5, Y: -2.5, Z: 1}
	if got != want {
		t.Errorf("LerpVec() = %v, expected %v", got, want)
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		name     string
		v        r3.Vec
		expected bool
	}{
		{"zero", r3.Vec{}, true},
		{"regular", r3.Vec{X: 1e6, Y: -3, Z: 0.1}, true},
		{"nan", r3.Vec{Y: math.NaN()}, false},
		{"inf", r3.Vec{Z: math.Inf(-1)}, false},
	}

	for _, tc := range tests {
		if got := Finite(tc.v); got != tc.expected {
			t.Errorf("%s: Finite() = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, -12, 12, 5.5},
		{-15, -12, 12, -12},
		{12.5, -12, 12, 12},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
