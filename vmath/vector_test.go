package vmath

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(7, 7, 7, 7); got != 0 {
		t.Errorf("Distance of coincident points = %v, want 0", got)
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		nx, ny float64
	}{
		{"positive x", 10, 0, 1, 0},
		{"negative y", 0, -2, 0, -1},
		{"diagonal", 3, 4, 0.6, 0.8},
		{"zero falls back to angle 0", 0, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny := Direction(tt.dx, tt.dy)
			if math.IsNaN(nx) || math.IsNaN(ny) {
				t.Fatalf("Direction(%v, %v) produced NaN", tt.dx, tt.dy)
			}
			if math.Abs(nx-tt.nx) > 1e-12 || math.Abs(ny-tt.ny) > 1e-12 {
				t.Errorf("Direction(%v, %v) = (%v, %v), want (%v, %v)", tt.dx, tt.dy, nx, ny, tt.nx, tt.ny)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	x, y := Midpoint(200, 300, 210, 300)
	if x != 205 || y != 300 {
		t.Errorf("Midpoint = (%v, %v), want (205, 300)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Errorf("Clamp inside = %v", got)
	}
	// Inverted range resolves to lo
	if got := Clamp(5, 8, 2); got != 8 {
		t.Errorf("Clamp inverted = %v, want 8", got)
	}
}

func TestSnapZero(t *testing.T) {
	if got := SnapZero(0.049, 0.05); got != 0 {
		t.Errorf("SnapZero(0.049) = %v", got)
	}
	if got := SnapZero(-0.049, 0.05); got != 0 {
		t.Errorf("SnapZero(-0.049) = %v", got)
	}
	if got := SnapZero(0.05, 0.05); got != 0.05 {
		t.Errorf("SnapZero at threshold = %v, want unchanged", got)
	}
}
