package vmath

import "math"

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction returns the unit vector of (dx, dy), zero-safe
// A zero vector has no angle; it resolves to angle 0, i.e. (1, 0)
func Direction(dx, dy float64) (nx, ny float64) {
	mag := math.Sqrt(dx*dx + dy*dy)
	if mag == 0 {
		return 1, 0
	}
	return dx / mag, dy / mag
}

// Midpoint returns the point halfway between two points
func Midpoint(x1, y1, x2, y2 float64) (x, y float64) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}

// Clamp limits v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// SnapZero returns 0 when |v| is below threshold
func SnapZero(v, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}
