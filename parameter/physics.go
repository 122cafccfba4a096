package parameter

// Default physics tuning, per-frame units (no delta time scaling)
const (
	// GravityBase is the downward velocity added every frame at score 0
	GravityBase = 0.4

	// GravityPerPoint raises gravity with score for difficulty scaling
	GravityPerPoint = 0.002

	// Damping is the multiplicative drag applied to both velocity components
	Damping = 0.98

	// RestThreshold snaps velocity components below it to exactly zero
	RestThreshold = 0.05

	// OverlapRelax is the fraction of penetration depth each circle of a pair moves
	OverlapRelax = 0.3

	// MergeEpsilon tightens the merge test below plain contact
	MergeEpsilon = 2.0
)

// DefaultTierRadii is the ordered size table, radius strictly increasing with tier
var DefaultTierRadii = []float64{25, 35, 45, 55, 65, 75, 85, 95}
