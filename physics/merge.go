package physics

import (
	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/vmath"
)

// Mergeable reports whether two circles share a tier and interpenetrate by more than epsilon
func Mergeable(a, b *component.CircleComponent, epsilon float64) bool {
	if a.Tier != b.Tier {
		return false
	}
	return vmath.Distance(a.X, a.Y, b.X, b.Y) < a.Radius+b.Radius-epsilon
}

// FindMergePair returns the first mergeable pair, scanning the later index
// downward and, for each, the earlier index downward. i > j on success
// Only one pair is reported per call; callers merge at most once per frame
func FindMergePair(circles []component.CircleComponent, epsilon float64) (i, j int, ok bool) {
	if len(circles) < 2 {
		return 0, 0, false
	}
	for i = len(circles) - 1; i >= 0; i-- {
		for j = i - 1; j >= 0; j-- {
			if Mergeable(&circles[i], &circles[j], epsilon) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// MergeResult builds the circle produced by merging a and b
// ok is false at the top tier, where the pair annihilates
func MergeResult(a, b *component.CircleComponent, maxTier int, radius func(tier int) float64) (component.CircleComponent, bool) {
	if a.Tier >= maxTier {
		return component.CircleComponent{}, false
	}
	tier := a.Tier + 1
	x, y := vmath.Midpoint(a.X, a.Y, b.X, b.Y)
	return component.CircleComponent{
		X:      x,
		Y:      y,
		Tier:   tier,
		Radius: radius(tier),
	}, true
}
