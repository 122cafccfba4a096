package physics

import (
	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/vmath"
)

// Penetration returns how deep two circles interpenetrate, 0 when apart or touching
func Penetration(a, b *component.CircleComponent) float64 {
	d := vmath.Distance(a.X, a.Y, b.X, b.Y)
	if p := a.Radius + b.Radius - d; p > 0 {
		return p
	}
	return 0
}

// ResolveOverlaps runs one relaxation pass over every pair i<j in slice order
// Each overlapping pair is pushed apart along the line of centers, each circle
// moving relax * penetration, equal and opposite. Later pairs see the positions
// already moved by earlier ones; remaining overlap is left for the next frame
// Coincident centers separate along +x
// Returns the number of overlapping pairs found
func ResolveOverlaps(circles []component.CircleComponent, relax float64) int {
	pairs := 0
	for i := 0; i < len(circles); i++ {
		a := &circles[i]
		for j := i + 1; j < len(circles); j++ {
			b := &circles[j]

			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := vmath.Distance(a.X, a.Y, b.X, b.Y)
			minDist := a.Radius + b.Radius
			if dist >= minDist {
				continue
			}
			pairs++

			nx, ny := vmath.Direction(dx, dy)
			push := (minDist - dist) * relax
			moveX := nx * push
			moveY := ny * push

			a.X -= moveX
			a.Y -= moveY
			b.X += moveX
			b.Y += moveY
		}
	}
	return pairs
}
