package physics

import (
	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/vmath"
)

// GravityAt returns the per-frame gravity for a score, growing linearly with it
func GravityAt(base, perPoint float64, score int) float64 {
	return base + float64(score)*perPoint
}

// Integrate advances one circle by a single frame
// Gravity first, then drag on both axes, then rest snapping, then position
func Integrate(c *component.CircleComponent, gravity, damping, restThreshold float64) {
	c.VY += gravity

	c.VY *= damping
	c.VX *= damping

	c.VY = vmath.SnapZero(c.VY, restThreshold)
	c.VX = vmath.SnapZero(c.VX, restThreshold)

	c.Y += c.VY
	c.X += c.VX
}
