package physics

import "github.com/lixenwraith/circle-merge/component"

// ConstrainToField clamps a circle inside [0,width] x [0,height]
// Floor contact is inelastic: vertical velocity is absorbed, not reflected
// Wall contact only moves the circle; horizontal drift is left to damping
// Returns true when the circle was resting on or pushed back to the floor
func ConstrainToField(c *component.CircleComponent, width, height float64) bool {
	floor := false
	if c.Y > height-c.Radius {
		c.Y = height - c.Radius
		c.VY = 0
		floor = true
	}

	if c.X < c.Radius {
		c.X = c.Radius
	}
	if c.X > width-c.Radius {
		c.X = width - c.Radius
	}
	return floor
}
