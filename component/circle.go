package component

// CircleComponent is a simulated circle: position, velocity and size tier
// Radius always equals the tier table entry for Tier; it is cached here so
// physics and rendering never need the table
type CircleComponent struct {
	X, Y   float64
	VX, VY float64
	Tier   int
	Radius float64
}

// Bottom returns the y coordinate of the lower edge
func (c *CircleComponent) Bottom() float64 {
	return c.Y + c.Radius
}

// AtRest reports whether the circle has no velocity
func (c *CircleComponent) AtRest() bool {
	return c.VX == 0 && c.VY == 0
}
