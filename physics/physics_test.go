package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/circle-merge/component"
)

var testTiers = []float64{25, 35, 45, 55, 65, 75, 85, 95}

func radius(tier int) float64 { return testTiers[tier] }

func circle(x, y float64, tier int) component.CircleComponent {
	return component.CircleComponent{X: x, Y: y, Tier: tier, Radius: testTiers[tier]}
}

func TestGravityAtScalesWithScore(t *testing.T) {
	if got := GravityAt(0.4, 0.002, 0); got != 0.4 {
		t.Errorf("GravityAt(score=0) = %g, want 0.4", got)
	}
	if got := GravityAt(0.4, 0.002, 100); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("GravityAt(score=100) = %g, want 0.6", got)
	}
}

func TestIntegrateOrder(t *testing.T) {
	c := circle(100, 100, 0)
	c.VX = 2
	Integrate(&c, 0.4, 0.98, 0.05)

	wantVY := 0.4 * 0.98
	wantVX := 2 * 0.98
	if math.Abs(c.VY-wantVY) > 1e-12 || math.Abs(c.VX-wantVX) > 1e-12 {
		t.Fatalf("velocity = (%g, %g), want (%g, %g)", c.VX, c.VY, wantVX, wantVY)
	}
	if math.Abs(c.Y-(100+wantVY)) > 1e-12 || math.Abs(c.X-(100+wantVX)) > 1e-12 {
		t.Errorf("position = (%g, %g), want advanced by new velocity", c.X, c.Y)
	}
}

func TestIntegrateSnapsMicroVelocity(t *testing.T) {
	c := circle(100, 100, 0)
	c.VX = 0.04
	c.VY = -0.4 // gravity cancels it exactly
	Integrate(&c, 0.4, 0.98, 0.05)

	if c.VX != 0 || c.VY != 0 {
		t.Errorf("velocity = (%g, %g), want snapped to zero", c.VX, c.VY)
	}
	if c.X != 100 || c.Y != 100 {
		t.Errorf("position moved to (%g, %g) with zero velocity", c.X, c.Y)
	}
}

func TestConstrainFloorAbsorbsVelocity(t *testing.T) {
	c := circle(200, 590, 0)
	c.VY = 5
	c.VX = 1
	if !ConstrainToField(&c, 400, 600) {
		t.Error("expected floor contact")
	}
	if c.Y != 575 || c.VY != 0 {
		t.Errorf("y=%g vy=%g, want 575, 0", c.Y, c.VY)
	}
	if c.VX != 1 {
		t.Errorf("vx changed to %g on floor contact", c.VX)
	}
}

func TestConstrainWallsKeepVelocity(t *testing.T) {
	// Scenario: center left of the field clamps to the radius
	c := circle(-5, 300, 0)
	c.VX = -3
	ConstrainToField(&c, 400, 600)
	if c.X != 25 {
		t.Errorf("x = %g, want 25", c.X)
	}
	if c.VX != -3 {
		t.Errorf("vx = %g, wall contact must not change velocity", c.VX)
	}

	c = circle(399, 300, 1)
	ConstrainToField(&c, 400, 600)
	if c.X != 365 {
		t.Errorf("x = %g, want 365", c.X)
	}
}

func TestConstrainAlwaysInBounds(t *testing.T) {
	const w, h = 400.0, 600.0
	points := []struct{ x, y float64 }{
		{-1000, -1000}, {0, 0}, {200, 300}, {1000, 1000}, {399.9, 599.9}, {24, 576}, {-0.1, 700},
	}
	for tier := range testTiers {
		for _, p := range points {
			c := circle(p.x, p.y, tier)
			ConstrainToField(&c, w, h)
			if c.Y+c.Radius > h {
				t.Errorf("tier %d from (%g,%g): y+r = %g > %g", tier, p.x, p.y, c.Y+c.Radius, h)
			}
			if c.X < c.Radius || c.X > w-c.Radius {
				t.Errorf("tier %d from (%g,%g): x = %g outside [%g,%g]", tier, p.x, p.y, c.X, c.Radius, w-c.Radius)
			}
		}
	}
}

func TestRestingCircleIsFixedPoint(t *testing.T) {
	c := circle(200, 575, 0)
	before := c
	for i := 0; i < 10; i++ {
		Integrate(&c, GravityAt(0.4, 0.002, 500), 0.98, 0.05)
		ConstrainToField(&c, 400, 600)
	}
	if c != before {
		t.Errorf("resting circle changed: %+v -> %+v", before, c)
	}
}

func TestResolveOverlapsPairPenetrationDecreases(t *testing.T) {
	tests := []struct {
		name string
		a, b component.CircleComponent
	}{
		{"horizontal", circle(100, 100, 0), circle(120, 100, 0)},
		{"diagonal", circle(100, 100, 1), circle(130, 140, 2)},
		{"deep", circle(100, 100, 3), circle(101, 100, 3)},
		{"coincident", circle(100, 100, 0), circle(100, 100, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := []component.CircleComponent{tt.a, tt.b}
			before := Penetration(&cs[0], &cs[1])
			if n := ResolveOverlaps(cs, 0.3); n != 1 {
				t.Fatalf("pairs = %d, want 1", n)
			}
			after := Penetration(&cs[0], &cs[1])
			if !(after < before) {
				t.Errorf("penetration %g -> %g, want strict decrease", before, after)
			}
			for _, c := range cs {
				if math.IsNaN(c.X) || math.IsNaN(c.Y) {
					t.Fatalf("NaN position: %+v", c)
				}
			}
		})
	}
}

func TestResolveOverlapsSymmetric(t *testing.T) {
	cs := []component.CircleComponent{circle(100, 100, 0), circle(130, 100, 0)}
	ResolveOverlaps(cs, 0.3)
	// overlap 20, each moves 6
	if cs[0].X != 94 || cs[1].X != 136 {
		t.Errorf("x = %g, %g, want 94, 136", cs[0].X, cs[1].X)
	}
	if cs[0].Y != 100 || cs[1].Y != 100 {
		t.Errorf("y changed on horizontal push: %g, %g", cs[0].Y, cs[1].Y)
	}
}

func TestResolveOverlapsCoincidentFallback(t *testing.T) {
	cs := []component.CircleComponent{circle(100, 100, 0), circle(100, 100, 0)}
	ResolveOverlaps(cs, 0.3)
	// overlap 50 along +x, 15 each
	if cs[0].X != 85 || cs[1].X != 115 || cs[0].Y != 100 || cs[1].Y != 100 {
		t.Errorf("coincident push = (%g,%g) (%g,%g), want (85,100) (115,100)", cs[0].X, cs[0].Y, cs[1].X, cs[1].Y)
	}
}

func TestResolveOverlapsIgnoresSeparated(t *testing.T) {
	cs := []component.CircleComponent{circle(100, 100, 0), circle(150, 100, 0), circle(300, 300, 1)}
	before := append([]component.CircleComponent(nil), cs...)
	if n := ResolveOverlaps(cs, 0.3); n != 0 {
		t.Errorf("pairs = %d, want 0 (touching is not overlapping)", n)
	}
	for i := range cs {
		if cs[i] != before[i] {
			t.Errorf("circle %d moved: %+v -> %+v", i, before[i], cs[i])
		}
	}
}

func TestResolveOverlapsClusterSpreads(t *testing.T) {
	cs := []component.CircleComponent{circle(200, 300, 0), circle(206, 300, 0), circle(203, 304, 0)}

	dist := func(a, b component.CircleComponent) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }
	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	before := make([]float64, len(pairs))
	for k, p := range pairs {
		before[k] = dist(cs[p[0]], cs[p[1]])
	}

	if n := ResolveOverlaps(cs, 0.3); n != 3 {
		t.Fatalf("pairs = %d, want 3", n)
	}

	for k, p := range pairs {
		after := dist(cs[p[0]], cs[p[1]])
		if !(after > before[k]) {
			t.Errorf("pair %v distance %g -> %g, want increase", p, before[k], after)
		}
	}
}

func TestFindMergePairThreshold(t *testing.T) {
	// 25+25-2 = 48
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"deep", 10, true},
		{"just inside", 47.9, true},
		{"at threshold", 48, false},
		{"touching", 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := []component.CircleComponent{circle(100, 100, 0), circle(100+tt.dist, 100, 0)}
			_, _, ok := FindMergePair(cs, 2)
			if ok != tt.want {
				t.Errorf("FindMergePair at distance %g = %v, want %v", tt.dist, ok, tt.want)
			}
		})
	}
}

func TestFindMergePairRequiresSameTier(t *testing.T) {
	cs := []component.CircleComponent{circle(100, 100, 0), circle(105, 100, 1)}
	if _, _, ok := FindMergePair(cs, 2); ok {
		t.Error("different tiers must not merge")
	}
}

func TestFindMergePairScanOrder(t *testing.T) {
	cs := []component.CircleComponent{
		circle(100, 100, 0), // 0
		circle(105, 100, 0), // 1, pairs with 0
		circle(300, 100, 2), // 2
		circle(305, 100, 2), // 3, pairs with 2
		circle(500, 500, 5), // 4, no partner
	}
	i, j, ok := FindMergePair(cs, 2)
	if !ok || i != 3 || j != 2 {
		t.Errorf("FindMergePair = (%d, %d, %v), want (3, 2, true)", i, j, ok)
	}

	// Within one i, the later j is found first
	cs = []component.CircleComponent{circle(100, 100, 0), circle(110, 100, 0), circle(105, 100, 0)}
	i, j, ok = FindMergePair(cs, 2)
	if !ok || i != 2 || j != 1 {
		t.Errorf("FindMergePair = (%d, %d, %v), want (2, 1, true)", i, j, ok)
	}
}

func TestFindMergePairTooFew(t *testing.T) {
	if _, _, ok := FindMergePair(nil, 2); ok {
		t.Error("empty slice reported a pair")
	}
	if _, _, ok := FindMergePair([]component.CircleComponent{circle(0, 0, 0)}, 2); ok {
		t.Error("single circle reported a pair")
	}
}

func TestMergeResult(t *testing.T) {
	a := circle(100, 200, 0)
	b := circle(110, 220, 0)
	a.VX, b.VY = 3, 4

	got, ok := MergeResult(&a, &b, 7, radius)
	if !ok {
		t.Fatal("tier 0 merge should produce a circle")
	}
	want := component.CircleComponent{X: 105, Y: 210, Tier: 1, Radius: 35}
	if got != want {
		t.Errorf("MergeResult = %+v, want %+v", got, want)
	}

	top := circle(0, 0, 7)
	if _, ok := MergeResult(&top, &top, 7, radius); ok {
		t.Error("top tier merge should annihilate")
	}
}
