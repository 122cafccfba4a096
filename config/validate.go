package config

import (
	"errors"
	"fmt"
)

// Validate checks semantic constraints, reporting every problem at once
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		add("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}

	if len(c.Tiers) == 0 {
		add("tiers must not be empty")
	}
	for i, r := range c.Tiers {
		if r <= 0 {
			add("tiers[%d] radius must be > 0, got %g", i, r)
		}
		if i > 0 && r <= c.Tiers[i-1] {
			add("tiers[%d] radius %g must exceed tiers[%d] radius %g", i, r, i-1, c.Tiers[i-1])
		}
	}
	if n := len(c.Tiers); n > 0 && c.Field.Width > 0 && 2*c.Tiers[n-1] > c.Field.Width {
		add("field width %g cannot hold largest tier diameter %g", c.Field.Width, 2*c.Tiers[n-1])
	}

	p := c.Physics
	if p.Damping <= 0 || p.Damping > 1 {
		add("physics.damping must be in (0,1], got %g", p.Damping)
	}
	if p.OverlapRelax <= 0 || p.OverlapRelax > 1 {
		add("physics.overlap_relax must be in (0,1], got %g", p.OverlapRelax)
	}
	if p.Gravity < 0 || p.GravityPerPoint < 0 {
		add("physics.gravity and gravity_per_point must be >= 0")
	}
	if p.RestThreshold < 0 || p.MergeEpsilon < 0 {
		add("physics.rest_threshold and merge_epsilon must be >= 0")
	}

	if c.Spawn.TierCount < 1 {
		add("spawn.tier_count must be >= 1, got %d", c.Spawn.TierCount)
	}
	if c.Scoring.MergeReward < 0 {
		add("scoring.merge_reward must be >= 0, got %d", c.Scoring.MergeReward)
	}
	if c.Engine.TickInterval <= 0 {
		add("engine.tick_interval must be positive, got %s", c.Engine.TickInterval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio.volume must be in [0,1], got %g", c.Audio.Volume)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
