// Package config loads game tuning from YAML, overlaying a file on built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/circle-merge/parameter"
)

// Config is the full tuning surface of a game session
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Tiers   []float64     `yaml:"tiers"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Engine  EngineConfig  `yaml:"engine"`
	Audio   AudioConfig   `yaml:"audio"`
}

type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	GravityPerPoint float64 `yaml:"gravity_per_point"`
	Damping         float64 `yaml:"damping"`
	RestThreshold   float64 `yaml:"rest_threshold"`
	OverlapRelax    float64 `yaml:"overlap_relax"`
	MergeEpsilon    float64 `yaml:"merge_epsilon"`
}

type SpawnConfig struct {
	Y         float64 `yaml:"y"`
	TierCount int     `yaml:"tier_count"`
	Seed      uint64  `yaml:"seed"` // 0 = seed from clock
}

type ScoringConfig struct {
	MergeReward   int    `yaml:"merge_reward"`
	HighScorePath string `yaml:"high_score_path"` // empty = user config dir
}

type EngineConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // master volume in [0,1]
}

// Default returns the stock tuning
func Default() *Config {
	tiers := make([]float64, len(parameter.DefaultTierRadii))
	copy(tiers, parameter.DefaultTierRadii)

	return &Config{
		Field: FieldConfig{
			Width:  parameter.FieldWidth,
			Height: parameter.FieldHeight,
		},
		Tiers: tiers,
		Physics: PhysicsConfig{
			Gravity:         parameter.GravityBase,
			GravityPerPoint: parameter.GravityPerPoint,
			Damping:         parameter.Damping,
			RestThreshold:   parameter.RestThreshold,
			OverlapRelax:    parameter.OverlapRelax,
			MergeEpsilon:    parameter.MergeEpsilon,
		},
		Spawn: SpawnConfig{
			Y:         parameter.SpawnY,
			TierCount: parameter.SpawnTierCount,
		},
		Scoring: ScoringConfig{
			MergeReward: parameter.MergeReward,
		},
		Engine: EngineConfig{
			TickInterval: parameter.FrameUpdateInterval,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
	}
}

// Load reads path and overlays it on Default; an empty path yields the defaults
// Keys absent from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.Validate()
}

// MaxTier returns the highest tier index
func (c *Config) MaxTier() int {
	return len(c.Tiers) - 1
}

// Radius returns the radius of tier, clamped into the table
func (c *Config) Radius(tier int) float64 {
	if tier < 0 {
		tier = 0
	}
	if tier > c.MaxTier() {
		tier = c.MaxTier()
	}
	return c.Tiers[tier]
}

// SpawnTiers returns how many of the lowest tiers a drop may roll
func (c *Config) SpawnTiers() int {
	return min(c.Spawn.TierCount, len(c.Tiers))
}

// ErrInvalid marks semantic validation failures
var ErrInvalid = errors.New("invalid config")
