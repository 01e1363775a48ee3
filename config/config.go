// Package config loads the tunable parameters of a fresh simulation
// from YAML. It configures grid size, cell size, timestep, iteration
// counts, gravity, and the PIC/FLIP blend ratio; it does not serialize
// live particle or grid state.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Grid holds the domain dimensions a simulation is constructed with.
type Grid struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	CellSize float64 `yaml:"cell_size"`
}

// Gravity mirrors constraints.Constraints.Gravity in a YAML-friendly
// shape.
type Gravity struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Physics holds the tunable parameters passed into
// constraints.Constraints at construction time.
type Physics struct {
	Timestep                    float64 `yaml:"timestep"`
	Gravity                     Gravity `yaml:"gravity"`
	GridParticleRatio           float64 `yaml:"grid_particle_ratio"`
	IncompIterationsPerFrame    int     `yaml:"incomp_iterations_per_frame"`
	CollisionIterationsPerFrame int     `yaml:"collision_iterations_per_frame"`
	ParticleRadius              float64 `yaml:"particle_radius"`
}

// Config is the root of a simulation's YAML configuration.
type Config struct {
	Grid    Grid    `yaml:"grid"`
	Physics Physics `yaml:"physics"`
}

// Load parses the embedded defaults, then merges an optional override
// file on top (only the fields present in the override are changed). If
// path is empty, only the embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// ToConstraints builds a constraints.Constraints from this config.
func (c *Config) ToConstraints() *constraints.Constraints {
	return &constraints.Constraints{
		Timestep:                    c.Physics.Timestep,
		Gravity:                     core.Vector{X: c.Physics.Gravity.X, Y: c.Physics.Gravity.Y},
		GridParticleRatio:           c.Physics.GridParticleRatio,
		IncompIterationsPerFrame:    c.Physics.IncompIterationsPerFrame,
		CollisionIterationsPerFrame: c.Physics.CollisionIterationsPerFrame,
		ParticleRadius:              c.Physics.ParticleRadius,
	}
}
