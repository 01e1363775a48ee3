// Package constraints holds the tunable parameters that govern a single
// fluid simulation run, along with the selected-particle bookkeeping used
// by the host's Grab tool.
package constraints

import (
	"math"

	"github.com/kadealicious/JuiceBox/core"
)

// SelectedParticle pairs a particle handle with the cursor offset recorded
// when the host's Grab tool picked it up.
type SelectedParticle struct {
	Handle int
	Offset core.Vector
}

// Constraints holds the tunable parameters for one simulation instance.
type Constraints struct {
	Timestep                    float64
	Gravity                     core.Vector
	GridParticleRatio           float64 // alpha: 0 = pure FLIP, 1 = pure PIC.
	IncompIterationsPerFrame    int
	CollisionIterationsPerFrame int
	ParticleRadius              float64
	ParticleCount               int
	ParticleRestDensity         float64
	IsPaused                    bool
	SelectedParticles           []SelectedParticle
}

// Reference defaults, tuned for a 1/120s fixed step.
const (
	DefaultTimestep                    = 1.0 / 120.0
	DefaultGridParticleRatio           = 0.3
	DefaultIncompIterationsPerFrame    = 100
	DefaultCollisionIterationsPerFrame = 2
	DefaultParticleRadius              = 1.5
	ThrowStrength                      = 50.0
	minGravityMagnitude                = 1e-5
)

// DefaultGravity is the reference gravity vector, tuned for a 1/120s step.
var DefaultGravity = core.Vector{X: 0, Y: -385}

// New returns a Constraints populated with the reference defaults.
func New() *Constraints {
	return &Constraints{
		Timestep:                    DefaultTimestep,
		Gravity:                     DefaultGravity,
		GridParticleRatio:           DefaultGridParticleRatio,
		IncompIterationsPerFrame:    DefaultIncompIterationsPerFrame,
		CollisionIterationsPerFrame: DefaultCollisionIterationsPerFrame,
		ParticleRadius:              DefaultParticleRadius,
	}
}

// ChangeGravity interprets magnitudeDelta and directionDelta as rates
// applied over one timestep: it converts the existing gravity vector to
// polar form, nudges magnitude and direction, clamps the magnitude away
// from zero to avoid the polar-direction singularity, and stores the
// result back as Cartesian components.
func (c *Constraints) ChangeGravity(magnitudeDelta, directionDelta float64) {
	magnitude := c.Gravity.Length()
	direction := math.Atan2(c.Gravity.Y, c.Gravity.X)

	magnitude += magnitudeDelta * c.Timestep
	direction += directionDelta * c.Timestep

	if magnitude < minGravityMagnitude {
		magnitude = minGravityMagnitude
	}

	c.Gravity = core.Vector{
		X: magnitude * math.Cos(direction),
		Y: magnitude * math.Sin(direction),
	}
}
