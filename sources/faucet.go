package sources

import (
	"github.com/google/uuid"

	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

// defaultFaucetSpacing is the lattice spacing, in world units, used to
// pack newly emitted particles. It does not scale with the faucet's
// diameter; a wider faucet emits more particles because its disk covers
// more lattice points.
const defaultFaucetSpacing = 1.0

// Faucet emits particles with a prescribed velocity each tick, filling
// a disk one cell below its nominal position.
type Faucet struct {
	ID               uuid.UUID
	Position         core.Vector
	Diameter         float64
	EmissionVelocity core.Vector
}

// NewFaucet returns a Faucet with a freshly generated handle.
func NewFaucet(position core.Vector, diameter float64, velocity core.Vector) *Faucet {
	return &Faucet{
		ID:               uuid.New(),
		Position:         position,
		Diameter:         diameter,
		EmissionVelocity: velocity,
	}
}

// Emit fills a disk of radius Diameter, centered one cell below the
// faucet's position, with particles moving at EmissionVelocity.
func (f *Faucet) Emit(g *grid.Grid, store *particles.Store) int {
	center := f.Position.Add(core.Vector{X: 0, Y: -g.CellSize})
	return AddParticlesInRadius(g, store, center, f.Diameter, f.EmissionVelocity, defaultFaucetSpacing)
}
