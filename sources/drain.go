package sources

import (
	"math"

	"github.com/google/uuid"

	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

// captureRadiusFactor is the multiple of cell size within which a drain
// deletes particles outright, after applying its pull force.
const captureRadiusFactor = 1.5

// Drain pulls particles within Radius toward its center and deletes any
// particle within 1.5 cells of it.
type Drain struct {
	ID       uuid.UUID
	Position core.Vector
	Radius   float64
	Pressure float64
}

// NewDrain returns a Drain with a freshly generated handle.
func NewDrain(position core.Vector, radius, pressure float64) *Drain {
	return &Drain{
		ID:       uuid.New(),
		Position: position,
		Radius:   radius,
		Pressure: pressure,
	}
}

// Apply adds a pull-force velocity to every particle within Radius of
// the drain, then deletes every particle within 1.5*cellSize of it.
func (d *Drain) Apply(g *grid.Grid, store *particles.Store) {
	for _, handle := range store.Handles() {
		position, velocity, ok := store.Get(handle)
		if !ok {
			continue
		}

		displacement := position.Sub(d.Position)
		distance := displacement.Length()
		if distance == 0 || distance > d.Radius {
			continue
		}

		theta := math.Atan2(displacement.Y, displacement.X) + math.Pi
		pullMagnitude := (d.Pressure * d.Pressure) / distance

		pull := core.Vector{X: pullMagnitude * math.Cos(theta), Y: pullMagnitude * math.Sin(theta)}
		store.SetVelocity(handle, velocity.Add(pull))
	}

	DeleteParticlesInRadius(g, store, d.Position, captureRadiusFactor*g.CellSize)
}
