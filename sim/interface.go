package sim

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/sources"
)

// AddParticlesInRadius fills a disk of the given radius centered at
// center with particles spaced by density, each given velocity. It
// returns the number of particles added.
func (s *Simulation) AddParticlesInRadius(density, radius float64, center, velocity core.Vector) int {
	return sources.AddParticlesInRadius(s.Grid, s.Particles, center, radius, velocity, density)
}

// DeleteParticlesInRadius removes every particle within radius of
// center.
func (s *Simulation) DeleteParticlesInRadius(center core.Vector, radius float64) {
	sources.DeleteParticlesInRadius(s.Grid, s.Particles, center, radius)
}

// DeleteAllParticles empties the particle store.
func (s *Simulation) DeleteAllParticles() {
	sources.DeleteAllParticles(s.Grid, s.Particles, s.Constraints)
}

// SetCellType sets the classification of (row, col), returning
// OutOfGridBounds if the coordinate is invalid.
func (s *Simulation) SetCellType(row, col int, cellType grid.CellType) error {
	if !s.Grid.InBounds(row, col) {
		err := newOutOfGridBounds("cell (%d, %d) is outside the %dx%d grid", row, col, s.Grid.Rows, s.Grid.Cols)
		s.logger.Warn("rejected cell type change", slog.Int("row", row), slog.Int("col", col), slog.String("error", err.Error()))
		return err
	}
	s.Grid.CellType[s.Grid.Index(row, col)] = cellType
	if cellType == grid.Solid {
		sources.DeleteParticlesInCell(s.Grid, s.Particles, row, col)
	}
	return nil
}

// ForceEdgeSolids sets the outermost ring of cells to Solid.
func (s *Simulation) ForceEdgeSolids() {
	s.Grid.ForceEdgeSolids()
}

// AddFaucet registers a new faucet and returns its handle.
func (s *Simulation) AddFaucet(position core.Vector, diameter float64, velocity core.Vector) uuid.UUID {
	f := sources.NewFaucet(position, diameter, velocity)
	s.faucets[f.ID] = f
	s.logger.Info("faucet added", slog.String("id", f.ID.String()))
	return f.ID
}

// RemoveFaucet unregisters a faucet by handle; it is a no-op if the
// handle is unknown.
func (s *Simulation) RemoveFaucet(handle uuid.UUID) {
	delete(s.faucets, handle)
	s.logger.Info("faucet removed", slog.String("id", handle.String()))
}

// AddDrain registers a new drain and returns its handle.
func (s *Simulation) AddDrain(position core.Vector, radius, pressure float64) uuid.UUID {
	d := sources.NewDrain(position, radius, pressure)
	s.drains[d.ID] = d
	s.logger.Info("drain added", slog.String("id", d.ID.String()))
	return d.ID
}

// RemoveDrain unregisters a drain by handle; it is a no-op if the
// handle is unknown.
func (s *Simulation) RemoveDrain(handle uuid.UUID) {
	delete(s.drains, handle)
	s.logger.Info("drain removed", slog.String("id", handle.String()))
}

// SelectedParticle pairs a particle handle with its offset from the
// query center, as returned by SelectParticles.
type SelectedParticle = constraints.SelectedParticle

// SelectParticles returns every particle within radius of center, along
// with each one's offset from center, for the host's Grab tool. The
// selection is also recorded on the simulation's Constraints until the
// next call replaces it.
func (s *Simulation) SelectParticles(center core.Vector, radius float64) []SelectedParticle {
	radiusSq := radius * radius
	var selected []SelectedParticle

	s.Particles.ForEach(func(handle int, position, _ core.Vector) {
		if position.DistanceSq(center) <= radiusSq {
			selected = append(selected, SelectedParticle{Handle: handle, Offset: position.Sub(center)})
		}
	})

	s.Constraints.SelectedParticles = selected
	return selected
}

// MoveParticle sets a particle's position directly and derives its
// velocity from the displacement, scaled by throwStrength, so the host
// can drag-and-release particles.
func (s *Simulation) MoveParticle(handle int, newPosition core.Vector) {
	oldPosition, _, ok := s.Particles.Get(handle)
	if !ok {
		return
	}

	velocity := newPosition.Sub(oldPosition).Scale(constraints.ThrowStrength)
	s.Particles.SetPosition(handle, newPosition)
	s.Particles.SetVelocity(handle, velocity)
}

// ParticleIterator calls fn for every live particle's position and
// velocity.
func (s *Simulation) ParticleIterator(fn func(position, velocity core.Vector)) {
	s.Particles.ForEach(func(_ int, position, velocity core.Vector) {
		fn(position, velocity)
	})
}

// CellType returns the classification of (row, col).
func (s *Simulation) CellType(row, col int) grid.CellType {
	return s.Grid.CellTypeAt(row, col)
}

// CellVelocity returns the face-averaged velocity of (row, col).
func (s *Simulation) CellVelocity(row, col int) core.Vector {
	return s.Grid.CellVelocity(row, col)
}

// CellDensity returns the density estimate of (row, col).
func (s *Simulation) CellDensity(row, col int) float64 {
	if !s.Grid.InBounds(row, col) {
		return 0
	}
	return s.Grid.Density[s.Grid.Index(row, col)]
}

// Dimensions returns the grid's row and column counts.
func (s *Simulation) Dimensions() (rows, cols int) {
	return s.Grid.Rows, s.Grid.Cols
}

// CellSize returns the grid's cell edge length.
func (s *Simulation) CellSize() float64 {
	return s.Grid.CellSize
}
