// Package sim implements the step driver: the narrow external interface
// the host uses to construct a simulation, mutate it between ticks, and
// advance it one fixed timestep at a time.
package sim

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/kadealicious/JuiceBox/config"
	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
	"github.com/kadealicious/JuiceBox/physics"
	"github.com/kadealicious/JuiceBox/sources"
)

// DefaultRows, DefaultCols, and DefaultCellSize describe the reference
// 50x50 domain at cell size 5 world units.
const (
	DefaultRows     = 50
	DefaultCols     = 50
	DefaultCellSize = 5.0
)

// Simulation owns one fluid domain: its grid, its particle store, its
// faucets and drains, and the tunable Constraints that govern a tick.
type Simulation struct {
	Grid        *grid.Grid
	Particles   *particles.Store
	Constraints *constraints.Constraints

	faucets map[uuid.UUID]*sources.Faucet
	drains  map[uuid.UUID]*sources.Drain

	tick   int64
	logger *slog.Logger
}

// Create constructs a simulation over a rows x cols grid of the given
// cell size, with reference-default constraints. Dimensions are
// expected to be validated ahead of time by the host (see
// CreateValidated); Create itself never fails.
func Create(rows, cols int, cellSize float64) *Simulation {
	return &Simulation{
		Grid:        grid.New(rows, cols, cellSize),
		Particles:   particles.NewStore(),
		Constraints: constraints.New(),
		faucets:     make(map[uuid.UUID]*sources.Faucet),
		drains:      make(map[uuid.UUID]*sources.Drain),
		logger:      slog.Default(),
	}
}

// CreateDefault constructs a simulation over the reference 50x50 domain
// at cell size 5.
func CreateDefault() *Simulation {
	return Create(DefaultRows, DefaultCols, DefaultCellSize)
}

// CreateValidated is Create with bounds-checking: it rejects
// non-positive dimensions or cell size with GridSizeError instead of
// constructing a degenerate grid.
func CreateValidated(rows, cols int, cellSize float64) (*Simulation, error) {
	if rows <= 0 || cols <= 0 {
		return nil, newGridSizeError("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if cellSize <= 0 {
		return nil, newGridSizeError("cell size must be positive, got %g", cellSize)
	}
	return Create(rows, cols, cellSize), nil
}

// CreateFromConfig builds a simulation whose grid dimensions and
// Constraints come from cfg, the way a host would load a named preset
// or level file instead of hard-coding the reference domain.
func CreateFromConfig(cfg *config.Config) (*Simulation, error) {
	s, err := CreateValidated(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.CellSize)
	if err != nil {
		return nil, err
	}
	s.Constraints = cfg.ToConstraints()
	return s, nil
}

// Step advances the simulation by one tick if it is not paused; faucets
// and drains are serviced as part of that tick. While paused it does
// nothing.
func (s *Simulation) Step() {
	if s.Constraints.IsPaused {
		return
	}
	s.tickOnce()
}

// StepOnce advances the simulation by exactly one tick, regardless of
// the paused flag, and leaves the paused flag unchanged.
func (s *Simulation) StepOnce() {
	s.tickOnce()
}

// Pause sets the paused flag.
func (s *Simulation) Pause(paused bool) {
	s.Constraints.IsPaused = paused
}

// tickOnce runs the full fixed phase order: integration, separation,
// boundary clamp, classification, P2G, extrapolate, projection, change
// grid, G2P, extrapolate, faucets/drains, NaN sweep.
func (s *Simulation) tickOnce() {
	g, store, c := s.Grid, s.Particles, s.Constraints

	physics.IntegrateParticles(g, store, c)
	physics.PushParticlesApart(g, store, c)
	physics.ClampToBoundary(g, store, c)

	g.LabelCells()

	physics.ParticlesToGrid(g, store)
	physics.Extrapolate(g.U, 1)
	physics.Extrapolate(g.V, 1)

	oldU := physics.SnapshotFaces(g.U)
	oldV := physics.SnapshotFaces(g.V)

	physics.MakeIncompressible(g, c)

	changeU := physics.ChangeGrid(oldU, g.U)
	changeV := physics.ChangeGrid(oldV, g.V)

	physics.GridToParticles(g, store, changeU, changeV, c)
	physics.Extrapolate(g.U, 1)
	physics.Extrapolate(g.V, 1)

	for _, faucet := range s.faucets {
		faucet.Emit(g, store)
	}
	for _, drain := range s.drains {
		drain.Apply(g, store)
	}

	physics.SweepNaN(g, store)

	c.ParticleCount = store.Len()
	s.tick++
}

// Tick returns the number of ticks completed so far.
func (s *Simulation) Tick() int64 { return s.tick }

// IsPaused reports the current paused state.
func (s *Simulation) IsPaused() bool { return s.Constraints.IsPaused }

// Gravity returns the current gravity vector.
func (s *Simulation) Gravity() core.Vector { return s.Constraints.Gravity }

// ChangeGravity forwards to Constraints.ChangeGravity.
func (s *Simulation) ChangeGravity(magnitudeDelta, directionDelta float64) {
	s.Constraints.ChangeGravity(magnitudeDelta, directionDelta)
}
