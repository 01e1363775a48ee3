package sim

import (
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/telemetry"
)

// Stats summarizes the current tick for the opt-in telemetry recorder.
func (s *Simulation) Stats() telemetry.TickStats {
	velocities := make([]core.Vector, 0, s.Particles.Len())
	s.Particles.ForEach(func(_ int, _, velocity core.Vector) {
		velocities = append(velocities, velocity)
	})

	return telemetry.Summarize(s.tick, s.Grid.Density, velocities, len(s.faucets), len(s.drains))
}
