// Package telemetry provides opt-in, per-tick diagnostics for a
// simulation: structured slog output and an append-only CSV recorder.
// Neither path can reconstruct simulation state; this is diagnostics,
// not scene serialization.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/kadealicious/JuiceBox/core"
)

// TickStats holds one tick's aggregate numbers: particle count, the
// mean and standard deviation of the density field, and total kinetic
// energy.
type TickStats struct {
	Tick          int64   `csv:"tick"`
	ParticleCount int     `csv:"particle_count"`
	FaucetCount   int     `csv:"faucet_count"`
	DrainCount    int     `csv:"drain_count"`
	DensityMean   float64 `csv:"density_mean"`
	DensityStdDev float64 `csv:"density_stddev"`
	KineticEnergy float64 `csv:"kinetic_energy"`
}

// Summarize computes a TickStats from the raw per-cell density array
// and per-particle velocities of a single tick.
func Summarize(tick int64, density []float64, velocities []core.Vector, faucetCount, drainCount int) TickStats {
	mean, stddev := stat.MeanStdDev(density, nil)

	energy := 0.0
	for _, v := range velocities {
		energy += 0.5 * v.LengthSq()
	}

	return TickStats{
		Tick:          tick,
		ParticleCount: len(velocities),
		FaucetCount:   faucetCount,
		DrainCount:    drainCount,
		DensityMean:   mean,
		DensityStdDev: stddev,
		KineticEnergy: energy,
	}
}

// LogValue implements slog.LogValuer so a single
// slog.Info("tick", "stats", stats) call emits a structured group
// instead of hand-built key/value pairs at the call site.
func (s TickStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("tick", s.Tick),
		slog.Int("particle_count", s.ParticleCount),
		slog.Int("faucet_count", s.FaucetCount),
		slog.Int("drain_count", s.DrainCount),
		slog.Float64("density_mean", s.DensityMean),
		slog.Float64("density_stddev", s.DensityStdDev),
		slog.Float64("kinetic_energy", s.KineticEnergy),
	)
}
