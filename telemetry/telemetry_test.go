package telemetry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/telemetry"
)

func TestSummarizeComputesDensityAndEnergy(t *testing.T) {
	density := []float64{1, 2, 3, 4}
	velocities := []core.Vector{{X: 3, Y: 4}, {X: 0, Y: 0}}

	stats := telemetry.Summarize(7, density, velocities, 1, 2)

	assert.Equal(t, int64(7), stats.Tick)
	assert.Equal(t, 2, stats.ParticleCount)
	assert.Equal(t, 1, stats.FaucetCount)
	assert.Equal(t, 2, stats.DrainCount)
	assert.InDelta(t, 2.5, stats.DensityMean, 1e-9)
	assert.InDelta(t, 12.5, stats.KineticEnergy, 1e-9) // 0.5*25 + 0.5*0
}

func TestRecorderWritesHeaderOnceThenRows(t *testing.T) {
	var buf strings.Builder
	r := telemetry.NewRecorder(&buf)

	require.NoError(t, r.Write(telemetry.TickStats{Tick: 1, ParticleCount: 10}))
	require.NoError(t, r.Write(telemetry.TickStats{Tick: 2, ParticleCount: 20}))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3) // header + 2 rows
	assert.Contains(t, lines[0], "tick")
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[2], "2")
}
