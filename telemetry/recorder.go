package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Recorder appends one TickStats row per call to Write, as CSV, to an
// underlying io.Writer. It is opt-in: a Simulation runs without one by
// default, and nothing in the core package depends on it.
type Recorder struct {
	w             io.Writer
	headerWritten bool
}

// NewRecorder returns a Recorder that writes CSV rows to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Write appends one row for stats, writing a header row on first use.
func (r *Recorder) Write(stats TickStats) error {
	records := []TickStats{stats}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing telemetry header: %w", err)
		}
		r.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
		return fmt.Errorf("writing telemetry row: %w", err)
	}
	return nil
}
