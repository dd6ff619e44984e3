package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Recorder appends FlockStats rows to a CSV stream, the header is written with the first rows.
type Recorder struct {
	w             io.Writer
	headerWritten bool
	rows          int
}

// NewRecorder returns a recorder writing to w. The caller owns w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Record writes rows. Recording nothing is a no-op.
func (r *Recorder) Record(rows ...FlockStats) error {
	if len(rows) == 0 {
		return nil
	}

	if !r.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(rows, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(rows, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}

	r.rows += len(rows)
	return nil
}

// Rows is the number of rows recorded so far.
func (r *Recorder) Rows() int { return r.rows }
