package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Writer appends WindowStats rows as CSV to an io.Writer.
// The header is written with the first row only.
type Writer struct {
	w             io.Writer
	headerWritten bool
}

// NewWriter creates a CSV writer. A nil Writer discards every row.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		return nil
	}
	return &Writer{w: w}
}

// Write appends one row.
func (tw *Writer) Write(stats WindowStats) error {
	if tw == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !tw.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, tw.w); err != nil {
			return fmt.Errorf("telemetry: writing row: %w", err)
		}
		tw.headerWritten = true
		return nil
	}

	// Subsequent writes skip headers
	if err := gocsv.MarshalWithoutHeaders(records, tw.w); err != nil {
		return fmt.Errorf("telemetry: writing row: %w", err)
	}
	return nil
}
