package bitwarden

import (
	"encoding/csv"
	"io"
)

// Writer emits Bitwarden CSV rows with the mandated header. Quoting and
// escaping of embedded commas, quotes, and newlines follow standard CSV
// rules via encoding/csv.
type Writer struct {
	w             *csv.Writer
	headerWritten bool
}

// NewWriter creates a Writer on top of the given output stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteHeader writes the ten-column schema header. It is written at most
// once; repeated calls are no-ops.
func (w *Writer) WriteHeader() error {
	if w.headerWritten {
		return nil
	}
	if err := w.w.Write(FieldNames); err != nil {
		return err
	}
	w.headerWritten = true
	return nil
}

// Write emits one record, writing the header first if needed.
func (w *Writer) Write(rec Record) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	return w.w.Write(rec.Values())
}

// Flush writes buffered data to the underlying stream and reports any
// error encountered during writing or flushing.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
