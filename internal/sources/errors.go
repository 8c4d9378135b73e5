package sources

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the source adapter.
var (
	// ErrNotOpen is returned when Read is called before Open.
	ErrNotOpen = errors.New("source not open")

	// ErrAlreadyOpen is returned when Open is called on an already-open source.
	ErrAlreadyOpen = errors.New("source already open")
)

// ErrFileNotFound indicates the specified input file does not exist.
type ErrFileNotFound struct {
	Path string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("input file not found: %q", e.Path)
}

// ErrInvalidFormat indicates that the input file cannot be parsed at all,
// e.g. a missing header row. Per-row anomalies are never reported this way.
type ErrInvalidFormat struct {
	Source  string // Source adapter name
	Path    string // File path
	Details string // What was wrong
	Err     error  // Underlying error, if any
}

func (e *ErrInvalidFormat) Error() string {
	msg := fmt.Sprintf("%s: invalid format for %q", e.Source, e.Path)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrInvalidFormat) Unwrap() error {
	return e.Err
}

// ErrPartialRead indicates that some rows couldn't be read. The source
// still returns the entries that were successfully read.
type ErrPartialRead struct {
	Source     string   // Source adapter name
	TotalItems int      // Total rows attempted
	ReadItems  int      // Rows successfully read
	Failures   []string // Descriptions of failures
	Errs       []error  // Individual errors
}

func (e *ErrPartialRead) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: partial read - %d of %d rows succeeded",
		e.Source, e.ReadItems, e.TotalItems))

	if len(e.Failures) > 0 {
		sb.WriteString("\nFailures:\n")
		for i, f := range e.Failures {
			sb.WriteString(fmt.Sprintf("  - %s", f))
			if i < len(e.Failures)-1 {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

// AddFailure adds a failure to the partial read error.
func (e *ErrPartialRead) AddFailure(description string, err error) {
	e.Failures = append(e.Failures, description)
	if err != nil {
		e.Errs = append(e.Errs, err)
	}
}

// HasFailures returns true if there are any failures recorded.
func (e *ErrPartialRead) HasFailures() bool {
	return len(e.Failures) > 0
}

// IsFormatError returns true if the error is a format error.
func IsFormatError(err error) bool {
	var formatErr *ErrInvalidFormat
	return errors.As(err, &formatErr)
}

// IsPartialRead returns true if the error is a partial read error.
func IsPartialRead(err error) bool {
	var partialErr *ErrPartialRead
	return errors.As(err, &partialErr)
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	var notFoundErr *ErrFileNotFound
	return errors.As(err, &notFoundErr)
}
