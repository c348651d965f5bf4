package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrLoadFailure indicates the source sheet could not be opened or parsed.
	ErrLoadFailure = errors.New("load failure")

	// ErrMalformedRow indicates a row whose year is not an integer.
	// It aborts the whole load.
	ErrMalformedRow = errors.New("malformed row")

	// ErrInvalidRow indicates a row that is skipped (bad gender, name or frequency).
	ErrInvalidRow = errors.New("invalid row")

	// ErrEmptyDataset is returned by every query made before a successful load.
	ErrEmptyDataset = errors.New("there are no data")

	ErrNameNotFound   = errors.New("name not found")
	ErrYearOutOfRange = errors.New("year out of range")
	ErrInvalidPattern = errors.New("invalid wildcard pattern")
)

// RowError wraps a row-level error with the sheet line and offending field.
type RowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s=%q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func newRowError(line int, field, value string, err error) *RowError {
	return &RowError{Line: line, Field: field, Value: value, Err: err}
}

// LoadError reports why a source file could not be read. It matches
// ErrLoadFailure and unwraps to the underlying cause, so callers can still
// test for os.ErrNotExist and the like.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrLoadFailure, e.Op, e.Path, e.Err)
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
