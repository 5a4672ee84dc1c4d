package matchhistory

import (
	"errors"
	"fmt"
)

var (
	// the structural selector for the history table matched nothing
	ErrTableNotFound = errors.New("match history table not found")
	// a row passed the duration gate but lacks a mandatory field
	ErrRowMalformed = errors.New("malformed match row")
	// the role slot is past the end of a team column
	ErrRoleIndexOutOfRange = errors.New("role index out of range")
	ErrInvalidSelector     = errors.New("invalid selector")
)

// RowError locates a fatal extraction failure: the 1-based row position and
// the logical field that broke the layout assumption.
type RowError struct {
	Row   int
	Field Field
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %v", e.Row, e.Field, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func malformed(row int, field Field) error {
	return &RowError{Row: row, Field: field, Err: ErrRowMalformed}
}
