package rangeref

import (
	"errors"
	"fmt"
)

// ErrHiddenExtent indicates a range covering a hidden row or column.
var ErrHiddenExtent = errors.New("range covers a hidden row or column")

// ErrDuplicateName indicates a range name that is already defined.
var ErrDuplicateName = errors.New("range name already defined")

// ErrInvalidNameChars indicates a range name with characters other than
// letters, digits and underscores.
var ErrInvalidNameChars = errors.New("invalid range name - illegal combination")

// ErrAmbiguousName indicates a range name that reads as a numeric literal.
var ErrAmbiguousName = errors.New("invalid range name - ambiguous")

// ErrUnsetMark indicates a mark that has no recorded position.
var ErrUnsetMark = errors.New("mark is not set")

// RangeError represents a failed range or mark operation.
type RangeError struct {
	Op   string // "define", "create", ...
	Name string // range name or mark pair
	Err  error
}

func (e *RangeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// NewRangeError creates a new RangeError.
func NewRangeError(op, name string, err error) *RangeError {
	return &RangeError{
		Op:   op,
		Name: name,
		Err:  err,
	}
}
