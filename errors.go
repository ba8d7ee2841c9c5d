package kasir

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation referencing a product id that is not in
// the catalog.
var ErrNotFound = errors.New("product not found")

// ErrEmptyCart reports a commit attempted with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports rejected user input. It mutates nothing: the
// failing operation leaves stores untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError reports an unreadable import source. A single malformed row is
// skipped instead; ParseError means the source as a whole could not be
// decoded and zero rows were imported.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PersistenceError reports a rejected storage write. After a ledger commit
// this is the most severe failure: the transaction exists in memory but may
// not be durably recorded, and callers must warn the user rather than treat
// it as a logic error.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not persist %q: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
