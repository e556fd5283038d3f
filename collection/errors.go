package collection

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnresolved = errors.New("operation not resolved")

// ArgumentError is returned when an operation receives a value with the
// wrong shape at argument `Position` (1-based).
type ArgumentError struct {
	Position int
	Accepted []string
	Got      any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %d must be %s, got %T(%v)",
		e.Position, strings.Join(e.Accepted, " or "), e.Got, e.Got)
}

// CollectionError is returned when an operation name cannot be resolved by
// the collection, by bulk dispatch nor by the base delegate.
type CollectionError struct {
	Name string
	Err  error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collection '%s': %s", e.Name, e.Err.Error())
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// Cause makes CollectionError compatible with errors.Cause.
func (e *CollectionError) Cause() error {
	return e.Err
}
