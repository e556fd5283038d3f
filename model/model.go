package model

import (
	"github.com/pkg/errors"
)

var (
	ErrUnknownAccessor = errors.New("unknown accessor")
	ErrInvalidField    = errors.New("invalid field")
)

func ErrReadOnly(name string) error {
	return errors.Wrapf(ErrInvalidField, "'%s' is read only", name)
}

// Model is a single record handled by a collection.
type Model interface {
	// Get returns a snapshot of the fields. With modified=false the
	// snapshot reflects the values the model was built with.
	Get(modified bool) map[string]any

	// Field reads a field by its stored name, nil if it does not exist.
	Field(name string) any

	// SetField writes a field by its stored name.
	SetField(name string, value any) error

	// Accessor looks up the getter/setter pair registered for `name`, the
	// CamelCase part of getName/setName.
	Accessor(name string) (Accessor, bool)

	// Copy copies the value of field `source` into field `destination`.
	// A missing `source` is a no-op and returns nil.
	Copy(source, destination string) error
}

// Accessor is a getter/setter pair for one field. `arg` is an optional
// hint (for example a separator) whose meaning depends on the model.
type Accessor struct {
	Get func(arg any) (any, error)
	Set func(value, arg any) error
}

// Kind describes a concrete model type: its name and how to build it from
// raw fields.
type Kind[M Model] struct {
	Name string
	New  func(fields map[string]any) (M, error)
}
