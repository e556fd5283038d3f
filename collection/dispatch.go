package collection

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/fulldump/records/model"
)

// Delegate is the base behavior that receives operation names not resolved
// by the collection itself.
type Delegate interface {
	Call(name string, args ...any) (any, error)
}

type DelegateFunc func(name string, args ...any) (any, error)

func (f DelegateFunc) Call(name string, args ...any) (any, error) {
	return f(name, args...)
}

// BulkGet reads accessor `name` from every entry, passing `arg` to each
// getter. The result keeps the entries order.
func (c *Collection[M]) BulkGet(name string, arg any) (*Values, error) {
	values := newValues(len(c.entries))
	for i, entry := range c.entries {
		accessor, ok := entry.Accessor(name)
		if !ok {
			return nil, errors.Wrapf(model.ErrUnknownAccessor, "entry %d: get%s", i, name)
		}
		value, err := accessor.Get(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d: get%s", i, name)
		}
		values.add(value)
	}
	return values, nil
}

// BulkSet writes `value` through accessor `name` on every entry.
func (c *Collection[M]) BulkSet(name string, value, arg any) error {
	for i, entry := range c.entries {
		accessor, ok := entry.Accessor(name)
		if !ok {
			return errors.Wrapf(model.ErrUnknownAccessor, "entry %d: set%s", i, name)
		}
		if err := accessor.Set(value, arg); err != nil {
			return errors.Wrapf(err, "entry %d: set%s", i, name)
		}
	}
	return nil
}

// Field reads the stored field `name` from every entry.
func (c *Collection[M]) Field(name string) *Values {
	values := newValues(len(c.entries))
	for _, entry := range c.entries {
		values.add(entry.Field(name))
	}
	return values
}

// SetField writes `value` into the stored field `name` of every entry.
func (c *Collection[M]) SetField(name string, value any) error {
	for i, entry := range c.entries {
		if err := entry.SetField(name, value); err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
	}
	return nil
}

// Call resolves an operation by name. Declared operations go first, then
// getX/setX bulk accessors, then the base delegate. Names nobody resolves
// end in a *CollectionError.
//
// Declared operations: add, cut, count, copy, get, filter, serialize and
// toText.
func (c *Collection[M]) Call(name string, args ...any) (any, error) {

	switch name {
	case "add":
		return c.fluent(c.Add(arg(args, 0)))
	case "cut":
		index := Last
		if len(args) > 0 {
			var err error
			index, err = toIndex(1, args[0])
			if err != nil {
				return nil, err
			}
		}
		return c.fluent(c.Cut(index))
	case "count":
		return c.Count(), nil
	case "copy":
		source, ok := arg(args, 0).(string)
		if !ok {
			return nil, &ArgumentError{Position: 1, Accepted: []string{"string"}, Got: arg(args, 0)}
		}
		destination, ok := arg(args, 1).(string)
		if !ok {
			return nil, &ArgumentError{Position: 2, Accepted: []string{"string"}, Got: arg(args, 1)}
		}
		return c.fluent(c.Copy(source, destination))
	case "get":
		modified := true
		if len(args) > 0 {
			b, ok := args[0].(bool)
			if !ok {
				return nil, &ArgumentError{Position: 1, Accepted: []string{"bool"}, Got: args[0]}
			}
			modified = b
		}
		return c.Get(modified), nil
	case "filter":
		conds, ok := arg(args, 0).(map[string]any)
		if !ok {
			return nil, &ArgumentError{Position: 1, Accepted: []string{"map[string]any"}, Got: arg(args, 0)}
		}
		return c.Filter(conds)
	case "serialize", "toText":
		return c.Serialize()
	}

	if field, ok := strings.CutPrefix(name, "get"); ok && field != "" {
		return c.BulkGet(field, arg(args, 0))
	}

	if field, ok := strings.CutPrefix(name, "set"); ok && field != "" {
		return c.fluent(c.BulkSet(field, arg(args, 0), arg(args, 1)))
	}

	cause := ErrUnresolved
	if c.base != nil {
		result, err := c.base.Call(name, args...)
		if err == nil {
			return result, nil
		}
		cause = err
	}

	c.logger.Debug().Str("operation", name).Err(cause).Msg("unresolved operation")
	return nil, &CollectionError{Name: name, Err: cause}
}

func (c *Collection[M]) fluent(err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
