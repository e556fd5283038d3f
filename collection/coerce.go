package collection

import (
	"reflect"

	"github.com/pkg/errors"
)

// coerce turns `value` into the model type of the collection. Models pass
// through untouched, raw field mappings are built with the collection's
// kind. Nil models and nil mappings are rejected. `position` is the
// argument position reported on error.
func (c *Collection[M]) coerce(position int, value any) (M, error) {
	var zero M

	switch v := value.(type) {
	case M:
		if isNil(v) {
			break
		}
		return v, nil
	case map[string]any:
		if v == nil {
			break
		}
		if c.kind.New == nil {
			return zero, errors.New("collection has no model kind")
		}
		m, err := c.kind.New(v)
		if err != nil {
			return zero, errors.Wrapf(err, "build %s", c.kind.Name)
		}
		c.logger.Debug().Str("kind", c.kind.Name).Int("fields", len(v)).Msg("coerced raw row")
		return m, nil
	}

	return zero, &ArgumentError{
		Position: position,
		Accepted: []string{"map[string]any", c.kind.Name},
		Got:      value,
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
