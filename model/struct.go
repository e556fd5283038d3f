package model

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"

	"github.com/fulldump/records/utils"
)

// Struct is a typed model over a Go struct T. Fields are stored under
// their json tag name (or Go name when untagged) and exposed as accessors
// by their Go name.
type Struct[T any] struct {
	value    T
	original T
	fields   *structFields
	registry Registry
}

// StructKind returns the Kind building Struct[T] models from raw fields.
func StructKind[T any]() Kind[*Struct[T]] {
	var zero T
	return Kind[*Struct[T]]{
		Name: fmt.Sprintf("*model.Struct[%T]", zero),
		New:  NewStruct[T],
	}
}

func NewStruct[T any](fields map[string]any) (*Struct[T], error) {
	s := &Struct[T]{}

	sf, err := lookupStructFields(reflect.TypeOf(s.value))
	if err != nil {
		return nil, err
	}
	s.fields = sf
	s.registry = s.newRegistry()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &s.value,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new decoder")
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, errors.Wrapf(ErrInvalidField, "decode fields: %s", err.Error())
	}

	s.original = deepcopy.Copy(s.value).(T)

	return s, nil
}

// Value returns the underlying struct.
func (s *Struct[T]) Value() T {
	return s.value
}

func (s *Struct[T]) Get(modified bool) map[string]any {
	value := s.original
	if modified {
		value = s.value
	}

	result := map[string]any{}
	utils.Remarshal(value, &result) // plain structs always marshal
	return result
}

func (s *Struct[T]) Field(name string) any {
	f, ok := s.fields.byStored[name]
	if !ok {
		return nil
	}
	return s.field(f).Interface()
}

func (s *Struct[T]) SetField(name string, value any) error {
	f, ok := s.fields.byStored[name]
	if !ok {
		return errors.Wrapf(ErrInvalidField, "'%s' does not exist", name)
	}
	return s.set(f, value)
}

// Copy is a no-op when `source` does not exist. An unknown `destination`
// is an error.
func (s *Struct[T]) Copy(source, destination string) error {
	f, ok := s.fields.byStored[source]
	if !ok {
		return nil
	}
	return s.SetField(destination, s.field(f).Interface())
}

// Accessor ignores its optional argument, struct fields have a single
// name.
func (s *Struct[T]) Accessor(name string) (Accessor, bool) {
	return s.registry.Lookup(name)
}

// Registry lists every accessor of this model.
func (s *Struct[T]) Registry() Registry {
	return s.registry
}

// newRegistry binds one accessor per exported field to this instance.
func (s *Struct[T]) newRegistry() Registry {
	r := NewRegistry()
	for name, f := range s.fields.byName {
		r.Register(name,
			func(arg any) (any, error) {
				return s.field(f).Interface(), nil
			},
			func(value, arg any) error {
				return s.set(f, value)
			},
		)
	}
	return r
}

func (s *Struct[T]) field(f structField) reflect.Value {
	return reflect.ValueOf(&s.value).Elem().FieldByIndex(f.index)
}

func (s *Struct[T]) set(f structField, value any) error {
	target := s.field(f)
	decoded := reflect.New(target.Type())
	if err := mapstructure.WeakDecode(value, decoded.Interface()); err != nil {
		return errors.Wrapf(ErrInvalidField, "set '%s': %s", f.stored, err.Error())
	}
	target.Set(decoded.Elem())
	return nil
}

type structField struct {
	name   string // Go name, used by accessors
	stored string // json name, used by Field/SetField and snapshots
	index  []int
}

type structFields struct {
	byName   map[string]structField
	byStored map[string]structField
}

var structFieldsCache sync.Map // reflect.Type -> *structFields

func lookupStructFields(t reflect.Type) (*structFields, error) {
	if cached, ok := structFieldsCache.Load(t); ok {
		return cached.(*structFields), nil
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, errors.Errorf("struct model requires a struct type, got %v", t)
	}

	sf := &structFields{
		byName:   map[string]structField{},
		byStored: map[string]structField{},
	}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		stored := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				stored = tagName
			}
		}
		field := structField{
			name:   f.Name,
			stored: stored,
			index:  f.Index,
		}
		sf.byName[field.name] = field
		sf.byStored[field.stored] = field
	}

	actual, _ := structFieldsCache.LoadOrStore(t, sf)
	return actual.(*structFields), nil
}
