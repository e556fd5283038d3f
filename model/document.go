package model

import (
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const DefaultSeparator = "_"

// Document is a schemaless model that keeps its fields as raw JSON. Field
// names are literal top level keys; Path and SetPath take gjson/sjson paths.
type Document struct {
	data     []byte
	original []byte
}

var DocumentKind = Kind[*Document]{
	Name: "*model.Document",
	New:  NewDocument,
}

func NewDocument(fields map[string]any) (*Document, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := json.Marshal(fields, json.Deterministic(true))
	if err != nil {
		return nil, errors.Wrap(err, "json encode fields")
	}
	return &Document{
		data:     data,
		original: append([]byte{}, data...),
	}, nil
}

func (d *Document) Get(modified bool) map[string]any {
	data := d.original
	if modified {
		data = d.data
	}

	fields := map[string]any{}
	json.Unmarshal(data, &fields) // data is always produced by json.Marshal or sjson
	return fields
}

// Field reads the top level field `name`. The name is taken literally, so
// keys like "a.b" are reachable; use Path for nested values.
func (d *Document) Field(name string) any {
	return d.Path(escapePath(name))
}

func (d *Document) SetField(name string, value any) error {
	if name == "" {
		return errors.Wrap(ErrInvalidField, "empty field name")
	}
	return d.SetPath(escapePath(name), value)
}

// Path reads a gjson path, "address.city" reaches nested values.
func (d *Document) Path(path string) any {
	r := gjson.GetBytes(d.data, path)
	if !r.Exists() {
		return nil
	}
	return r.Value()
}

// SetPath writes a sjson path, creating intermediate objects.
func (d *Document) SetPath(path string, value any) error {
	data, err := sjson.SetBytes(d.data, path, value)
	if err != nil {
		return errors.Wrapf(ErrInvalidField, "set '%s': %s", path, err.Error())
	}
	d.data = data
	return nil
}

// Copy is a no-op when `source` does not exist.
func (d *Document) Copy(source, destination string) error {
	r := gjson.GetBytes(d.data, escapePath(source))
	if !r.Exists() {
		return nil
	}
	if destination == "" {
		return errors.Wrap(ErrInvalidField, "empty field name")
	}
	data, err := sjson.SetRawBytes(d.data, escapePath(destination), []byte(r.Raw))
	if err != nil {
		return errors.Wrapf(ErrInvalidField, "copy '%s' to '%s': %s", source, destination, err.Error())
	}
	d.data = data
	return nil
}

// escapePath turns a literal key into a gjson/sjson path of one component.
func escapePath(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(pathSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

const pathSpecials = `\.*?|#@!=<>%:`

// Accessor resolves CamelCase accessor names to stored field names. The
// optional argument is the separator used to split the name, "_" by
// default: UserName is read from "user_name", or from "user-name" with "-".
func (d *Document) Accessor(name string) (Accessor, bool) {
	if name == "" {
		return Accessor{}, false
	}

	return Accessor{
		Get: func(arg any) (any, error) {
			field, err := fieldName(name, arg)
			if err != nil {
				return nil, err
			}
			return d.Field(field), nil
		},
		Set: func(value, arg any) error {
			field, err := fieldName(name, arg)
			if err != nil {
				return err
			}
			return d.SetField(field, value)
		},
	}, true
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.data, nil
}

func fieldName(name string, arg any) (string, error) {
	separator := DefaultSeparator
	switch s := arg.(type) {
	case nil:
	case string:
		if s != "" {
			separator = s
		}
	default:
		return "", errors.Wrapf(ErrInvalidField, "separator must be a string, got %T", arg)
	}

	if len(separator) != 1 {
		return "", errors.Wrapf(ErrInvalidField, "separator '%s' must be a single character", separator)
	}

	return strcase.ToDelimited(name, separator[0]), nil
}
