package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fulldump/records/collection"
	"github.com/fulldump/records/configuration"
	"github.com/fulldump/records/model"
)

var VERSION = "dev"

// Run reads a JSON array of records from `in`, applies the operations
// configured in `c` (filter, cut, copy, set, call, pluck, in this order)
// and writes the resulting JSON to `out`.
func Run(c configuration.Configuration, logger zerolog.Logger, in io.Reader, out io.Writer) error {

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	records, err := collection.New(model.DocumentKind, nil, collection.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := records.Unserialize(string(data)); err != nil {
		return errors.Wrap(err, "load records")
	}
	logger.Debug().Int("records", records.Count()).Msg("records loaded")

	if c.Filter != "" {
		conds := map[string]any{}
		if err := json.Unmarshal([]byte(c.Filter), &conds); err != nil {
			return errors.Wrap(err, "parse filter")
		}
		records, err = records.Filter(conds)
		if err != nil {
			return errors.Wrap(err, "filter")
		}
		logger.Debug().Int("records", records.Count()).Msg("records filtered")
	}

	if c.Cut != "" {
		index, err := collection.ParseIndex(c.Cut)
		if err != nil {
			return errors.Wrap(err, "cut")
		}
		if err := records.Cut(index); err != nil {
			return errors.Wrap(err, "cut")
		}
	}

	if c.Copy != "" {
		source, destination, ok := strings.Cut(c.Copy, ":")
		if !ok {
			return errors.Errorf("copy '%s': expected source:destination", c.Copy)
		}
		if err := records.Copy(source, destination); err != nil {
			return errors.Wrap(err, "copy")
		}
	}

	if c.Set != "" {
		field, raw, ok := strings.Cut(c.Set, "=")
		if !ok {
			return errors.Errorf("set '%s': expected field=value", c.Set)
		}
		if err := records.SetField(field, parseValue(raw)); err != nil {
			return errors.Wrap(err, "set")
		}
	}

	var result any = records

	if c.Call != "" {
		value, err := call(records, c.Call, c.Separator)
		if err != nil {
			return errors.Wrap(err, "call")
		}
		if value != any(records) {
			result = value
		}
	}

	if c.Pluck != "" {
		result = records.Field(c.Pluck)
	}

	opts := []json.Options{json.Deterministic(true)}
	if c.Pretty {
		opts = append(opts, jsontext.WithIndent("    "))
	}
	if err := json.MarshalWrite(out, result, opts...); err != nil {
		return errors.Wrap(err, "write output")
	}
	fmt.Fprintln(out)

	return nil
}

// call runs `expr` (name or name=value) through the collection dispatcher.
// Bulk accessors also receive the separator.
func call(records *collection.Collection[*model.Document], expr, separator string) (any, error) {
	name, raw, hasValue := strings.Cut(expr, "=")

	args := []any{}
	if hasValue {
		args = append(args, parseValue(raw))
	}
	if len(name) > 3 && (strings.HasPrefix(name, "get") || strings.HasPrefix(name, "set")) {
		args = append(args, separator)
	}

	return records.Call(name, args...)
}

// parseValue decodes `raw` as JSON, falling back to the plain string.
func parseValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}
