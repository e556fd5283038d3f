package collection

import (
	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
)

// MarshalJSON encodes the collection as an array with the current field
// snapshot of every entry.
func (c *Collection[M]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Get(true), json.Deterministic(true))
}

// UnmarshalJSON replaces the entries with the rows encoded in `data`, which
// must be an array. Every row is coerced into the collection's model kind,
// so a row that is not an object is an *ArgumentError at its 1-based
// position. On error the entries are left untouched.
func (c *Collection[M]) UnmarshalJSON(data []byte) error {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.Wrap(err, "json decode rows")
	}

	rows, ok := decoded.([]any)
	if !ok {
		return &ArgumentError{Position: 1, Accepted: []string{"array of objects"}, Got: decoded}
	}

	entries := make([]M, 0, len(rows))
	for i, row := range rows {
		m, err := c.coerce(i+1, row)
		if err != nil {
			return err
		}
		entries = append(entries, m)
	}

	c.entries = entries
	c.cursor = 0
	return nil
}

func (c *Collection[M]) Serialize() (string, error) {
	b, err := c.MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "json encode rows")
	}
	return string(b), nil
}

func (c *Collection[M]) Unserialize(data string) error {
	return c.UnmarshalJSON([]byte(data))
}

// String renders the collection as text, see Serialize.
func (c *Collection[M]) String() string {
	s, err := c.Serialize()
	if err != nil {
		c.logger.Error().Err(err).Msg("render collection")
		return ""
	}
	return s
}
