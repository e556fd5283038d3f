package collection

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fulldump/records/model"
)

// Collection is an ordered list of models of the same kind. Positions are
// always contiguous from 0. It is not safe for concurrent use.
type Collection[M model.Model] struct {
	entries []M
	kind    model.Kind[M]
	cursor  int
	base    Delegate
	logger  zerolog.Logger
}

// New builds a collection of `kind` models. Every row is either a
// map[string]any or an M.
func New[M model.Model](kind model.Kind[M], rows []any, opts ...Option) (*Collection[M], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &Collection[M]{
		entries: make([]M, 0, len(rows)),
		kind:    kind,
		base:    o.base,
		logger:  o.logger,
	}

	for i, row := range rows {
		m, err := c.coerce(i+1, row)
		if err != nil {
			return nil, err
		}
		c.entries = append(c.entries, m)
	}

	return c, nil
}

// Kind returns the model kind the collection coerces to.
func (c *Collection[M]) Kind() model.Kind[M] {
	return c.kind
}

// Add appends a row.
func (c *Collection[M]) Add(row any) error {
	m, err := c.coerce(1, row)
	if err != nil {
		return err
	}
	c.entries = append(c.entries, m)
	return nil
}

// Cut removes the entry at `index` and reindexes. Removing a missing entry
// is a no-op.
func (c *Collection[M]) Cut(index Index) error {
	if !index.valid() {
		return &ArgumentError{Position: 1, Accepted: acceptedIndex, Got: index}
	}

	i := index.resolve(len(c.entries))
	if i < 0 || i >= len(c.entries) {
		c.logger.Debug().Stringer("index", index).Int("count", len(c.entries)).Msg("cut missing entry")
		return nil
	}

	copy(c.entries[i:], c.entries[i+1:])
	var zero M
	c.entries[len(c.entries)-1] = zero // release the reference
	c.entries = c.entries[:len(c.entries)-1]

	return nil
}

func (c *Collection[M]) Count() int {
	return len(c.entries)
}

// At returns the entry at position i.
func (c *Collection[M]) At(i int) (M, bool) {
	if !c.Exists(i) {
		var zero M
		return zero, false
	}
	return c.entries[i], true
}

// Set overwrites the entry at position i. Positions out of range append,
// so the collection never gets gaps.
func (c *Collection[M]) Set(i int, value any) error {
	m, err := c.coerce(2, value)
	if err != nil {
		return err
	}

	if c.Exists(i) {
		c.entries[i] = m
		return nil
	}

	c.entries = append(c.entries, m)
	return nil
}

func (c *Collection[M]) Exists(i int) bool {
	return i >= 0 && i < len(c.entries)
}

// Unset removes the entry at position i, like Cut.
func (c *Collection[M]) Unset(i int) {
	if i < 0 {
		return
	}
	_ = c.Cut(Index(i)) // only fails on negative indexes, filtered above
}

// Get returns the field snapshot of every entry.
func (c *Collection[M]) Get(modified bool) []map[string]any {
	result := make([]map[string]any, len(c.entries))
	for i, entry := range c.entries {
		result[i] = entry.Get(modified)
	}
	return result
}

// Copy copies field `source` into field `destination` on every entry.
func (c *Collection[M]) Copy(source, destination string) error {
	if source == "" {
		return &ArgumentError{Position: 1, Accepted: []string{"string"}, Got: source}
	}
	if destination == "" {
		return &ArgumentError{Position: 2, Accepted: []string{"string"}, Got: destination}
	}

	for i, entry := range c.entries {
		if err := entry.Copy(source, destination); err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
	}
	return nil
}
