package collection

import (
	"github.com/SierraSoftworks/connor"
	"github.com/pkg/errors"
)

// Filter returns a new collection with the entries whose current snapshot
// matches `conds` (connor syntax, for example {"status": "open"} or
// {"age": {"$gt": 18}}). Entries are shared with the receiver, not copied.
func (c *Collection[M]) Filter(conds map[string]any) (*Collection[M], error) {
	result := &Collection[M]{
		entries: []M{},
		kind:    c.kind,
		base:    c.base,
		logger:  c.logger,
	}

	for i, entry := range c.entries {
		match, err := connor.Match(conds, entry.Get(true))
		if err != nil {
			return nil, errors.Wrapf(err, "match entry %d", i)
		}
		if match {
			result.entries = append(result.entries, entry)
		}
	}

	return result, nil
}
