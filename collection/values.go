package collection

import (
	"iter"

	"github.com/go-json-experiment/json"
)

// Values is the ordered result of reading one field from every entry.
type Values struct {
	items []any
}

func newValues(n int) *Values {
	return &Values{
		items: make([]any, 0, n),
	}
}

func (v *Values) add(item any) {
	v.items = append(v.items, item)
}

func (v *Values) Count() int {
	return len(v.items)
}

func (v *Values) At(i int) (any, bool) {
	if i < 0 || i >= len(v.items) {
		return nil, false
	}
	return v.items[i], true
}

// Slice returns a copy of the values.
func (v *Values) Slice() []any {
	return append([]any{}, v.items...)
}

func (v *Values) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (v *Values) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.items, json.Deterministic(true))
}

func (v *Values) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}
