package model

import (
	"github.com/fulldump/records/utils"
)

// Registry maps accessor names to getter/setter pairs.
type Registry map[string]Accessor

func NewRegistry() Registry {
	return Registry{}
}

// Register adds or replaces the accessor `name`. A nil setter makes the
// field read only.
func (r Registry) Register(name string, get func(arg any) (any, error), set func(value, arg any) error) Registry {
	if set == nil {
		set = func(value, arg any) error {
			return ErrReadOnly(name)
		}
	}
	r[name] = Accessor{Get: get, Set: set}
	return r
}

func (r Registry) Lookup(name string) (Accessor, bool) {
	a, ok := r[name]
	return a, ok
}

// Names returns the registered accessor names sorted.
func (r Registry) Names() []string {
	return utils.GetKeys(r)
}
