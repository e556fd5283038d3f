package utils

import (
	"github.com/go-json-experiment/json"
)

// Remarshal converts `input` into `output` through its JSON form.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input, json.Deterministic(true))
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}
