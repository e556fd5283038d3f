package collection

import (
	"strconv"
	"strings"
)

// Index is a position in a collection: a non-negative integer or one of
// the symbolic positions First and Last.
type Index int

const (
	Last  Index = -1
	First Index = -2
)

var acceptedIndex = []string{"int >= 0", "First", "Last"}

// ParseIndex reads "first", "last" (any case) or a non-negative integer.
func ParseIndex(s string) (Index, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return First, nil
	case "last":
		return Last, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, &ArgumentError{Position: 1, Accepted: acceptedIndex, Got: s}
	}
	return Index(n), nil
}

func (i Index) String() string {
	switch i {
	case First:
		return "first"
	case Last:
		return "last"
	}
	return strconv.Itoa(int(i))
}

// resolve turns symbolic positions into concrete ones for a collection of
// `length` entries. Last on an empty collection resolves to -1.
func (i Index) resolve(length int) int {
	switch i {
	case First:
		return 0
	case Last:
		return length - 1
	}
	return int(i)
}

func (i Index) valid() bool {
	return i >= 0 || i == First || i == Last
}

func toIndex(position int, v any) (Index, error) {
	switch x := v.(type) {
	case Index:
		if x.valid() {
			return x, nil
		}
	case int:
		if x >= 0 {
			return Index(x), nil
		}
	case float64: // numbers decoded from JSON
		if x >= 0 && x == float64(int(x)) {
			return Index(x), nil
		}
	case string:
		index, err := ParseIndex(x)
		if err != nil {
			return 0, &ArgumentError{Position: position, Accepted: acceptedIndex, Got: v}
		}
		return index, nil
	}
	return 0, &ArgumentError{Position: position, Accepted: acceptedIndex, Got: v}
}
