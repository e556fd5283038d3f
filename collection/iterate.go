package collection

import (
	"iter"
)

// Rewind moves the cursor to the first entry.
func (c *Collection[M]) Rewind() {
	c.cursor = 0
}

// Valid reports whether the cursor addresses an existing entry.
func (c *Collection[M]) Valid() bool {
	return c.Exists(c.cursor)
}

// Current returns the entry at the cursor, the zero value when not Valid.
func (c *Collection[M]) Current() M {
	m, _ := c.At(c.cursor)
	return m
}

// Key returns the cursor position, -1 when not Valid.
func (c *Collection[M]) Key() int {
	if !c.Valid() {
		return -1
	}
	return c.cursor
}

func (c *Collection[M]) Next() {
	c.cursor++
}

// All iterates the entries without touching the cursor.
func (c *Collection[M]) All() iter.Seq2[int, M] {
	return func(yield func(int, M) bool) {
		for i := 0; i < len(c.entries); i++ {
			if !yield(i, c.entries[i]) {
				return
			}
		}
	}
}
