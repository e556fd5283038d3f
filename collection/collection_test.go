package collection

import (
	"testing"

	. "github.com/fulldump/biff"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/fulldump/records/model"
)

func newDocuments(rows ...any) *Collection[*model.Document] {
	c, err := New(model.DocumentKind, rows)
	if err != nil {
		panic(err)
	}
	return c
}

func ids(c *Collection[*model.Document]) []any {
	values, err := c.BulkGet("Id", nil)
	if err != nil {
		panic(err)
	}
	return values.Slice()
}

func TestAddAndCut(t *testing.T) {

	c := newDocuments()
	AssertNil(c.Add(map[string]any{"id": 1}))
	AssertNil(c.Add(map[string]any{"id": 2}))
	AssertNil(c.Add(map[string]any{"id": 3}))
	AssertEqual(c.Count(), 3)

	AssertNil(c.Cut(First))

	AssertEqualJson(ids(c), []any{2, 3})
	AssertTrue(c.Exists(0))
	AssertTrue(c.Exists(1))
	AssertFalse(c.Exists(2))
}

func TestAdd_InvalidRow(t *testing.T) {

	c := newDocuments()

	err := c.Add("not a mapping and not a model")

	argumentError := &ArgumentError{}
	AssertTrue(errors.As(err, &argumentError))
	AssertEqual(argumentError.Position, 1)
	AssertEqual(argumentError.Accepted, []string{"map[string]any", "*model.Document"})
	AssertEqual(c.Count(), 0)
}

func TestAdd_NilRow(t *testing.T) {

	c := newDocuments(map[string]any{"id": 1})

	for _, row := range []any{nil, (*model.Document)(nil), map[string]any(nil)} {
		err := c.Add(row)
		argumentError := &ArgumentError{}
		AssertTrue(errors.As(err, &argumentError))
		AssertEqual(argumentError.Position, 1)
	}

	AssertEqual(c.Count(), 1)
	AssertEqual(c.String(), `[{"id":1}]`)
}

func TestAdd_Model(t *testing.T) {

	d, _ := model.NewDocument(map[string]any{"name": "Sara"})
	c := newDocuments()

	AssertNil(c.Add(d))

	entry, ok := c.At(0)
	AssertTrue(ok)
	AssertTrue(entry == d) // same reference, no copy
}

func TestAdd_CoercionIsTransparent(t *testing.T) {

	for i := 0; i < 20; i++ {
		row := map[string]any{
			"id":   uuid.New().String(),
			"n":    i,
			"tags": []any{"a", "b"},
		}

		coerced := newDocuments()
		coerced.Add(row)

		d, _ := model.NewDocument(row)
		direct := newDocuments()
		direct.Add(d)

		AssertEqual(coerced.Get(true), direct.Get(true))
	}
}

func TestNew_InvalidRow(t *testing.T) {

	c, err := New(model.DocumentKind, []any{map[string]any{}, 42})

	AssertNil(c)
	argumentError := &ArgumentError{}
	AssertTrue(errors.As(err, &argumentError))
	AssertEqual(argumentError.Position, 2)
}

func TestCut(t *testing.T) {

	Alternative("Cut", func(a *A) {

		c := newDocuments(
			map[string]any{"id": 1},
			map[string]any{"id": 2},
			map[string]any{"id": 3},
			map[string]any{"id": 4},
		)

		a.Alternative("First", func(a *A) {
			AssertNil(c.Cut(First))
			AssertEqualJson(ids(c), []any{2, 3, 4})
		})

		a.Alternative("Last", func(a *A) {
			AssertNil(c.Cut(Last))
			AssertEqualJson(ids(c), []any{1, 2, 3})
		})

		a.Alternative("Middle", func(a *A) {
			AssertNil(c.Cut(1))
			AssertEqualJson(ids(c), []any{1, 3, 4})

			entry, _ := c.At(1)
			AssertEqual(entry.Field("id"), float64(3))
		})

		a.Alternative("Missing index", func(a *A) {
			AssertNil(c.Cut(10))
			AssertEqual(c.Count(), 4)
		})

		a.Alternative("Negative index", func(a *A) {
			err := c.Cut(-7)
			argumentError := &ArgumentError{}
			AssertTrue(errors.As(err, &argumentError))
			AssertEqual(c.Count(), 4)
		})

		a.Alternative("Until empty", func(a *A) {
			for i := 0; i < 6; i++ {
				AssertNil(c.Cut(Last))
			}
			AssertEqual(c.Count(), 0)
			AssertEqual(c.String(), `[]`)
		})
	})
}

func TestCut_Empty(t *testing.T) {

	c := newDocuments()

	AssertNil(c.Cut(Last))
	AssertNil(c.Cut(First))
	AssertNil(c.Cut(0))
	AssertEqual(c.Count(), 0)
}

func TestCut_SingleEntry(t *testing.T) {

	c := newDocuments(map[string]any{"id": 1})

	AssertNil(c.Cut(0))

	AssertEqual(c.Count(), 0)
	AssertFalse(c.Exists(0))
	AssertEqual(c.Get(true), []map[string]any{})
}

func TestCut_KeepsOrder(t *testing.T) {

	c := newDocuments()
	expected := []any{}
	for i := 0; i < 10; i++ {
		c.Add(map[string]any{"id": i})
		expected = append(expected, i)
	}

	for _, index := range []Index{Last, 3, First, 0, 5, Last} {
		i := index.resolve(len(expected))
		c.Cut(index)
		if i >= 0 && i < len(expected) {
			expected = append(expected[:i], expected[i+1:]...)
		}

		AssertEqual(c.Count(), len(expected))
		AssertEqualJson(ids(c), expected)
		for n := 0; n < c.Count(); n++ {
			AssertTrue(c.Exists(n))
		}
	}
}

func TestPositional(t *testing.T) {

	Alternative("Positional access", func(a *A) {

		c := newDocuments(
			map[string]any{"id": 1},
			map[string]any{"id": 2},
		)

		a.Alternative("At", func(a *A) {
			entry, ok := c.At(1)
			AssertTrue(ok)
			AssertEqual(entry.Field("id"), float64(2))

			entry, ok = c.At(2)
			AssertFalse(ok)
			AssertNil(entry)
		})

		a.Alternative("Set existing", func(a *A) {
			AssertNil(c.Set(0, map[string]any{"id": 10}))
			AssertEqualJson(ids(c), []any{10, 2})
		})

		a.Alternative("Set out of range appends", func(a *A) {
			AssertNil(c.Set(7, map[string]any{"id": 3}))
			AssertNil(c.Set(-1, map[string]any{"id": 4}))
			AssertEqualJson(ids(c), []any{1, 2, 3, 4})
		})

		a.Alternative("Set invalid value", func(a *A) {
			err := c.Set(0, []string{"nope"})
			argumentError := &ArgumentError{}
			AssertTrue(errors.As(err, &argumentError))
			AssertEqual(argumentError.Position, 2)
			AssertEqualJson(ids(c), []any{1, 2})
		})

		a.Alternative("Unset", func(a *A) {
			c.Unset(0)
			AssertEqualJson(ids(c), []any{2})
			c.Unset(5)
			c.Unset(-1)
			AssertEqual(c.Count(), 1)
		})

		a.Alternative("Unset negative is not symbolic", func(a *A) {
			c.Unset(-1)
			c.Unset(-2)
			AssertEqualJson(ids(c), []any{1, 2})

			c.Unset(1)
			c.Unset(0)
			c.Unset(0)
			AssertEqual(c.Count(), 0)
		})

		a.Alternative("Set nil model", func(a *A) {
			err := c.Set(0, (*model.Document)(nil))
			argumentError := &ArgumentError{}
			AssertTrue(errors.As(err, &argumentError))
			AssertEqual(argumentError.Position, 2)
			AssertEqualJson(ids(c), []any{1, 2})
		})
	})
}

func TestGet(t *testing.T) {

	c := newDocuments(
		map[string]any{"status": "open"},
		map[string]any{"status": "open"},
	)
	c.SetField("status", "closed")

	AssertEqual(c.Get(true), []map[string]any{
		{"status": "closed"},
		{"status": "closed"},
	})
	AssertEqual(c.Get(false), []map[string]any{
		{"status": "open"},
		{"status": "open"},
	})
}

func TestCopy(t *testing.T) {

	c := newDocuments(
		map[string]any{"name": "Pablo"},
		map[string]any{"name": "Sara"},
	)

	AssertNil(c.Copy("name", "alias"))
	AssertEqual(c.Field("alias").Slice(), []any{"Pablo", "Sara"})

	argumentError := &ArgumentError{}
	AssertTrue(errors.As(c.Copy("", "alias"), &argumentError))
	AssertEqual(argumentError.Position, 1)
	AssertTrue(errors.As(c.Copy("name", ""), &argumentError))
	AssertEqual(argumentError.Position, 2)
}

func TestParseIndex(t *testing.T) {

	index, err := ParseIndex("first")
	AssertNil(err)
	AssertEqual(index, First)

	index, err = ParseIndex("LAST")
	AssertNil(err)
	AssertEqual(index, Last)

	index, err = ParseIndex(" 12 ")
	AssertNil(err)
	AssertEqual(index, Index(12))

	for _, s := range []string{"", "-3", "middle", "1.5"} {
		_, err = ParseIndex(s)
		argumentError := &ArgumentError{}
		AssertTrue(errors.As(err, &argumentError))
	}
}
