package sheeter

import (
	"cmp"
	"fmt"
	"slices"
)

// ColumnDescriptor is the static metadata of one column: its zero-based
// position and its header text.
type ColumnDescriptor struct {
	Index  int
	Header string
}

// Column binds a [ColumnDescriptor] to the function that extracts the
// column's value from a record.
type Column[T any] struct {
	ColumnDescriptor
	value func(T) (Cell, error)
}

// Col returns a column at index with the given header whose value is
// produced by fn.
func Col[T any](index int, header string, fn func(T) Cell) Column[T] {
	c := Column[T]{ColumnDescriptor: ColumnDescriptor{Index: index, Header: header}}
	if fn != nil {
		c.value = func(v T) (Cell, error) { return fn(v), nil }
	}
	return c
}

// ColE is like [Col] for extractors that can fail. A non-nil error leaves
// the cell unset and is logged; it does not abort the export.
func ColE[T any](index int, header string, fn func(T) (Cell, error)) Column[T] {
	return Column[T]{
		ColumnDescriptor: ColumnDescriptor{Index: index, Header: header},
		value:            fn,
	}
}

// Schema is the ordered, validated column set of record type T. A Schema is
// immutable and safe to share between goroutines and exports.
type Schema[T any] struct {
	cols []Column[T]
}

// NewSchema validates cols and returns them as a Schema ordered by index.
// Every column needs a non-empty header and indices must form the gap-free
// range [0, len(cols)).
func NewSchema[T any](cols ...Column[T]) (*Schema[T], error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidSchema)
	}
	sorted := slices.Clone(cols)
	slices.SortStableFunc(sorted, func(a, b Column[T]) int { return cmp.Compare(a.Index, b.Index) })
	for i, c := range sorted {
		if c.value == nil {
			return nil, fmt.Errorf("%w: column %d has no extractor", ErrInvalidSchema, c.Index)
		}
		if c.Header == "" {
			return nil, fmt.Errorf("%w: column %d has no header", ErrInvalidSchema, c.Index)
		}
		if c.Index < 0 {
			return nil, fmt.Errorf("%w: column %q has negative index %d", ErrInvalidSchema, c.Header, c.Index)
		}
		if i > 0 && sorted[i-1].Index == c.Index {
			return nil, fmt.Errorf("%w: columns %q and %q share index %d", ErrInvalidSchema, sorted[i-1].Header, c.Header, c.Index)
		}
		if c.Index != i {
			return nil, fmt.Errorf("%w: column index %d missing", ErrInvalidSchema, i)
		}
	}
	return &Schema[T]{cols: sorted}, nil
}

// MustSchema is like [NewSchema] but panics on error. It is meant for
// package-level schema variables.
func MustSchema[T any](cols ...Column[T]) *Schema[T] {
	s, err := NewSchema(cols...)
	if err != nil {
		panic(err)
	}
	return s
}

// Columns returns the column descriptors in ascending index order.
func (s *Schema[T]) Columns() []ColumnDescriptor {
	out := make([]ColumnDescriptor, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.ColumnDescriptor
	}
	return out
}

// Len returns the number of columns.
func (s *Schema[T]) Len() int { return len(s.cols) }
