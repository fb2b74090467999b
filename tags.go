package sheeter

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagKey is the struct tag read by [SchemaOf].
const TagKey = "sheet"

var errNilRecord = errors.New("nil record")

// SchemaOf builds the schema of struct type T (or pointer to struct) from
// field tags of the form
//
//	Name string `sheet:"0,Name"`
//
// The part before the first comma is the column index and the rest is the
// header. Only fields declared directly on T are considered; fields promoted
// from embedded structs, untagged fields and fields tagged "-" are not
// columns. Values are converted with [ValueOf].
func SchemaOf[T any]() (*Schema[T], error) {
	t := reflect.TypeFor[T]()
	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrInvalidSchema, t)
	}

	var cols []Column[T]
	for i := range st.NumField() {
		f := st.Field(i)
		tag, ok := f.Tag.Lookup(TagKey)
		if !ok || tag == "-" {
			continue
		}
		index, header, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %w", ErrInvalidSchema, f.Name, err)
		}
		if !f.IsExported() {
			return nil, fmt.Errorf("%w: field %s is unexported", ErrInvalidSchema, f.Name)
		}
		cols = append(cols, ColE(index, header, fieldValue[T](i)))
	}
	return NewSchema(cols...)
}

func parseTag(tag string) (int, string, error) {
	idx, header, ok := strings.Cut(tag, ",")
	if !ok {
		return 0, "", fmt.Errorf("tag %q has no header", tag)
	}
	index, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return 0, "", fmt.Errorf("tag %q: bad index: %w", tag, err)
	}
	return index, header, nil
}

func fieldValue[T any](field int) func(T) (Cell, error) {
	return func(rec T) (Cell, error) {
		rv := reflect.ValueOf(&rec).Elem()
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return Cell{}, errNilRecord
			}
			rv = rv.Elem()
		}
		return ValueOf(rv.Field(field).Interface()), nil
	}
}
