package sheeter

import (
	"fmt"
	"reflect"
	"time"
)

var (
	enumType = reflect.TypeFor[Enum]()

	allowedTypes = map[reflect.Type]bool{
		reflect.TypeFor[string]():    true,
		reflect.TypeFor[int64]():     true,
		reflect.TypeFor[float64]():   true,
		reflect.TypeFor[Date]():      true,
		reflect.TypeFor[time.Time](): true,
	}
)

// IneligibleTypeError reports a record field whose declared type is outside
// the supported set. Field is empty when the record type itself is not a
// struct.
type IneligibleTypeError struct {
	Record reflect.Type
	Field  string
	Type   reflect.Type
}

func (e *IneligibleTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v is not a struct", ErrIneligibleType, e.Record)
	}
	return fmt.Sprintf("%s: field %s.%s has type %v", ErrIneligibleType, e.Record, e.Field, e.Type)
}

func (e *IneligibleTypeError) Unwrap() error { return ErrIneligibleType }

// Check reports whether every field of T, including fields of embedded
// structs, is of a supported type. See [CheckType].
func Check[T any]() error {
	return CheckType(reflect.TypeFor[T]())
}

// CheckType reports whether every field of the struct type t is of a
// supported type: string, int64, float64, [Date], time.Time, a pointer to
// one of those, or a type implementing [Enum]. Embedded structs are walked
// and their fields checked in place of the embedded field itself. A pointer
// to a struct is checked as the struct. An embedded struct already being
// walked is skipped, so self-referencing embeds terminate.
func CheckType(t reflect.Type) error {
	st := t
	if st != nil && st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st == nil || st.Kind() != reflect.Struct {
		return &IneligibleTypeError{Record: t, Type: t}
	}
	return checkFields(st, st, map[reflect.Type]bool{})
}

func checkFields(record, st reflect.Type, seen map[reflect.Type]bool) error {
	seen[st] = true
	for i := range st.NumField() {
		f := st.Field(i)
		if f.Anonymous {
			if embedded := structOf(f.Type); embedded != nil {
				if seen[embedded] {
					continue
				}
				if err := checkFields(record, embedded, seen); err != nil {
					return err
				}
				continue
			}
		}
		if !eligible(f.Type) {
			return &IneligibleTypeError{Record: record, Field: f.Name, Type: f.Type}
		}
	}
	return nil
}

func structOf(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || allowedTypes[t] {
		return nil
	}
	return t
}

func eligible(t reflect.Type) bool {
	if allowedTypes[t] || isEnum(t) {
		return true
	}
	if t.Kind() == reflect.Pointer {
		return allowedTypes[t.Elem()] || isEnum(t.Elem())
	}
	return false
}

func isEnum(t reflect.Type) bool {
	if t.Implements(enumType) {
		return true
	}
	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(enumType)
}
