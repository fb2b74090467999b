package sheeter

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Kind identifies the payload carried by a [Cell].
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindInt64
	KindInt32
	KindFloat
	KindDate
	KindEnum
)

var kindNames = [...]string{
	KindEmpty: "empty",
	KindText:  "text",
	KindInt64: "int64",
	KindInt32: "int32",
	KindFloat: "float",
	KindDate:  "date",
	KindEnum:  "enum",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Numeric reports whether cells of this kind are written as numbers.
func (k Kind) Numeric() bool {
	return k == KindInt64 || k == KindInt32 || k == KindFloat
}

// Enum is implemented by enumerated types. EnumName returns the symbolic
// name of the enumerant, which is what gets written to the cell.
type Enum interface {
	EnumName() string
}

// Cell is the value of one column for one record. The zero Cell is empty.
type Cell struct {
	kind Kind
	s    string
	i    int64
	f    float64
	d    Date
}

// EmptyCell returns a cell with no value.
func EmptyCell() Cell { return Cell{} }

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{kind: KindText, s: s} }

// Int64Cell returns a 64-bit integer cell.
func Int64Cell(v int64) Cell { return Cell{kind: KindInt64, i: v} }

// Int32Cell returns a 32-bit integer cell.
func Int32Cell(v int32) Cell { return Cell{kind: KindInt32, i: int64(v)} }

// FloatCell returns a floating point cell.
func FloatCell(v float64) Cell { return Cell{kind: KindFloat, f: v} }

// DateCell returns a calendar date cell. It does not check d for zero; use
// [ValueOf] to treat a zero date as absent.
func DateCell(d Date) Cell { return Cell{kind: KindDate, d: d} }

// EnumCell returns a cell holding the symbolic name of e.
func EnumCell(e Enum) Cell { return Cell{kind: KindEnum, s: e.EnumName()} }

// Kind returns the payload kind.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// Int returns the integer payload of an int64 or int32 cell, else 0.
func (c Cell) Int() int64 { return c.i }

// Float returns the payload of a float cell, else 0.
func (c Cell) Float() float64 { return c.f }

// Date returns the payload of a date cell, else the zero Date.
func (c Cell) Date() Date { return c.d }

// String returns the text form of the cell. Dates use ISO-8601 and enums
// their symbolic name. Empty cells return "".
func (c Cell) String() string {
	switch c.kind {
	case KindText, KindEnum:
		return c.s
	case KindInt64, KindInt32:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	case KindDate:
		return c.d.String()
	default:
		return ""
	}
}

// Value returns the payload as a Go value: string, int64, int32, float64,
// or nil for empty cells. Dates and enums come back as their text form.
func (c Cell) Value() any {
	switch c.kind {
	case KindText, KindEnum, KindDate:
		return c.String()
	case KindInt64:
		return c.i
	case KindInt32:
		return int32(c.i)
	case KindFloat:
		return c.f
	default:
		return nil
	}
}

// ValueOf converts v into a Cell by its runtime kind. The precedence is
// text, int64, int32, float64, date, enum. A nil value, a nil pointer, a
// zero time.Time, a zero [Date] or a kind outside that set yields an empty
// cell. A type whose EnumName has a pointer receiver counts as an enum.
func ValueOf(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Cell{}
	case Cell:
		return x
	case string:
		return TextCell(x)
	case int64:
		return Int64Cell(x)
	case int32:
		return Int32Cell(x)
	case float64:
		return FloatCell(x)
	case Date:
		if x.IsZero() {
			return Cell{}
		}
		return DateCell(x)
	case time.Time:
		if x.IsZero() {
			return Cell{}
		}
		return DateCell(DateOf(x))
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Cell{}
	}
	if e, ok := v.(Enum); ok {
		return EnumCell(e)
	}
	if rv.Kind() == reflect.Pointer {
		return ValueOf(rv.Elem().Interface())
	}
	if reflect.PointerTo(rv.Type()).Implements(enumType) {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		return EnumCell(p.Interface().(Enum))
	}
	return Cell{}
}

// Date is a calendar date without time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO-8601 date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// String returns the date in ISO-8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero Date, which is not a calendar date.
func (d Date) IsZero() bool { return d == Date{} }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
