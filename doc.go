// Package sheeter converts a slice of typed records into a spreadsheet-like
// grid: a header row followed by one row per record.
//
// The package owns the projection only. Encoding, column sizing and filter
// ranges belong to a [Sink]. Package xlsx provides a sink that writes Excel
// workbooks, and [Memory] keeps grids in memory.
//
// # Columns
//
// A record type declares its columns once, either with struct tags read by
// [SchemaOf]:
//
//	type Person struct {
//		Name string `sheet:"0,Name"`
//		Age  int64  `sheet:"1,Age"`
//	}
//
// or explicitly with [NewSchema]:
//
//	schema, err := sheeter.NewSchema(
//		sheeter.Col(0, "Name", func(p Person) sheeter.Cell { return sheeter.TextCell(p.Name) }),
//		sheeter.Col(1, "Age", func(p Person) sheeter.Cell { return sheeter.Int64Cell(p.Age) }),
//	)
//
// Column indices must cover [0, n) without gaps or duplicates and every
// column needs a header. Violations fail with [ErrInvalidSchema] when the
// schema is built.
//
// # Eligibility
//
// Before any row is written the record type is checked with [Check]. Every
// field, including fields of embedded structs, must be string, int64,
// float64, [Date], time.Time, a pointer to one of those, or implement
// [Enum]. Anything else fails the export with an [*IneligibleTypeError]
// and the sink is never touched.
//
// # Cells
//
// A [Cell] is a closed union of text, int64, int32, float64, date, enum and
// empty. [ValueOf] maps a Go value to a Cell by its runtime kind; unknown
// kinds and nil values become empty cells. Empty cells are never written.
// Dates are written as ISO-8601 text and enums as their symbolic name.
//
// # Errors
//
// Schema problems fail fast. A column extractor that returns an error or
// panics only loses its own cell: the failure is logged at error level
// through the logger given with [WithLogger] and the export goes on.
//
//   - [ErrIneligibleType] — a record field has an unsupported type
//   - [ErrInvalidSchema] — bad column indices, headers or tags
//   - [ErrExtract] — wraps per-cell extraction failures in log records
//   - [ErrSink] — the sink rejected a write
//   - [ErrUnsupportedFormat] — unknown text format
//
// # Text output
//
// A [Grid] can be rendered as CSV, TSV, Table, Markdown, HTML, JSON or YAML
// with [Write] and [Marshal]:
//
//	grid, err := sheeter.NewConverter(schema).Grid("People", people)
//	sheeter.Write(os.Stdout, sheeter.Table, grid)
package sheeter
