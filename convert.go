package sheeter

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Dims is the size of a built grid. Rows includes the header row.
type Dims struct {
	Rows int
	Cols int
}

// Option configures a [Converter].
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives eligibility failures and
// per-cell extraction errors. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Converter projects records of type T onto sheets using a fixed schema.
// A Converter holds no per-export state and may be reused.
type Converter[T any] struct {
	schema *Schema[T]
	record reflect.Type
	logger *slog.Logger
}

// NewConverter returns a Converter for schema.
func NewConverter[T any](schema *Schema[T], opts ...Option) *Converter[T] {
	o := newOptions(opts)
	return &Converter[T]{
		schema: schema,
		record: reflect.TypeFor[T](),
		logger: o.logger,
	}
}

// Convert builds the schema of T from its struct tags (see [SchemaOf]) and
// converts records into a new sheet of sink.
//
// The record type is checked before its tags are read, so an ineligible
// type always reports [ErrIneligibleType].
func Convert[T any](sink Sink, name string, records []T, opts ...Option) (Sheet, error) {
	o := newOptions(opts)
	if err := checkRecord(o.logger, reflect.TypeFor[T]()); err != nil {
		return nil, err
	}
	schema, err := SchemaOf[T]()
	if err != nil {
		o.logger.Error("record schema invalid",
			slog.String("record", fmt.Sprint(reflect.TypeFor[T]())),
			slog.Any("error", err),
		)
		return nil, err
	}
	return NewConverter(schema, opts...).Convert(sink, name, records)
}

// Convert checks the record type, creates a sheet named name in sink,
// writes the header row and one row per record in order, then auto-sizes
// every column and sets the filter range over the whole grid.
//
// An ineligible record type fails before the sink is touched. Extraction
// failures of single cells are logged and leave the cell unset.
func (c *Converter[T]) Convert(sink Sink, name string, records []T) (Sheet, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	sheet, err := sink.CreateSheet(name)
	if err != nil {
		return nil, fmt.Errorf("%w: create sheet %q: %w", ErrSink, name, err)
	}
	dims, err := c.build(sheet, records)
	if err != nil {
		return nil, err
	}
	for col := range dims.Cols {
		if err := sheet.AutoSizeColumn(col); err != nil {
			return nil, fmt.Errorf("%w: auto-size column %d: %w", ErrSink, col, err)
		}
	}
	if err := sheet.SetFilterRange(0, dims.Rows, 0, dims.Cols); err != nil {
		return nil, fmt.Errorf("%w: filter range: %w", ErrSink, err)
	}
	return sheet, nil
}

// Build checks the record type and writes the header row and data rows into
// sheet, without sizing or filtering. It reports the grid dimensions.
func (c *Converter[T]) Build(sheet Sheet, records []T) (Dims, error) {
	if err := c.check(); err != nil {
		return Dims{}, err
	}
	return c.build(sheet, records)
}

// Grid converts records into a fresh in-memory sheet.
func (c *Converter[T]) Grid(name string, records []T) (*Grid, error) {
	sheet, err := c.Convert(NewMemory(), name, records)
	if err != nil {
		return nil, err
	}
	return sheet.(*Grid), nil
}

func (c *Converter[T]) check() error {
	return checkRecord(c.logger, c.record)
}

func checkRecord(logger *slog.Logger, record reflect.Type) error {
	err := CheckType(record)
	if err != nil {
		logger.Error("record type not eligible for export",
			slog.String("record", fmt.Sprint(record)),
			slog.Any("error", err),
		)
	}
	return err
}

func (c *Converter[T]) build(sheet Sheet, records []T) (Dims, error) {
	cols := c.schema.cols
	header, err := sheet.CreateRow(0)
	if err != nil {
		return Dims{}, fmt.Errorf("%w: create header row: %w", ErrSink, err)
	}
	for _, col := range cols {
		if err := header.SetCell(col.Index, TextCell(col.Header)); err != nil {
			return Dims{}, fmt.Errorf("%w: header %q: %w", ErrSink, col.Header, err)
		}
	}
	for i, rec := range records {
		row, err := sheet.CreateRow(i + 1)
		if err != nil {
			return Dims{}, fmt.Errorf("%w: create row %d: %w", ErrSink, i+1, err)
		}
		for _, col := range cols {
			if err := c.project(row, i+1, rec, col); err != nil {
				return Dims{}, err
			}
		}
	}
	return Dims{Rows: len(records) + 1, Cols: len(cols)}, nil
}

// project writes the value of one column for one record. Only sink errors
// are returned; extraction failures are logged and skipped.
func (c *Converter[T]) project(row Row, rowIndex int, rec T, col Column[T]) error {
	cell, err := extract(rec, col)
	if err != nil {
		c.logger.Error("column value extraction failed",
			slog.Int("row", rowIndex),
			slog.Int("column", col.Index),
			slog.String("header", col.Header),
			slog.Any("error", err),
		)
		return nil
	}
	if cell.IsEmpty() {
		return nil
	}
	if err := row.SetCell(col.Index, cell); err != nil {
		return fmt.Errorf("%w: set cell row %d column %d: %w", ErrSink, rowIndex, col.Index, err)
	}
	return nil
}

func extract[T any](rec T, col Column[T]) (cell Cell, err error) {
	defer func() {
		if r := recover(); r != nil {
			cell, err = Cell{}, fmt.Errorf("%w: panic: %v", ErrExtract, r)
		}
	}()
	cell, err = col.value(rec)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %w", ErrExtract, err)
	}
	return cell, nil
}
