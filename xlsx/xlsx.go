// Package xlsx is a [sheeter.Sink] that writes Office Open XML workbooks
// using excelize.
//
//	wb, err := xlsx.Convert(people, "People")
//	if err != nil { ... }
//	defer wb.Close()
//	err = wb.SaveAs("people.xlsx")
//
// Text, date and enum cells are stored as strings, integer cells as
// integers and float cells as numbers. AutoSizeColumn sets the column width
// to the widest display width written to that column plus padding.
package xlsx

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"github.com/bjaus/sheeter"
)

const (
	defaultSheet    = "Sheet1"
	defaultPadding  = 2
	defaultMaxWidth = 80
	// excelMaxWidth is the widest column Excel accepts.
	excelMaxWidth = 255
)

// Option configures a [Workbook].
type Option func(*Workbook)

// WithPadding sets the extra width added by AutoSizeColumn.
func WithPadding(p float64) Option {
	return func(wb *Workbook) {
		if p >= 0 {
			wb.padding = p
		}
	}
}

// WithLogger sets the logger passed to the converter by [Convert].
func WithLogger(l *slog.Logger) Option {
	return func(wb *Workbook) {
		wb.convert = append(wb.convert, sheeter.WithLogger(l))
	}
}

// WithMaxColumnWidth caps the width set by AutoSizeColumn.
func WithMaxColumnWidth(w float64) Option {
	return func(wb *Workbook) {
		if w > 0 {
			wb.maxWidth = min(w, excelMaxWidth)
		}
	}
}

// Workbook is an in-memory xlsx document. It must be closed when done.
type Workbook struct {
	file     *excelize.File
	sheets   []*Sheet
	padding  float64
	maxWidth float64
	convert  []sheeter.Option
}

var _ sheeter.Sink = (*Workbook)(nil)

// New returns an empty workbook.
func New(opts ...Option) *Workbook {
	wb := &Workbook{
		file:     excelize.NewFile(),
		padding:  defaultPadding,
		maxWidth: defaultMaxWidth,
	}
	for _, opt := range opts {
		opt(wb)
	}
	return wb
}

// Convert converts records into a new single-sheet workbook configured by
// opts, with columns taken from the struct tags of T.
func Convert[T any](records []T, name string, opts ...Option) (*Workbook, error) {
	wb := New(opts...)
	if _, err := sheeter.Convert(wb, name, records, wb.convert...); err != nil {
		_ = wb.Close()
		return nil, err
	}
	return wb, nil
}

// CreateSheet adds a worksheet. The first sheet created replaces the
// default sheet of a new workbook.
func (wb *Workbook) CreateSheet(name string) (sheeter.Sheet, error) {
	if idx, err := wb.file.GetSheetIndex(name); err == nil && idx >= 0 && len(wb.sheets) > 0 {
		return nil, fmt.Errorf("sheet %q already exists", name)
	}
	if len(wb.sheets) == 0 {
		if name != defaultSheet {
			if err := wb.file.SetSheetName(defaultSheet, name); err != nil {
				return nil, err
			}
		}
	} else if _, err := wb.file.NewSheet(name); err != nil {
		return nil, err
	}
	s := &Sheet{wb: wb, name: name, widths: map[int]int{}}
	wb.sheets = append(wb.sheets, s)
	return s, nil
}

// File returns the underlying excelize file.
func (wb *Workbook) File() *excelize.File { return wb.file }

// Write writes the workbook to w.
func (wb *Workbook) Write(w io.Writer) error { return wb.file.Write(w) }

// SaveAs writes the workbook to the file at path.
func (wb *Workbook) SaveAs(path string) error { return wb.file.SaveAs(path) }

// Close releases temporary files held by the workbook.
func (wb *Workbook) Close() error { return wb.file.Close() }

// Sheet is one worksheet of a [Workbook].
type Sheet struct {
	wb     *Workbook
	name   string
	widths map[int]int
	filter string
}

func (s *Sheet) Name() string { return s.name }

// CreateRow returns a handle to the zero-based row index.
func (s *Sheet) CreateRow(index int) (sheeter.Row, error) {
	if index < 0 {
		return nil, fmt.Errorf("negative row index %d", index)
	}
	return &row{sheet: s, index: index}, nil
}

// AutoSizeColumn sets the width of the zero-based column col.
func (s *Sheet) AutoSizeColumn(col int) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}
	width := min(float64(s.widths[col])+s.wb.padding, s.wb.maxWidth)
	return s.wb.file.SetColWidth(s.name, name, name, width)
}

// SetFilterRange sets the sheet's auto filter. Last bounds are exclusive.
func (s *Sheet) SetFilterRange(firstRow, lastRow, firstCol, lastCol int) error {
	if firstRow < 0 || firstCol < 0 || lastRow <= firstRow || lastCol <= firstCol {
		return fmt.Errorf("invalid filter range rows [%d,%d) cols [%d,%d)", firstRow, lastRow, firstCol, lastCol)
	}
	start, err := excelize.CoordinatesToCellName(firstCol+1, firstRow+1)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(lastCol, lastRow)
	if err != nil {
		return err
	}
	ref := start + ":" + end
	if err := s.wb.file.AutoFilter(s.name, ref, nil); err != nil {
		return err
	}
	s.filter = ref
	return nil
}

// Filter returns the A1-style filter range, or "" if none was set.
func (s *Sheet) Filter() string { return s.filter }

type row struct {
	sheet *Sheet
	index int
}

func (r *row) SetCell(col int, c sheeter.Cell) error {
	cell, err := excelize.CoordinatesToCellName(col+1, r.index+1)
	if err != nil {
		return err
	}
	f, sheet := r.sheet.wb.file, r.sheet.name
	switch c.Kind() {
	case sheeter.KindInt64, sheeter.KindInt32:
		err = f.SetCellValue(sheet, cell, c.Int())
	case sheeter.KindFloat:
		err = f.SetCellFloat(sheet, cell, c.Float(), -1, 64)
	default:
		err = f.SetCellStr(sheet, cell, c.String())
	}
	if err != nil {
		return err
	}
	r.sheet.widths[col] = max(r.sheet.widths[col], runewidth.StringWidth(c.String()))
	return nil
}
