package sheeter

// Sink receives converted records. It owns the persisted representation of
// every sheet it creates.
type Sink interface {
	CreateSheet(name string) (Sheet, error)
}

// Sheet is one named grid inside a sink.
type Sheet interface {
	Name() string
	// CreateRow returns the row at the zero-based index.
	CreateRow(index int) (Row, error)
	// AutoSizeColumn fits the column width to its content.
	AutoSizeColumn(col int) error
	// SetFilterRange defines the filter range of the sheet. First bounds are
	// inclusive, last bounds exclusive.
	SetFilterRange(firstRow, lastRow, firstCol, lastCol int) error
}

// Row is one row of a sheet.
//
// SetCell is only called with non-empty cells. Date and enum cells must be
// stored as text using [Cell.String], never as native date cells.
type Row interface {
	SetCell(col int, c Cell) error
}
