package sheeter

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Range is a rectangular cell range. First bounds are inclusive, last
// bounds exclusive.
type Range struct {
	FirstRow, LastRow int
	FirstCol, LastCol int
}

// Memory is a [Sink] that keeps every sheet in memory as a [Grid].
type Memory struct {
	sheets []*Grid
}

var (
	_ Sink  = (*Memory)(nil)
	_ Sheet = (*Grid)(nil)
)

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory { return &Memory{} }

// CreateSheet creates a new Grid. Sheet names must be unique.
func (m *Memory) CreateSheet(name string) (Sheet, error) {
	if m.Sheet(name) != nil {
		return nil, fmt.Errorf("sheet %q already exists", name)
	}
	g := &Grid{name: name, widths: map[int]int{}}
	m.sheets = append(m.sheets, g)
	return g, nil
}

// Sheet returns the grid with the given name, or nil.
func (m *Memory) Sheet(name string) *Grid {
	for _, g := range m.sheets {
		if g.name == name {
			return g
		}
	}
	return nil
}

// Sheets returns all grids in creation order.
func (m *Memory) Sheets() []*Grid { return m.sheets }

// Grid is an in-memory sheet: a header row followed by data rows. Rows are
// ragged; a cell that was never set reads as empty.
type Grid struct {
	name   string
	rows   [][]Cell
	widths map[int]int
	filter *Range
}

func (g *Grid) Name() string { return g.name }

// CreateRow returns the row at index, growing the grid as needed.
func (g *Grid) CreateRow(index int) (Row, error) {
	if index < 0 {
		return nil, fmt.Errorf("negative row index %d", index)
	}
	for len(g.rows) <= index {
		g.rows = append(g.rows, nil)
	}
	return &gridRow{grid: g, index: index}, nil
}

// AutoSizeColumn records the widest display width found in col.
func (g *Grid) AutoSizeColumn(col int) error {
	if col < 0 {
		return fmt.Errorf("negative column index %d", col)
	}
	width := 0
	for _, row := range g.rows {
		if col < len(row) {
			width = max(width, runewidth.StringWidth(row[col].String()))
		}
	}
	g.widths[col] = width
	return nil
}

func (g *Grid) SetFilterRange(firstRow, lastRow, firstCol, lastCol int) error {
	if firstRow < 0 || firstCol < 0 || lastRow < firstRow || lastCol < firstCol {
		return fmt.Errorf("invalid filter range rows [%d,%d) cols [%d,%d)", firstRow, lastRow, firstCol, lastCol)
	}
	g.filter = &Range{FirstRow: firstRow, LastRow: lastRow, FirstCol: firstCol, LastCol: lastCol}
	return nil
}

// Rows returns the number of rows, header included.
func (g *Grid) Rows() int { return len(g.rows) }

// Cols returns the width of the widest row.
func (g *Grid) Cols() int {
	n := 0
	for _, row := range g.rows {
		n = max(n, len(row))
	}
	return n
}

// Cell returns the cell at row, col. Out of range positions are empty.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return Cell{}
	}
	return g.rows[row][col]
}

// Row returns a copy of row i padded to [Grid.Cols].
func (g *Grid) Row(i int) []Cell {
	out := make([]Cell, g.Cols())
	if i >= 0 && i < len(g.rows) {
		copy(out, g.rows[i])
	}
	return out
}

// Header returns the text of row 0.
func (g *Grid) Header() []string {
	return g.Strings(0)
}

// Strings returns the text form of row i padded to [Grid.Cols].
func (g *Grid) Strings(i int) []string {
	row := g.Row(i)
	out := make([]string, len(row))
	for j, c := range row {
		out[j] = c.String()
	}
	return out
}

// Width returns the width recorded by AutoSizeColumn and whether the column
// was sized.
func (g *Grid) Width(col int) (int, bool) {
	w, ok := g.widths[col]
	return w, ok
}

// Filter returns the filter range, if one was set.
func (g *Grid) Filter() (Range, bool) {
	if g.filter == nil {
		return Range{}, false
	}
	return *g.filter, true
}

type gridRow struct {
	grid  *Grid
	index int
}

func (r *gridRow) SetCell(col int, c Cell) error {
	if col < 0 {
		return fmt.Errorf("negative column index %d", col)
	}
	row := r.grid.rows[r.index]
	for len(row) <= col {
		row = append(row, Cell{})
	}
	row[col] = c
	r.grid.rows[r.index] = row
	return nil
}
