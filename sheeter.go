package sheeter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrIneligibleType    = errors.New("ineligible record type")
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrExtract           = errors.New("column extraction failed")
	ErrSink              = errors.New("sink failure")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format is a text rendering of a [Grid].
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{CSV, TSV, Table, Markdown, HTML, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders g in format f to w. Row 0 of the grid is treated as the
// header row. An empty grid writes nothing.
func Write(w io.Writer, f Format, g *Grid) error {
	if g.Rows() == 0 {
		return nil
	}
	switch f {
	case CSV:
		return writeCSV(w, g, ',')
	case TSV:
		return writeTSV(w, g)
	case Table:
		return writeTable(w, g)
	case Markdown:
		return writeMarkdown(w, g)
	case HTML:
		return writeHTML(w, g)
	case JSON:
		return writeJSON(w, g)
	case YAML:
		return writeYAML(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders g in format f and returns the bytes.
func Marshal(f Format, g *Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// columnAligns right-aligns columns whose data cells are all numeric.
func columnAligns(g *Grid) []Alignment {
	aligns := make([]Alignment, g.Cols())
	for col := range aligns {
		numeric := false
		for row := 1; row < g.Rows(); row++ {
			c := g.Cell(row, col)
			if c.IsEmpty() {
				continue
			}
			if !c.Kind().Numeric() {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			aligns[col] = AlignRight
		}
	}
	return aligns
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)
