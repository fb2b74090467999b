package sheeter

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, g *Grid, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	for i := range g.Rows() {
		if err := cw.Write(g.Strings(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
