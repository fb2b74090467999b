package sheeter

import (
	"fmt"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", "")

func writeTSV(w io.Writer, g *Grid) error {
	for i := range g.Rows() {
		cells := g.Strings(i)
		for j, c := range cells {
			cells[j] = tsvEscaper.Replace(c)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
