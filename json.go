package sheeter

import (
	"encoding/json"
	"io"
	"math"
)

type jsonGrid struct {
	Sheet  string   `json:"sheet"`
	Header []string `json:"header"`
	Rows   [][]any  `json:"rows"`
}

func writeJSON(w io.Writer, g *Grid) error {
	out := jsonGrid{Sheet: g.Name(), Header: g.Header(), Rows: make([][]any, 0, g.Rows()-1)}
	for i := 1; i < g.Rows(); i++ {
		row := g.Row(i)
		vals := make([]any, len(row))
		for j, c := range row {
			vals[j] = jsonValue(c)
		}
		out.Rows = append(out.Rows, vals)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// jsonValue maps NaN and infinite floats to null, which JSON cannot encode.
func jsonValue(c Cell) any {
	if c.Kind() == KindFloat && (math.IsNaN(c.Float()) || math.IsInf(c.Float(), 0)) {
		return nil
	}
	return c.Value()
}
