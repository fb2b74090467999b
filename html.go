package sheeter

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, g *Grid) error {
	aligns := columnAligns(g)

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if g.Name() != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(g.Name())); err != nil {
			return err
		}
	}

	if err := writeHTMLSection(w, "thead", "th", [][]string{g.Header()}, aligns); err != nil {
		return err
	}
	body := make([][]string, 0, g.Rows()-1)
	for i := 1; i < g.Rows(); i++ {
		body = append(body, g.Strings(i))
	}
	if err := writeHTMLSection(w, "tbody", "td", body, aligns); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLSection(w io.Writer, section, tag string, rows [][]string, aligns []Alignment) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range row {
			style := alignStyle(aligns, i)
			if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, style, html.EscapeString(cell), tag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", section)
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
