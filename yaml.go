package sheeter

import (
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// writeYAML renders data rows as a sequence of mappings keyed by header,
// keeping column order.
func writeYAML(w io.Writer, g *Grid) error {
	header := g.Header()
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for i := 1; i < g.Rows(); i++ {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for j, c := range g.Row(i) {
			if c.IsEmpty() {
				continue
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: header[j]},
				yamlScalar(c),
			)
		}
		doc.Content = append(doc.Content, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func yamlScalar(c Cell) *yaml.Node {
	tag := "!!str"
	switch c.Kind() {
	case KindInt64, KindInt32:
		tag = "!!int"
	case KindFloat:
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: yamlText(c)}
}

func yamlText(c Cell) string {
	if c.Kind() != KindFloat {
		return c.String()
	}
	switch f := c.Float(); {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return c.String()
}
