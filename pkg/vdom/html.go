package vdom

import (
	"html"
	"sort"
	"strings"
)

// voidElements are HTML elements that never carry children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// RenderHTML serializes a node tree to HTML. Text and attribute values are
// escaped; there is no raw-HTML node kind.
func RenderHTML(n *Node) string {
	var b strings.Builder
	renderHTML(&b, n)
	return b.String()
}

func renderHTML(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindText:
		b.WriteString(html.EscapeString(n.Text))
	case KindFragment:
		for _, child := range n.Children {
			renderHTML(b, child)
		}
	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, key := range sortedPropKeys(n.Props) {
			b.WriteByte(' ')
			b.WriteString(key)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(propToString(n.Props[key])))
			b.WriteByte('"')
		}
		if voidElements[n.Tag] {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for _, child := range n.Children {
			renderHTML(b, child)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

// sortedPropKeys returns attribute names in stable order so output is
// deterministic across runs.
func sortedPropKeys(props Props) []string {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
