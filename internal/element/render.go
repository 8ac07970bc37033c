package element

import "strings"

// XMLDeclaration is written in front of every root element.
const XMLDeclaration = `<?xml version="1.0" encoding="utf-8"?>`

const indentUnit = "    "

// XML renders n. Attribute values and text are written verbatim, so a
// literal that is not XML safe produces a document that does not parse.
func (n *Node) XML(isRoot bool) string {
	var b strings.Builder
	if isRoot {
		b.WriteString(XMLDeclaration)
		b.WriteByte('\n')
	}
	b.WriteString(n.render())
	return b.String()
}

// Render is the package level form of n.XML.
func Render(n *Node, isRoot bool) string {
	return n.XML(isRoot)
}

func (n *Node) render() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Tag())
	for _, a := range n.Attributes {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value.Raw)
		b.WriteByte('"')
	}

	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString(" />\n")
		return b.String()
	}

	b.WriteByte('>')
	if n.Text != "" {
		if strings.Contains(n.Text, "\n") || len(n.Children) > 0 {
			b.WriteByte('\n')
			b.WriteString(indent(n.Text))
			b.WriteByte('\n')
		} else {
			b.WriteString(n.Text)
		}
	}
	if len(n.Children) > 0 {
		b.WriteByte('\n')
	}
	for _, child := range n.Children {
		b.WriteString(indent(child.render()))
	}
	b.WriteString("</")
	b.WriteString(n.Tag())
	b.WriteString(">\n")
	return b.String()
}

// indent prefixes every line that is not blank with one indentation unit.
func indent(s string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(indentUnit)
		}
		b.WriteString(line)
	}
	return b.String()
}
