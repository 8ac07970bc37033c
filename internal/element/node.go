package element

import (
	"github.com/UPB-SysSec/3MF-Analyzer/internal/simpletype"
)

// Attribute is one name/value pair of a node. Order is significant.
type Attribute struct {
	Name  string
	Value simpletype.Value
}

// Node is one element of a 3MF model tree. A node exclusively owns its
// attributes and children.
type Node struct {
	Kind       Kind
	Text       string
	Attributes []Attribute
	Children   []*Node
	Extensions Extensions
}

// New builds a node from alternating attribute names and raw literals.
// Literal kinds are taken from the schema of kind under ext; names the
// schema does not declare are stored as plain strings.
func New(kind Kind, ext Extensions, pairs ...string) *Node {
	if len(pairs)%2 != 0 {
		panic("element.New: odd number of name/value arguments")
	}
	n := &Node{Kind: kind, Extensions: ext}
	s := n.Schema()
	for i := 0; i < len(pairs); i += 2 {
		vk := simpletype.KindString
		if rule, ok := s.Attribute(pairs[i]); ok {
			vk = rule.Kind
		}
		n.Attributes = append(n.Attributes, Attribute{
			Name:  pairs[i],
			Value: simpletype.New(vk, pairs[i+1]),
		})
	}
	return n
}

// Append adds children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// WithText sets the character content and returns n.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

func (n *Node) Tag() string {
	return n.Kind.Tag()
}

// Schema returns the content model that applies to n.
func (n *Node) Schema() *Schema {
	return SchemaFor(n.Kind, n.Extensions)
}

func (n *Node) String() string {
	return "<" + n.Tag() + ">"
}

// Attr returns the first attribute called name.
func (n *Node) Attr(name string) (simpletype.Value, bool) {
	if i := n.AttrIndex(name); i >= 0 {
		return n.Attributes[i].Value, true
	}
	return simpletype.Value{}, false
}

// AttrIndex returns the position of the first attribute called name, or -1.
func (n *Node) AttrIndex(name string) int {
	for i, a := range n.Attributes {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// SetAttr replaces the value of the first attribute called name, or appends
// a new attribute when there is none.
func (n *Node) SetAttr(name string, v simpletype.Value) {
	if i := n.AttrIndex(name); i >= 0 {
		n.Attributes[i].Value = v
		return
	}
	n.Attributes = append(n.Attributes, Attribute{Name: name, Value: v})
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind:       n.Kind,
		Text:       n.Text,
		Extensions: n.Extensions,
	}
	if n.Attributes != nil {
		c.Attributes = make([]Attribute, len(n.Attributes))
		copy(c.Attributes, n.Attributes)
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Walk visits n and its descendants in document order. path holds the
// child indices leading from n to the visited node; it is reused between
// calls. Returning false skips the node's children.
func (n *Node) Walk(fn func(path []int, m *Node) bool) {
	var walk func(path []int, m *Node)
	walk = func(path []int, m *Node) {
		if !fn(path, m) {
			return
		}
		for i, child := range m.Children {
			walk(append(path, i), child)
		}
	}
	walk(nil, n)
}

// At returns the descendant reached by following path.
func (n *Node) At(path []int) *Node {
	m := n
	for _, i := range path {
		if m == nil || i < 0 || i >= len(m.Children) {
			return nil
		}
		m = m.Children[i]
	}
	return m
}

// Count returns the number of nodes of kind in the subtree rooted at n.
func (n *Node) Count(kind Kind) int {
	total := 0
	n.Walk(func(_ []int, m *Node) bool {
		if m.Kind == kind {
			total++
		}
		return true
	})
	return total
}
