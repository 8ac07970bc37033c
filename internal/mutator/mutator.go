// Package mutator derives single-fault variants from a valid element tree.
package mutator

import (
	"iter"
	"slices"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/element"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/simpletype"
)

// Info describes the edit behind a variant.
type Info struct {
	Kind Kind
	// Attribute is the edited attribute name, empty for child edits.
	Attribute string
	// Value is the literal written by replacements and duplications.
	Value simpletype.Value
	// Child is the dropped child or the inserted duplicate.
	Child *element.Node
	// Dropped holds every child removed by AllChildrenDropped.
	Dropped []*element.Node
}

// Variant is a deep copy of the input tree with exactly one edit applied.
// Target is the node inside Root that carries the edit; Path leads from
// Root to Target.
type Variant struct {
	Root   *element.Node
	Target *element.Node
	Path   []int
	Info   Info
}

type Mutator struct {
	alloc *simpletype.Allocator
}

// New returns a Mutator drawing replacement literals from alloc.
func New(alloc *simpletype.Allocator) *Mutator {
	return &Mutator{alloc: alloc}
}

// Mutate yields the variants of root in pre-order: every edit of a node
// comes before the edits of its descendants. root itself is never modified.
func (m *Mutator) Mutate(root *element.Node) iter.Seq[Variant] {
	return func(yield func(Variant) bool) {
		m.visit(root, nil, yield)
	}
}

type edit func(target *element.Node) Info

func (m *Mutator) visit(root *element.Node, path []int, yield func(Variant) bool) bool {
	emit := func(e edit) bool {
		c := root.Clone()
		target := c.At(path)
		info := e(target)
		return yield(Variant{Root: c, Target: target, Path: slices.Clone(path), Info: info})
	}

	n := root.At(path)
	for i := range n.Attributes {
		if !m.attributeEdits(n, i, emit) {
			return false
		}
	}
	if !m.childEdits(n, emit) {
		return false
	}
	for i := range n.Children {
		if !m.visit(root, append(path, i), yield) {
			return false
		}
	}
	return true
}

func (m *Mutator) attributeEdits(n *element.Node, i int, emit func(edit) bool) bool {
	attr := n.Attributes[i]
	kind := attr.Value.Kind

	if !emit(func(t *element.Node) Info {
		t.Attributes = slices.Delete(t.Attributes, i, i+1)
		return Info{Kind: AttributeDropped, Attribute: attr.Name, Value: attr.Value}
	}) {
		return false
	}

	replace := func(k Kind, v simpletype.Value) edit {
		return func(t *element.Node) Info {
			t.Attributes[i].Value = v
			return Info{Kind: k, Attribute: attr.Name, Value: v}
		}
	}
	for _, k := range []Kind{AttributeReplacedInvalid, AttributeReplacedValid} {
		for v := range m.alloc.Create(kind, k == AttributeReplacedValid) {
			// A literal equal to the current one would not change anything.
			if v.Raw == attr.Value.Raw {
				continue
			}
			if !emit(replace(k, v)) {
				return false
			}
		}
	}

	insert := func(k Kind, at int, v simpletype.Value) edit {
		return func(t *element.Node) Info {
			t.Attributes = slices.Insert(t.Attributes, at, element.Attribute{Name: attr.Name, Value: v})
			return Info{Kind: k, Attribute: attr.Name, Value: v}
		}
	}
	return emit(insert(AttributeDuplicatedNewAfter, i+1, m.fresh(attr.Value))) &&
		emit(insert(AttributeDuplicatedNewBefore, i, m.fresh(attr.Value))) &&
		emit(insert(AttributeDuplicatedSame, i+1, attr.Value))
}

// fresh returns a new valid literal of v's kind, or v itself for kinds
// that have nothing to offer (free strings).
func (m *Mutator) fresh(v simpletype.Value) simpletype.Value {
	if nv, ok := m.alloc.NextValid(v.Kind); ok {
		return nv
	}
	return v
}

func (m *Mutator) childEdits(n *element.Node, emit func(edit) bool) bool {
	for i := range n.Children {
		if !emit(func(t *element.Node) Info {
			dropped := t.Children[i]
			t.Children = slices.Delete(t.Children, i, i+1)
			return Info{Kind: ChildDropped, Child: dropped, Dropped: []*element.Node{dropped}}
		}) {
			return false
		}
	}

	s := n.Schema()
	for g := range s.Children {
		if !slices.ContainsFunc(n.Children, func(c *element.Node) bool { return s.Group(c.Kind) == g }) {
			continue
		}
		if !emit(func(t *element.Node) Info {
			var dropped []*element.Node
			t.Children = slices.DeleteFunc(t.Children, func(c *element.Node) bool {
				if s.Group(c.Kind) == g {
					dropped = append(dropped, c)
					return true
				}
				return false
			})
			return Info{Kind: AllChildrenDropped, Dropped: dropped}
		}) {
			return false
		}
	}

	for i, child := range n.Children {
		if !m.duplicateChild(i, child, emit) {
			return false
		}
	}
	return true
}

// duplicateChild appends a copy of the i-th child to the children of its
// parent. A child with an id is copied twice: once keeping the id and once
// with a fresh one.
func (m *Mutator) duplicateChild(i int, child *element.Node, emit func(edit) bool) bool {
	duplicate := func(k Kind, v *simpletype.Value) edit {
		return func(t *element.Node) Info {
			dup := t.Children[i].Clone()
			if v != nil {
				dup.SetAttr("id", *v)
			}
			t.Children = append(t.Children, dup)
			return Info{Kind: k, Child: dup}
		}
	}

	id, ok := child.Attr("id")
	if !ok {
		return emit(duplicate(ChildDuplicatedSame, nil))
	}
	if !emit(duplicate(ChildDuplicatedSameID, nil)) {
		return false
	}
	nv, ok := m.alloc.NextValid(id.Kind)
	if !ok {
		return true
	}
	return emit(duplicate(ChildDuplicatedNewID, &nv))
}
