package element

import (
	"slices"
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/simpletype"
)

// Extensions is the set of 3MF extensions active for a document.
type Extensions uint8

const (
	ExtMaterials Extensions = 1 << iota
	ExtProduction
	ExtSlice

	extAll = ExtMaterials | ExtProduction | ExtSlice
)

// Namespaces of the core specification and the supported extensions.
const (
	NamespaceCore       = "http://schemas.microsoft.com/3dmanufacturing/core/2015/02"
	NamespaceMaterials  = "http://schemas.microsoft.com/3dmanufacturing/material/2015/02"
	NamespaceProduction = "http://schemas.microsoft.com/3dmanufacturing/production/2015/06"
	NamespaceSlice      = "http://schemas.microsoft.com/3dmanufacturing/slice/2015/07"
)

var extensionNames = []struct {
	ext    Extensions
	name   string
	prefix string
}{
	{ExtMaterials, "materials", "m"},
	{ExtProduction, "production", "p"},
	{ExtSlice, "slice", "s"},
}

func (e Extensions) Has(x Extensions) bool {
	return e&x == x
}

// Names lists the specification names of the active extensions.
func (e Extensions) Names() []string {
	var out []string
	for _, n := range extensionNames {
		if e.Has(n.ext) {
			out = append(out, n.name)
		}
	}
	return out
}

func (e Extensions) String() string {
	if e == 0 {
		return "core"
	}
	return strings.Join(e.Names(), "+")
}

// ExtensionsFor maps a specification name ("core", "materials", ...) to the
// extension set a document of that specification uses.
func ExtensionsFor(spec string) Extensions {
	for _, n := range extensionNames {
		if n.name == spec {
			return n.ext
		}
	}
	return 0
}

// Unbounded is the maxOccurs used for unbounded child groups.
const Unbounded = 2147483647

// ChildGroup declares which child kinds may appear and how often. Children
// of any kind in Kinds count towards the same bounds.
type ChildGroup struct {
	Kinds []Kind
	Min   int
	Max   int
}

func (g ChildGroup) Contains(k Kind) bool {
	return slices.Contains(g.Kinds, k)
}

// AttributeRule declares one permitted attribute.
type AttributeRule struct {
	Name     string
	Kind     simpletype.Kind
	Required bool
}

// Schema is the content model of one element kind under one extension set.
// Schemas are shared and must not be modified.
type Schema struct {
	AllowsText  bool
	AllowsMixed bool
	Children    []ChildGroup
	Attributes  []AttributeRule
}

// Attribute returns the rule for name.
func (s *Schema) Attribute(name string) (AttributeRule, bool) {
	for _, r := range s.Attributes {
		if r.Name == name {
			return r, true
		}
	}
	return AttributeRule{}, false
}

// Group returns the index of the child group k belongs to, or -1.
func (s *Schema) Group(k Kind) int {
	for i, g := range s.Children {
		if g.Contains(k) {
			return i
		}
	}
	return -1
}

var schemas [KindTotal][extAll + 1]*Schema

func init() {
	for k := Kind(1); int(k) < KindTotal; k++ {
		for ext := Extensions(0); ext <= extAll; ext++ {
			s := catalog(k, ext)
			schemas[k][ext] = &s
		}
	}
}

// SchemaFor returns the content model of kind with the given extensions
// active. Unknown kinds get an empty schema that allows nothing.
func SchemaFor(kind Kind, ext Extensions) *Schema {
	if kind <= 0 || int(kind) >= KindTotal {
		return &Schema{}
	}
	return schemas[kind][ext&extAll]
}
