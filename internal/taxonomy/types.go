package taxonomy

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TagSeparator joins type names into a tag, e.g.
// "UI Spoofing, Reference Confusion, Reference Broken".
const TagSeparator = ", "

// Type is one node of the attack type tree.
type Type struct {
	Name        string
	Description string
	Subtypes    []*Type
	Parent      *Type
}

// Tag returns the full path of t, top level type first.
func (t *Type) Tag() string {
	if t.Parent == nil {
		return t.Name
	}
	return t.Parent.Tag() + TagSeparator + t.Name
}

// Depth is 0 for top level types.
func (t *Type) Depth() int {
	d := 0
	for p := t.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// typeDocument is the on-disk form. Types are a YAML mapping from name to
// definition; mapping order is the presentation order.
type typeDocument struct {
	Types typeList `yaml:"types"`
}

type typeDef struct {
	Description string   `yaml:"description"`
	Subtypes    typeList `yaml:"subtypes"`
}

type typeList []*Type

func (l *typeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: types must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := strings.TrimSpace(node.Content[i].Value)
		var def typeDef
		if err := node.Content[i+1].Decode(&def); err != nil {
			return fmt.Errorf("type %q: %w", name, err)
		}
		t := &Type{Name: name, Description: strings.TrimSpace(def.Description), Subtypes: def.Subtypes}
		for _, sub := range t.Subtypes {
			sub.Parent = t
		}
		*l = append(*l, t)
	}
	return nil
}
