package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Test is the part of a test description the overview renders.
type Test struct {
	ID          string
	Name        string
	Type        string
	Description string
}

// Overview sorts tests into the type tree. Tests with an unknown tag end
// up under Miscellaneous.
type Overview struct {
	Catalog *Catalog
	ByType  map[*Type][]Test
}

// BuildOverview creates the reverse index from types to tests.
func BuildOverview(cat *Catalog, tests []Test) Overview {
	o := Overview{Catalog: cat, ByType: make(map[*Type][]Test)}
	for _, t := range tests {
		typ := cat.Resolve(t.Type)
		if typ == nil {
			continue
		}
		o.ByType[typ] = append(o.ByType[typ], t)
	}
	for _, list := range o.ByType {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}
	return o
}

// Count is the number of tests of one type, subtypes included.
type Count struct {
	Tag   string
	Depth int
	Tests int
}

// Counts lists every type in catalog order.
func (o Overview) Counts() []Count {
	var out []Count
	o.Catalog.Walk(func(t *Type) {
		out = append(out, Count{Tag: t.Tag(), Depth: t.Depth(), Tests: o.total(t)})
	})
	return out
}

func (o Overview) total(t *Type) int {
	n := len(o.ByType[t])
	for _, sub := range t.Subtypes {
		n += o.total(sub)
	}
	return n
}

// Markdown renders one section per type with a table of its tests.
func (o Overview) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Tests by Type\n\n")
	sb.WriteString("> Auto-generated from the test descriptions. Do not edit manually.\n\n")

	o.Catalog.Walk(func(t *Type) {
		sb.WriteString(fmt.Sprintf("%s %s\n\n", strings.Repeat("#", t.Depth()+2), t.Name))
		if t.Description != "" {
			sb.WriteString(t.Description + "\n\n")
		}

		tests := o.ByType[t]
		if len(tests) == 0 {
			if len(t.Subtypes) == 0 {
				sb.WriteString("_No tests of this type yet._\n\n")
			}
			return
		}

		sb.WriteString("| ID | Name | Description |\n|---|---|---|\n")
		for _, test := range tests {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				test.ID, cell(test.Name), cell(test.Description)))
		}
		sb.WriteString("\n")
	})

	return sb.String()
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
