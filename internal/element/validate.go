package element

import (
	"fmt"
	"strings"
	"unicode"
)

// Breach is one violation of an element's content model.
type Breach struct {
	ID          string
	Description string
	Objects     []any
}

func (b Breach) String() string {
	return fmt.Sprintf("%s: %s", b.ID, b.Description)
}

// BreachError wraps the first breach of a tree that was expected to be valid.
type BreachError struct {
	Breach Breach
	Total  int
}

func (e *BreachError) Error() string {
	if e.Total > 1 {
		return fmt.Sprintf("schema breach %s (and %d more)", e.Breach, e.Total-1)
	}
	return "schema breach " + e.Breach.String()
}

// Check returns a *BreachError describing the first breach of n, or nil
// when n validates.
func Check(n *Node) error {
	breaches := n.Validate()
	if len(breaches) == 0 {
		return nil
	}
	return &BreachError{Breach: breaches[0], Total: len(breaches)}
}

// initials derives a breach id from the first letter of every word.
func initials(description string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) && r < unicode.MaxASCII || r == ' ' {
			return r
		}
		return -1
	}, description)) {
		b.WriteRune(unicode.ToUpper(rune(word[0])))
	}
	return b.String()
}

type collector struct {
	breaches []Breach
}

func (c *collector) add(objects []any, format string, args ...any) {
	desc := fmt.Sprintf(format, args...)
	c.breaches = append(c.breaches, Breach{
		ID:          initials(desc),
		Description: desc,
		Objects:     objects,
	})
}

// Valid reports whether n and all its descendants satisfy their schemas.
func (n *Node) Valid() bool {
	return len(n.Validate()) == 0
}

// Validate checks n against its schema and returns every breach found. A
// child that does not validate contributes one breach at n.
func (n *Node) Validate() []Breach {
	s := n.Schema()
	c := &collector{}

	if !s.AllowsText && n.Text != "" {
		c.add([]any{n}, "%s doesn't allow a value, but there is one", n)
	}
	if len(s.Children) == 0 && len(n.Children) > 0 {
		c.add([]any{n}, "%s doesn't allow children, but there are some", n)
	}
	if !s.AllowsMixed && n.Text != "" && len(n.Children) > 0 {
		c.add([]any{n}, "%s doesn't allow mixed content, but there is a value (%s) and there are children (%d)",
			n, n.Text, len(n.Children))
	}
	if len(s.Children) > 0 {
		n.validateChildren(s, c)
	}
	if len(s.Attributes) == 0 && len(n.Attributes) > 0 {
		c.add([]any{n}, "%s doesn't allow attributes, but there are some", n)
	}
	if len(s.Attributes) > 0 {
		n.validateAttributes(s, c)
	}
	if len(c.breaches) == 0 {
		n.validateReferences(c)
	}
	return c.breaches
}

func (n *Node) validateChildren(s *Schema, c *collector) {
	for _, child := range n.Children {
		if s.Group(child.Kind) < 0 {
			c.add([]any{n, child}, "%s doesn't allow %s as a child, but its there", n, child)
		}
		if nested := child.Validate(); len(nested) > 0 {
			c.add([]any{n, child, nested}, "Child %s of %s should be valid, but isn't", child, n)
		}
	}

	for _, g := range s.Children {
		count := 0
		for _, child := range n.Children {
			if g.Contains(child.Kind) {
				count++
			}
		}
		if count < g.Min || count > g.Max {
			c.add([]any{g, n}, "Child of type %s occurs %d time, but is only allowed %d--%d times",
				groupTags(g), count, g.Min, g.Max)
		}
	}
}

func (n *Node) validateAttributes(s *Schema, c *collector) {
	seen := make(map[string]bool, len(n.Attributes))
	duplicate := false
	for _, a := range n.Attributes {
		if seen[a.Name] {
			duplicate = true
		}
		seen[a.Name] = true

		rule, ok := s.Attribute(a.Name)
		if !ok {
			c.add([]any{n, a}, "%s is not allowed as attribute in %s", a.Name, n)
			continue
		}
		if rule.Kind != a.Value.Kind {
			c.add([]any{n, a}, "%s should be instance %s, but is %s", a.Name, rule.Kind, a.Value.Kind)
			continue
		}
		if !a.Value.Valid() {
			c.add([]any{n, a.Value}, "Attribute value %s of %s should be valid, but isn't", a.Value, n)
		}
	}

	if duplicate {
		c.add([]any{n, n.Attributes}, "Duplicate attributes in %s", n)
	}

	for _, rule := range s.Attributes {
		if rule.Required && !seen[rule.Name] {
			c.add([]any{n, rule}, "Required attribute %s is missing in %s", rule.Name, n)
		}
	}
}

// validateReferences is reserved for referential integrity checks between
// ids and the attributes pointing at them (objectid, pid, pindex, ...). It
// only runs when the structural checks found nothing.
func (n *Node) validateReferences(*collector) {}

func groupTags(g ChildGroup) string {
	names := make([]string, len(g.Kinds))
	for i, k := range g.Kinds {
		names[i] = k.Tag()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
