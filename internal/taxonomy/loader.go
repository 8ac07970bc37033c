package taxonomy

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed types.yaml
var defaultTypes []byte

// Miscellaneous is the type tests with an unknown tag are sorted into.
const Miscellaneous = "Miscellaneous"

// Catalog holds the loaded type tree.
type Catalog struct {
	Types []*Type
	ByTag map[string]*Type // full tag → type
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(defaultTypes)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: embedded types: %v", err))
	}
	return c
})

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog()
}

// LoadCatalog reads a type tree from a YAML file with a top level "types"
// mapping, the same format as the embedded one.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading types: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var doc typeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing types: %w", err)
	}
	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("parsing types: no types defined")
	}

	cat := &Catalog{Types: doc.Types, ByTag: make(map[string]*Type)}
	var err error
	cat.Walk(func(t *Type) {
		tag := t.Tag()
		if _, dup := cat.ByTag[tag]; dup && err == nil {
			err = fmt.Errorf("parsing types: duplicate type %q", tag)
		}
		cat.ByTag[tag] = t
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Walk visits every type depth first in file order.
func (c *Catalog) Walk(fn func(t *Type)) {
	var walk func(types []*Type)
	walk = func(types []*Type) {
		for _, t := range types {
			fn(t)
			walk(t.Subtypes)
		}
	}
	walk(c.Types)
}

// Lookup resolves a tag. Whitespace around the separators is ignored.
func (c *Catalog) Lookup(tag string) (*Type, bool) {
	parts := strings.Split(tag, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	t, ok := c.ByTag[strings.Join(parts, TagSeparator)]
	return t, ok
}

// Resolve is Lookup falling back to Miscellaneous.
func (c *Catalog) Resolve(tag string) *Type {
	if t, ok := c.Lookup(tag); ok {
		return t
	}
	return c.ByTag[Miscellaneous]
}
