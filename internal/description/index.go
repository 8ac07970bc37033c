// Package description maintains the YAML files describing every test case.
// Generated fields are updated in place; keys added by hand survive.
package description

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/taxonomy"
)

// Description files in the order they are read and written.
var Files = []string{"00_3mf.yaml", "02_xml.yaml", "03_3mf-mutated.yaml", "04_opc.yaml"}

const stem = "scope: TODO\n\ntests: {}\n"

// categories maps test id prefixes to the file holding them.
var categories = []struct {
	prefix string
	file   string
	// gc marks categories whose stale entries are removed after a run.
	gc bool
}{
	{"XML-", "02_xml.yaml", true},
	{"GEN-", "03_3mf-mutated.yaml", true},
	{"R-", "00_3mf.yaml", false},
	{"CS-", "04_opc.yaml", false},
}

// FileFor returns the description file for a test id.
func FileFor(id string) (string, bool) {
	for _, c := range categories {
		if strings.HasPrefix(id, c.prefix) {
			return c.file, true
		}
	}
	return "", false
}

// Entry is the generated part of a test description.
type Entry struct {
	ID string
	// Description is split at the first ". " into name and further infos.
	Description      string
	Validity         map[string]string
	ExpectedBehavior string
	Type             string
}

// Index holds the parsed description files of one directory.
type Index struct {
	dir   string
	files map[string]*yaml.Node
}

// Open reads the description files in dir. Missing files are created with
// an empty test list.
func Open(dir string) (*Index, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create description dir: %w", err)
	}
	ix := &Index{dir: dir, files: make(map[string]*yaml.Node, len(Files))}
	for _, name := range Files {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			data = []byte(stem)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return nil, fmt.Errorf("create %s: %w", name, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		doc, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		ix.files[name] = doc
	}
	return ix, nil
}

func parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		if err := yaml.Unmarshal([]byte(stem), &doc); err != nil {
			return nil, err
		}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level is not a mapping")
	}
	tests := get(root, "tests")
	if tests == nil || tests.Kind != yaml.MappingNode {
		set(root, "tests", mapping())
	} else {
		// "tests: {}" would otherwise keep every entry on one line
		tests.Style &^= yaml.FlowStyle
	}
	return &doc, nil
}

func (ix *Index) tests(file string) *yaml.Node {
	return get(ix.files[file].Content[0], "tests")
}

// Upsert creates or updates the entry of e.ID.
func (ix *Index) Upsert(e Entry) error {
	file, ok := FileFor(e.ID)
	if !ok {
		return fmt.Errorf("no description file for test %q", e.ID)
	}
	tests := ix.tests(file)
	entry := get(tests, e.ID)
	if entry == nil || entry.Kind != yaml.MappingNode {
		entry = mapping()
		set(tests, e.ID, entry)
	}
	update(entry, e)
	return nil
}

func update(entry *yaml.Node, e Entry) {
	name, further := split(e.Description)
	if name != "" {
		set(entry, "name", str(name))
	}
	set(entry, "created", boolean(true))

	if e.Validity != nil {
		conforms := get(entry, "conforms_to_spec")
		if conforms == nil || conforms.Kind != yaml.MappingNode {
			conforms = mapping()
			set(entry, "conforms_to_spec", conforms)
		}
		specs := make([]string, 0, len(e.Validity))
		for spec := range e.Validity {
			specs = append(specs, spec)
		}
		slices.Sort(specs)
		for _, spec := range specs {
			set(conforms, spec, str(e.Validity[spec]))
		}
	}

	if e.ExpectedBehavior != "" {
		set(entry, "expected_behavior", str(e.ExpectedBehavior))
	}
	if strings.HasPrefix(e.ID, "XML-") && scalar(get(entry, "expected_behavior")) == "" {
		set(entry, "expected_behavior", str("Ignore DTD or Fail"))
	}

	if e.Type != "" {
		set(entry, "type", str(e.Type))
	}

	if further != "" {
		orig := scalar(get(entry, "further_infos"))
		switch {
		case orig == "":
			orig = further
		case !strings.Contains(unify(orig), unify(further)):
			orig += "\n" + further
		}
		set(entry, "further_infos", str(orig))
	}
}

// split cuts a description into its first sentence and the rest.
func split(description string) (name, further string) {
	parts := strings.Split(description, ". ")
	return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], "."))
}

func unify(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

// GC removes entries of garbage collected categories that are not in ids
// and sorts the remaining entries. A category without any id in ids is
// left alone. It returns the removed ids.
func (ix *Index) GC(ids []string) []string {
	var removed []string
	for _, c := range categories {
		if !c.gc {
			continue
		}
		keep := make(map[string]bool)
		for _, id := range ids {
			if strings.HasPrefix(id, c.prefix) {
				keep[id] = true
			}
		}
		if len(keep) == 0 {
			continue
		}

		tests := ix.tests(c.file)
		for _, id := range keys(tests) {
			if !keep[id] {
				remove(tests, id)
				removed = append(removed, id)
			}
		}
		sortMapping(tests)
	}
	return removed
}

func sortMapping(m *yaml.Node) {
	type pair struct{ k, v *yaml.Node }
	pairs := make([]pair, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		pairs = append(pairs, pair{m.Content[i], m.Content[i+1]})
	}
	slices.SortStableFunc(pairs, func(a, b pair) int { return strings.Compare(a.k.Value, b.k.Value) })
	m.Content = m.Content[:0]
	for _, p := range pairs {
		m.Content = append(m.Content, p.k, p.v)
	}
}

// MarkCreated sets "created" on every entry depending on whether a file
// whose name starts with the test id (case insensitive) exists below dir.
func (ix *Index) MarkCreated(dir string) error {
	var names []string
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, strings.ToLower(d.Name()))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	for _, file := range Files {
		tests := ix.tests(file)
		for _, id := range keys(tests) {
			lower := strings.ToLower(id)
			exists := slices.ContainsFunc(names, func(n string) bool { return strings.HasPrefix(n, lower) })
			entry := get(tests, id)
			if entry.Kind != yaml.MappingNode {
				entry = mapping()
				set(tests, id, entry)
			}
			set(entry, "created", boolean(exists))
		}
	}
	return nil
}

// IDs lists the test ids of one description file in file order.
func (ix *Index) IDs(file string) []string {
	if _, ok := ix.files[file]; !ok {
		return nil
	}
	return keys(ix.tests(file))
}

// Tests returns every described test for the type overview.
func (ix *Index) Tests() []taxonomy.Test {
	var out []taxonomy.Test
	for _, file := range Files {
		tests := ix.tests(file)
		for _, id := range keys(tests) {
			entry := get(tests, id)
			out = append(out, taxonomy.Test{
				ID:          id,
				Name:        scalar(get(entry, "name")),
				Type:        scalar(get(entry, "type")),
				Description: scalar(get(entry, "further_infos")),
			})
		}
	}
	return out
}

// Save checks and writes every file.
func (ix *Index) Save() error {
	for _, name := range Files {
		doc := ix.files[name]
		if err := Check(doc); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(ix.dir, name), buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
