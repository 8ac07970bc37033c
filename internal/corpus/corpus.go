// Package corpus generates the mutated model corpus: it runs the mutator
// over every reference document, names and deduplicates the variants,
// classifies them and records their schema validity.
package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/mutator"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/seed"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/simpletype"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/taxonomy"
)

// ModelsSuffix is appended to a document name to form its output folder.
const ModelsSuffix = ".3mf_models"

// Record is one generated test file.
type Record struct {
	ID          string
	Description string
	Seed        string
	Spec        string
	// Type is the taxonomy tag.
	Type    string
	Content string
	// Path is the destination of Content.
	Path     string
	Validity map[string]string
	// Kind is zero for reference records.
	Kind mutator.Kind
}

// Reference reports whether r is the unmodified reference document.
func (r Record) Reference() bool {
	return strings.HasPrefix(r.ID, "R-")
}

// Conforms reports whether the validator accepted the content.
func (r Record) Conforms() bool {
	return taxonomy.Conforms(r.Validity)
}

// Validator checks XML against the named specifications.
type Validator interface {
	Check(xml string, specs ...string) map[string]string
}

// Generator holds the state of one generation run. Ids, counters and the
// deduplication sets span all seeds of the run.
type Generator struct {
	Alloc     *simpletype.Allocator
	Validator Validator
	Seeds     []seed.Document
	// Root is the directory the <name>.3mf_models folders are placed in.
	Root string

	counters     map[string]int
	descriptions map[string]struct{}
	contents     map[string]struct{}
}

// New returns a Generator over every registered reference document.
func New(root string, v Validator) *Generator {
	return &Generator{
		Alloc:     simpletype.NewAllocator(),
		Validator: v,
		Seeds:     seed.All(),
		Root:      root,
	}
}

func (g *Generator) reset() {
	if g.Alloc == nil {
		g.Alloc = simpletype.NewAllocator()
	}
	g.counters = make(map[string]int)
	g.descriptions = make(map[string]struct{})
	g.contents = make(map[string]struct{})
}

// Run generates all records. Every seed yields its variants first and its
// reference record last. Run stops early when ctx is cancelled.
func (g *Generator) Run(ctx context.Context) ([]Record, error) {
	g.reset()

	var records []Record
	for _, doc := range g.Seeds {
		m := mutator.New(g.Alloc)
		for v := range m.Mutate(doc.Root) {
			if err := ctx.Err(); err != nil {
				return records, fmt.Errorf("generate %s: %w", doc.ID, err)
			}
			id, description := describe(doc.ID, v)
			r, ok := g.record(doc, id, description, v)
			if ok {
				records = append(records, r)
			}
		}

		id, description := describeReference(doc)
		if r, ok := g.record(doc, id, description, mutator.Variant{Root: doc.Root}); ok {
			records = append(records, r)
		}
	}
	return records, nil
}

func (g *Generator) record(doc seed.Document, id, description string, v mutator.Variant) (Record, bool) {
	key := dedupKey(description)
	if _, seen := g.descriptions[key]; seen {
		return Record{}, false
	}
	g.descriptions[key] = struct{}{}

	content := v.Root.XML(true)
	if _, seen := g.contents[content]; seen {
		return Record{}, false
	}
	g.contents[content] = struct{}{}

	n := g.counters[id]
	g.counters[id]++
	enumerated := strings.ReplaceAll(fmt.Sprintf("%s-%d", id, n), ":", "")

	validity := map[string]string{}
	if g.Validator != nil {
		validity = g.Validator.Check(content, "core", doc.Spec)
	}

	return Record{
		ID:          enumerated,
		Description: description,
		Seed:        doc.ID,
		Spec:        doc.Spec,
		Type: taxonomy.Classify(taxonomy.Subject{
			ID:          id,
			Description: description,
			Variant:     v,
			Validity:    validity,
		}),
		Content:  content,
		Path:     filepath.Join(g.Root, doc.Name()+ModelsSuffix, enumerated+".model"),
		Validity: validity,
		Kind:     v.Info.Kind,
	}, true
}
