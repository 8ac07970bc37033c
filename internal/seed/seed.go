// Package seed holds the hand written reference documents every mutation
// run starts from.
package seed

import (
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/element"
)

// Document is one reference model together with the specification it
// exercises.
type Document struct {
	ID        string
	Spec      string
	Directory string
	Root      *element.Node
}

// Name is the stem of the output directory, "<Name>.3mf_models".
func (d Document) Name() string {
	if d.Directory != "" {
		return d.Directory
	}
	return d.Spec
}

type entry struct {
	id, spec, directory string
	build               func() *element.Node
}

var registry = []entry{
	{"C", "core", "", core},
	{"CM", "core", "", coreMetadata},
	{"M", "materials", "", materials},
	{"P", "production", "", production},
	{"SI", "slice", "slice-internal", sliceInternal},
	{"SE", "slice", "slice-external", sliceExternal},
}

// All returns every reference document in registry order. Trees are built
// on each call, so callers may modify them freely.
func All() []Document {
	docs := make([]Document, 0, len(registry))
	for _, e := range registry {
		docs = append(docs, e.document())
	}
	return docs
}

// Lookup returns the document registered under id.
func Lookup(id string) (Document, bool) {
	for _, e := range registry {
		if strings.EqualFold(e.id, id) {
			return e.document(), true
		}
	}
	return Document{}, false
}

// IDs lists the registered document ids.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, e := range registry {
		ids[i] = e.id
	}
	return ids
}

func (e entry) document() Document {
	return Document{ID: e.id, Spec: e.spec, Directory: e.directory, Root: e.build()}
}

// builder creates nodes with one extension set.
type builder struct {
	ext element.Extensions
}

func (b builder) el(kind element.Kind, pairs ...string) *element.Node {
	return element.New(kind, b.ext, pairs...)
}

func (b builder) model(extra ...string) *element.Node {
	pairs := []string{"xmlns", element.NamespaceCore}
	pairs = append(pairs, extra...)
	return b.el(element.KindModel, pairs...)
}

func (b builder) metadata(name, value string) *element.Node {
	return b.el(element.KindMetadata, "name", name).WithText(value)
}

func (b builder) base(name, color string) *element.Node {
	return b.el(element.KindBase, "name", name, "displaycolor", color)
}

func (b builder) mesh(vertices [][3]string, triangles []string) *element.Node {
	vs := b.el(element.KindVertices)
	for _, v := range vertices {
		vs.Append(b.el(element.KindVertex, "x", v[0], "y", v[1], "z", v[2]))
	}
	ts := b.el(element.KindTriangles)
	for _, t := range triangles {
		ts.Append(b.triangle(t))
	}
	return b.el(element.KindMesh).Append(vs, ts)
}

// triangle parses "v1 v2 v3 [name=value ...]".
func (b builder) triangle(spec string) *element.Node {
	fields := strings.Fields(spec)
	pairs := []string{"v1", fields[0], "v2", fields[1], "v3", fields[2]}
	for _, f := range fields[3:] {
		name, value, _ := strings.Cut(f, "=")
		pairs = append(pairs, name, value)
	}
	return b.el(element.KindTriangle, pairs...)
}

func (b builder) components(pairs ...[]string) *element.Node {
	c := b.el(element.KindComponents)
	for _, p := range pairs {
		c.Append(b.el(element.KindComponent, p...))
	}
	return c
}

var (
	cubeVertices = [][3]string{
		{"0", "42.998", "39.998"},
		{"39.998", "42.998", "39.998"},
		{"0", "82.998", "39.998"},
		{"39.998", "82.998", "0"},
		{"0", "42.998", "0"},
		{"0", "82.998", "0"},
		{"39.998", "42.998", "0"},
		{"39.998", "82.998", "39.998"},
	}
	cubeTriangles = []string{
		"0 1 2", "3 4 5", "4 3 6", "7 2 1", "4 6 1", "4 2 5",
		"7 1 6", "5 2 7", "4 0 2", "6 3 7", "1 0 4", "7 3 5",
	}

	pyramidVertices = [][3]string{
		{"42.998", "42.998", "0"},
		{"82.998", "42.998", "0"},
		{"63", "63", "60"},
		{"42.998", "82.998", "0"},
		{"82.998", "82.998", "0"},
	}
	pyramidTriangles = []string{"0 1 2", "3 1 0", "0 2 3", "1 4 2", "4 3 2", "4 1 3"}
)

const (
	cubeTransform    = "1 0 0 0 1 0 0 0 1 0.00100527 -42.998 0"
	pyramidTransform = "1 0 0 0 1 0 0 0 1 -42.998 -42.998 39.998"
)
