package element

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/simpletype"
)

func TestCreate_ValidForEveryKind(t *testing.T) {
	for ext := Extensions(0); ext <= extAll; ext++ {
		for k := Kind(1); int(k) < KindTotal; k++ {
			n := Create(k, ext)
			require.NotNil(t, n)
			assert.Equal(t, k, n.Kind)
			assert.Empty(t, n.Validate(), "Create(%s, %s) is not valid", k, ext)
		}
	}
}

func TestKindByTag(t *testing.T) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		got, ok := KindByTag(k.Tag())
		require.True(t, ok, "no kind for tag %q", k.Tag())
		assert.Equal(t, k, got)
	}
	_, ok := KindByTag("m:unknown")
	assert.False(t, ok)
	assert.Equal(t, "colorgroup", KindColorGroup.LocalName())
}

func TestSchemaFor_Extensions(t *testing.T) {
	core := SchemaFor(KindObject, 0)
	_, ok := core.Attribute("p:UUID")
	assert.False(t, ok)

	prod := SchemaFor(KindObject, ExtProduction)
	rule, ok := prod.Attribute("p:UUID")
	require.True(t, ok)
	assert.True(t, rule.Required)
	assert.Equal(t, simpletype.KindUUID, rule.Kind)

	// Same pointer for the same inputs, different schema per extension set.
	assert.Same(t, core, SchemaFor(KindObject, 0))
	assert.NotSame(t, core, prod)

	assert.Equal(t, -1, SchemaFor(KindResources, 0).Group(KindColorGroup))
	assert.GreaterOrEqual(t, SchemaFor(KindResources, ExtMaterials).Group(KindColorGroup), 0)
}

func TestValidate_Breaches(t *testing.T) {
	tests := []struct {
		name   string
		node   func() *Node
		wantID string
	}{
		{
			name:   "text not allowed",
			node:   func() *Node { return Create(KindBase, 0).WithText("x") },
			wantID: "BDAAVBTIO",
		},
		{
			name: "children not allowed",
			node: func() *Node {
				return Create(KindVertex, 0).Append(Create(KindVertex, 0))
			},
			wantID: "VDACBTAS",
		},
		{
			name: "unknown attribute",
			node: func() *Node {
				n := Create(KindBase, 0)
				n.Attributes = append(n.Attributes, Attribute{Name: "foo", Value: simpletype.String("bar")})
				return n
			},
			wantID: "FINAAAIB",
		},
		{
			name: "missing required attribute",
			node: func() *Node {
				n := Create(KindBase, 0)
				n.Attributes = n.Attributes[1:]
				return n
			},
			wantID: "RANIMIB",
		},
		{
			name: "invalid attribute value",
			node: func() *Node {
				n := Create(KindBase, 0)
				n.SetAttr("displaycolor", simpletype.Color("black"))
				return n
			},
			wantID: "AVBOBSBVBI",
		},
		{
			name: "duplicate attribute",
			node: func() *Node {
				n := Create(KindColor, 0)
				n.Attributes = append(n.Attributes, n.Attributes[0])
				return n
			},
			wantID: "DAIM",
		},
		{
			name: "too few children",
			node: func() *Node {
				n := Create(KindVertices, 0)
				n.Children = n.Children[:2]
				return n
			},
			wantID: "COTVOTBIOAT",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.node()
			breaches := n.Validate()
			require.NotEmpty(t, breaches)
			assert.Equal(t, tc.wantID, breaches[0].ID, breaches[0].Description)
			assert.False(t, n.Valid())

			err := Check(n)
			var be *BreachError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, breaches[0], be.Breach)
		})
	}
}

func TestValidate_InvalidChildReportedAtParent(t *testing.T) {
	mesh := Create(KindMesh, 0)
	mesh.Children[0].Children = mesh.Children[0].Children[:1]

	breaches := mesh.Validate()
	require.Len(t, breaches, 1)
	assert.Equal(t, "Child <vertices> of <mesh> should be valid, but isn't", breaches[0].Description)
}

func TestValidate_WrongAttributeKind(t *testing.T) {
	n := Create(KindTriangle, 0)
	n.Attributes = append(n.Attributes, Attribute{Name: "pid", Value: simpletype.ResourceIndex("1")})

	breaches := n.Validate()
	require.Len(t, breaches, 1)
	assert.Contains(t, breaches[0].Description, "pid should be instance KindResourceID")
}

func TestXML(t *testing.T) {
	n := New(KindColorGroup, ExtMaterials, "id", "18").Append(
		New(KindColor, ExtMaterials, "color", "#00205b"),
	)

	want := `<?xml version="1.0" encoding="utf-8"?>
<m:colorgroup id="18">
    <m:color color="#00205b" />
</m:colorgroup>
`
	assert.Equal(t, want, n.XML(true))
	assert.False(t, strings.HasPrefix(n.XML(false), "<?xml"))
}

func TestXML_Text(t *testing.T) {
	single := New(KindMetadata, 0, "name", "Title").WithText("Pyramids and Cubes")
	assert.Equal(t, "<metadata name=\"Title\">Pyramids and Cubes</metadata>\n", single.XML(false))

	group := New(KindMetadataGroup, 0).Append(Create(KindMetadata, 0))
	want := `<metadatagroup>
    <metadata name="Designer">
        Jost
        Rossel
    </metadata>
</metadatagroup>
`
	assert.Equal(t, want, group.XML(false))
}

func TestXML_SelfClosingWhenEmpty(t *testing.T) {
	n := New(KindColorGroup, ExtMaterials, "id", "18")
	assert.Equal(t, "<m:colorgroup id=\"18\" />\n", n.XML(false))
}

func TestXML_NoEscaping(t *testing.T) {
	n := New(KindBase, 0, "name", `a"<b`, "displaycolor", "#000000")
	assert.Equal(t, "<base name=\"a\"<b\" displaycolor=\"#000000\" />\n", n.XML(false))
}

func TestClone_IsDeep(t *testing.T) {
	orig := Create(KindObject, 0)
	c := orig.Clone()
	c.Attributes[0].Value.Raw = "99"
	c.Children[0].Children[0].Children = nil

	v, _ := orig.Attr("id")
	assert.Equal(t, "1", v.Raw)
	assert.Len(t, orig.Children[0].Children[0].Children, 4)
}

func TestWalkAndAt(t *testing.T) {
	m := Create(KindModel, 0)
	var paths [][]int
	m.Walk(func(path []int, n *Node) bool {
		if n.Kind == KindTriangle {
			paths = append(paths, append([]int(nil), path...))
		}
		return true
	})
	require.Len(t, paths, 4)
	assert.Equal(t, KindTriangle, m.At(paths[2]).Kind)
	assert.Nil(t, m.At([]int{9, 9}))
	assert.Equal(t, 4, m.Count(KindVertex))
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, "core", Extensions(0).String())
	assert.Equal(t, "materials+slice", (ExtMaterials | ExtSlice).String())
	assert.Equal(t, ExtSlice, ExtensionsFor("slice"))
	assert.Equal(t, Extensions(0), ExtensionsFor("core"))
}
