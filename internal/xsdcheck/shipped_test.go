package xsdcheck

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/seed"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/taxonomy"
)

func shippedChecker(t *testing.T) *Checker {
	t.Helper()
	c := New(filepath.Join("..", "..", "data", "xsd"))
	require.ElementsMatch(t, []string{"core", "materials", "production", "slice"}, c.Specs())
	return c
}

func TestShippedSchemas_AcceptSeeds(t *testing.T) {
	c := shippedChecker(t)
	for _, doc := range seed.All() {
		t.Run(doc.ID, func(t *testing.T) {
			validity := c.Check(doc.Root.XML(true), "core", doc.Spec)
			assert.True(t, taxonomy.Conforms(validity), "%v", validity)
			assert.Equal(t, Valid, validity[doc.Spec])
		})
	}
}

func TestShippedSchemas_CoreRejectsMaterialsSeed(t *testing.T) {
	c := shippedChecker(t)
	doc, ok := seed.Lookup("M")
	require.True(t, ok)

	validity := c.Check(doc.Root.XML(true), "core", "materials")
	assert.True(t, strings.HasPrefix(validity["core"], Invalid3MF), "core: %s", validity["core"])
	assert.Equal(t, Valid, validity["materials"])
	assert.False(t, AllValid(validity))
	assert.True(t, taxonomy.Conforms(validity))
}

func TestShippedSchemas_RejectBrokenDocument(t *testing.T) {
	c := shippedChecker(t)
	doc, _ := seed.Lookup("C")
	xml := doc.Root.XML(true)
	broken := strings.Replace(xml, `unit="millimeter"`, `unit="kilometer"`, 1)
	require.NotEqual(t, xml, broken)

	assert.True(t, strings.HasPrefix(c.Check(broken, "core")["core"], Invalid3MF))
	assert.Equal(t, InvalidXML, c.Check(xml[:len(xml)/2], "core")["core"])
}
