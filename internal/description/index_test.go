package description

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func read(t *testing.T, dir, name string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func test(t *testing.T, content map[string]any, id string) map[string]any {
	t.Helper()
	tests, ok := content["tests"].(map[string]any)
	require.True(t, ok)
	entry, ok := tests[id].(map[string]any)
	require.True(t, ok, "missing %s", id)
	return entry
}

func TestOpen_CreatesMissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(dir)
	require.NoError(t, err)

	for _, name := range Files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "scope: TODO\n\ntests: {}\n", string(data))
	}
}

func TestUpsert_NewEntry(t *testing.T) {
	dir := t.TempDir()
	ix, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, ix.Upsert(Entry{
		ID: "GEN-CM-ADA-METADATA-NAME-0",
		Description: "Added valid attribute 'name' to 'metadata' with: 'Copyright'. " +
			"The name is duplicate, the attribute was added after the old attribute.",
		Validity: map[string]string{"core": "Invalid XML"},
		Type:     "UI Spoofing, Property Confusion, Property Duplication",
	}))
	require.NoError(t, ix.Save())

	entry := test(t, read(t, dir, "03_3mf-mutated.yaml"), "GEN-CM-ADA-METADATA-NAME-0")
	assert.Equal(t, "Added valid attribute 'name' to 'metadata' with: 'Copyright'", entry["name"])
	assert.Equal(t, true, entry["created"])
	assert.Equal(t, map[string]any{"core": "Invalid XML"}, entry["conforms_to_spec"])
	assert.Equal(t, "UI Spoofing, Property Confusion, Property Duplication", entry["type"])
	assert.Equal(t, "The name is duplicate, the attribute was added after the old attribute.", entry["further_infos"])
}

func TestUpsert_PreservesManualKeys(t *testing.T) {
	dir := t.TempDir()
	existing := `scope: Mutated models

tests:
  GEN-C-AR-OBJECT-ID-0:
    name: old name
    expected_behavior: Reject the file
    conforms_to_spec:
      core: Valid
      slice: Valid
    further_infos: Written by hand.
    notes: keep me
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "03_3mf-mutated.yaml"), []byte(existing), 0644))

	ix, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, ix.Upsert(Entry{
		ID:          "GEN-C-AR-OBJECT-ID-0",
		Description: "Removed attribute 'id' from 'object'",
		Validity:    map[string]string{"core": "Invalid 3MF: missing id"},
	}))
	require.NoError(t, ix.Save())

	content := read(t, dir, "03_3mf-mutated.yaml")
	assert.Equal(t, "Mutated models", content["scope"])
	entry := test(t, content, "GEN-C-AR-OBJECT-ID-0")
	assert.Equal(t, "Removed attribute 'id' from 'object'", entry["name"])
	assert.Equal(t, "Reject the file", entry["expected_behavior"])
	assert.Equal(t, "keep me", entry["notes"])
	assert.Equal(t, "Written by hand.", entry["further_infos"])
	assert.Equal(t, map[string]any{"core": "Invalid 3MF: missing id", "slice": "Valid"}, entry["conforms_to_spec"])
}

func TestUpsert_FurtherInfosAppended(t *testing.T) {
	dir := t.TempDir()
	ix, err := Open(dir)
	require.NoError(t, err)

	e := Entry{ID: "CS-1", Description: "Name. First detail"}
	require.NoError(t, ix.Upsert(e))
	require.NoError(t, ix.Upsert(e))
	e.Description = "Name. Second detail"
	require.NoError(t, ix.Upsert(e))
	require.NoError(t, ix.Save())

	entry := test(t, read(t, dir, "04_opc.yaml"), "CS-1")
	assert.Equal(t, "First detail\nSecond detail", entry["further_infos"])
}

func TestUpsert_XMLDefaultBehavior(t *testing.T) {
	dir := t.TempDir()
	ix, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, ix.Upsert(Entry{ID: "XML-DTD-1", Description: "External DTD"}))
	require.NoError(t, ix.Save())

	entry := test(t, read(t, dir, "02_xml.yaml"), "XML-DTD-1")
	assert.Equal(t, "Ignore DTD or Fail", entry["expected_behavior"])
}

func TestUpsert_UnknownCategory(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, ix.Upsert(Entry{ID: "FOO-1"}))
}

func TestGC(t *testing.T) {
	dir := t.TempDir()
	ix, err := Open(dir)
	require.NoError(t, err)
	for _, id := range []string{"GEN-B-0", "GEN-A-0", "GEN-STALE-0", "R-SPEC-C-0", "XML-1"} {
		require.NoError(t, ix.Upsert(Entry{ID: id, Description: id}))
	}

	removed := ix.GC([]string{"GEN-B-0", "GEN-A-0", "R-SPEC-C-0"})
	assert.Equal(t, []string{"GEN-STALE-0"}, removed)
	assert.Equal(t, []string{"GEN-A-0", "GEN-B-0"}, ix.IDs("03_3mf-mutated.yaml"))
	// no XML id in this run, so the XML file stays untouched
	assert.Equal(t, []string{"XML-1"}, ix.IDs("02_xml.yaml"))
	assert.Equal(t, []string{"R-SPEC-C-0"}, ix.IDs("00_3mf.yaml"))
}

func TestMarkCreated(t *testing.T) {
	dir := t.TempDir()
	build := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(build, "core"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(build, "core", "gen-c-ar-object-id-0.3mf"), nil, 0644))

	ix, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, ix.Upsert(Entry{ID: "GEN-C-AR-OBJECT-ID-0", Description: "x"}))
	require.NoError(t, ix.Upsert(Entry{ID: "GEN-C-AR-OBJECT-ID-1", Description: "y"}))
	require.NoError(t, ix.MarkCreated(build))
	require.NoError(t, ix.Save())

	content := read(t, dir, "03_3mf-mutated.yaml")
	assert.Equal(t, true, test(t, content, "GEN-C-AR-OBJECT-ID-0")["created"])
	assert.Equal(t, false, test(t, content, "GEN-C-AR-OBJECT-ID-1")["created"])
}

func TestTests(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, ix.Upsert(Entry{ID: "R-SPEC-C-0", Description: "Full/Reference model", Type: "Reference"}))
	require.NoError(t, ix.Upsert(Entry{ID: "GEN-C-CRA-BUILD-0", Description: "Removed all children from 'build'"}))

	tests := ix.Tests()
	require.Len(t, tests, 2)
	assert.Equal(t, "R-SPEC-C-0", tests[0].ID)
	assert.Equal(t, "Reference", tests[0].Type)
	assert.Equal(t, "Removed all children from 'build'", tests[1].Name)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		valid bool
	}{
		{"stem", stem, true},
		{"null entry", "scope: x\ntests:\n  GEN-1:\n", true},
		{"missing scope", "tests: {}\n", false},
		{"created not bool", "scope: x\ntests:\n  GEN-1:\n    created: maybe\n", false},
		{"conforms not mapping", "scope: x\ntests:\n  GEN-1:\n    conforms_to_spec: Valid\n", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var doc yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tc.yaml), &doc))
			err := Check(&doc)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOpen_RejectsNonMapping(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00_3mf.yaml"), []byte("- a\n- b\n"), 0644))
	_, err := Open(dir)
	assert.Error(t, err)
}
