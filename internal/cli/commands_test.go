package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/logger"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/taxonomy"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/xsdcheck"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path     string
		expected []int
		wantErr  bool
	}{
		{"", nil, false},
		{"0", []int{0}, false},
		{"0.2.10", []int{0, 2, 10}, false},
		{"0.x", nil, true},
		{"-1", nil, true},
		{"1..2", nil, true},
	}
	for _, tc := range tests {
		got, err := parsePath(tc.path)
		if (err != nil) != tc.wantErr {
			t.Errorf("parsePath(%q): error = %v, wantErr %v", tc.path, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("parsePath(%q) = %v, expected %v", tc.path, got, tc.expected)
		}
	}
}

func TestInspect(t *testing.T) {
	var buf bytes.Buffer
	if err := inspect(&buf, "c", "", false); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`) || !strings.Contains(out, "<model") {
		t.Errorf("expected a model document, got:\n%s", out)
	}

	buf.Reset()
	if err := inspect(&buf, "C", "0", false); err != nil {
		t.Fatalf("inspect subtree failed: %v", err)
	}
	if strings.Contains(buf.String(), "<?xml") {
		t.Error("subtrees are printed without declaration")
	}

	buf.Reset()
	if err := inspect(&buf, "M", "", true); err != nil {
		t.Fatalf("inspect --dump failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Attributes") {
		t.Errorf("dump should list node fields, got:\n%s", buf.String())
	}
}

func TestInspect_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := inspect(&buf, "XX", "", false); err == nil {
		t.Error("expected an error for an unknown model")
	}
	if err := inspect(&buf, "C", "99", false); err == nil {
		t.Error("expected an error for a path outside the tree")
	}
}

func TestInspectDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := inspectDefault(&buf, "object", "production", false); err != nil {
		t.Fatalf("inspectDefault failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<object ") || !strings.Contains(out, "p:UUID=") {
		t.Errorf("expected an object with p:UUID, got:\n%s", out)
	}

	buf.Reset()
	if err := inspectDefault(&buf, "model", "core", false); err != nil {
		t.Fatalf("inspectDefault failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Error("a default model is printed as a document")
	}

	buf.Reset()
	if err := inspectDefault(&buf, "m:colorgroup", "materials", true); err != nil {
		t.Fatalf("inspectDefault --dump failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Children") {
		t.Errorf("dump should list node fields, got:\n%s", buf.String())
	}

	if err := inspectDefault(&buf, "colorgroup", "materials", false); err == nil {
		t.Error("expected an error for an unqualified extension tag")
	}
}

func TestFilterEvents(t *testing.T) {
	events := []logger.Event{
		{Event: logger.EventRunStarted, RunID: "r1"},
		{Event: logger.EventGenerated, RunID: "r1", TestID: "GEN-C-AR-OBJECT-ID-0"},
		{Event: logger.EventWriteFailed, RunID: "r1", TestID: "GEN-M-CR-BASE-0"},
		{Event: logger.EventGenerated, RunID: "r2", TestID: "GEN-C-AR-OBJECT-ID-0"},
	}

	tests := []struct {
		name     string
		event    string
		run      string
		test     string
		expected int
	}{
		{"no filter", "", "", "", 4},
		{"event", "GENERATED", "", "", 2},
		{"run", "", "r1", "", 3},
		{"test prefix", "", "", "gen-c-ar", 2},
		{"combined", "generated", "r2", "GEN-C", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := filterEvents(events, tc.event, tc.run, tc.test)
			if len(got) != tc.expected {
				t.Errorf("got %d events, expected %d", len(got), tc.expected)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	events := []logger.Event{
		{Timestamp: "2026-01-01T10:00:00Z", Event: logger.EventRunStarted, RunID: "r1"},
		{Timestamp: "2026-01-01T10:00:01Z", Event: logger.EventGenerated, RunID: "r1", Validity: map[string]string{"core": "Valid"}},
		{Timestamp: "2026-01-01T10:00:02Z", Event: logger.EventGenerated, RunID: "r1", Validity: map[string]string{"core": "Invalid XML"}},
		{Timestamp: "2026-01-01T10:00:03Z", Event: logger.EventMissing, RunID: "r1"},
		{Timestamp: "2026-01-02T10:00:00Z", Event: logger.EventRunStarted, RunID: "r2"},
	}

	runs := summarize(events)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].counts[logger.EventGenerated] != 2 || runs[0].conformed != 1 {
		t.Errorf("run r1: %d generated, %d conformed", runs[0].counts[logger.EventGenerated], runs[0].conformed)
	}
	if runs[0].last != "2026-01-01T10:00:03Z" {
		t.Errorf("run r1 ends at %s", runs[0].last)
	}

	var buf bytes.Buffer
	printSummary(&buf, events)
	for _, want := range []string{"Total events:    5", "Run r1", "Generated:     2 (1 schema valid)", "Missing:       1", "Run r2"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestPrintEvents(t *testing.T) {
	var buf bytes.Buffer
	printEvents(&buf, []logger.Event{{
		Timestamp: "not a time",
		Event:     logger.EventWriteFailed,
		TestID:    "GEN-C-AR-OBJECT-ID-0",
		Path:      "/tmp/x.model",
		Validity:  map[string]string{"slice": "Valid", "core": "Invalid XML"},
		Error:     "disk full",
	}})
	out := buf.String()
	for _, want := range []string{"not a time", "GEN-C-AR-OBJECT-ID-0", "Path: /tmp/x.model", "Error: disk full"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "core:") > strings.Index(out, "slice:") {
		t.Error("validity not sorted by specification")
	}
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "a.model")
	if err := os.WriteFile(model, []byte("<model />"), 0644); err != nil {
		t.Fatal(err)
	}
	checker := xsdcheck.New(filepath.Join(dir, "xsd"))

	var buf bytes.Buffer
	failed, err := validateFiles(&buf, checker, []string{"core"}, []string{model})
	if err != nil {
		t.Fatalf("validateFiles failed: %v", err)
	}
	if failed != 1 {
		t.Errorf("got %d failures, expected 1 without schemas", failed)
	}
	if !strings.Contains(buf.String(), "core:") || !strings.Contains(buf.String(), xsdcheck.Invalid3MF) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	if _, err := validateFiles(&buf, checker, []string{"core"}, []string{filepath.Join(dir, "missing.model")}); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSelftest_WithoutSchemas(t *testing.T) {
	var buf bytes.Buffer
	passed, total := selftest(&buf, xsdcheck.New(t.TempDir()))

	// six reference models, four catalogs and six mutator runs; schema
	// checks are skipped
	if total != 16 {
		t.Errorf("got %d checks, expected 16", total)
	}
	if passed != total {
		t.Errorf("%d/%d checks passed:\n%s", passed, total, buf.String())
	}
	if !strings.Contains(buf.String(), "skipped, no schema for core") {
		t.Error("schema checks should be reported as skipped")
	}
}

func TestSelftest_ShippedSchemas(t *testing.T) {
	checker := xsdcheck.New(filepath.Join("..", "..", "data", "xsd"))
	if len(checker.Specs()) != 4 {
		t.Fatalf("expected the four shipped schemas, got %v", checker.Specs())
	}

	var buf bytes.Buffer
	passed, total := selftest(&buf, checker)
	if total != 22 {
		t.Errorf("got %d checks, expected 22", total)
	}
	if passed != total {
		t.Errorf("%d/%d checks passed:\n%s", passed, total, buf.String())
	}
	// core rejects the materials reference, the materials schema decides
	if !strings.Contains(buf.String(), "materials: Valid") {
		t.Errorf("materials reference not accepted by its schema:\n%s", buf.String())
	}
}

func TestPrintCounts(t *testing.T) {
	o := taxonomy.BuildOverview(taxonomy.Default(), []taxonomy.Test{
		{ID: "GEN-C-AR-OBJECT-ID-0", Type: taxonomy.TagReferencedObjectBroken},
		{ID: "R-SPEC-C-0", Type: taxonomy.TagReference},
	})
	var buf bytes.Buffer
	printCounts(&buf, o)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[0], "Reference ") || !strings.HasSuffix(lines[0], " 1") {
		t.Errorf("first line: %q", lines[0])
	}
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "    Referenced Object Broken") && strings.HasSuffix(l, " 1") {
			found = true
		}
	}
	if !found {
		t.Errorf("nested type missing or not indented:\n%s", buf.String())
	}
}

func TestSetup(t *testing.T) {
	cfg := testConfig(t)
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	if err := setup(&buf, cfg, true); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	for _, dir := range []string{cfg.XSDDir, cfg.GeneratedDir, cfg.DescriptionDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("%s not created", dir)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.DescriptionDir, "03_3mf-mutated.yaml")); err != nil {
		t.Error("description files not created")
	}
	env := readFile(t, ".env")
	if !strings.Contains(env, "TMF_S3_ENDPOINT=") {
		t.Errorf("unexpected .env template:\n%s", env)
	}

	if err := os.WriteFile(".env", []byte("KEEP=1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := setup(&buf, cfg, true); err != nil {
		t.Fatalf("second setup failed: %v", err)
	}
	if readFile(t, ".env") != "KEEP=1\n" {
		t.Error("existing .env overwritten")
	}
}

func TestPrintStatus(t *testing.T) {
	cfg := testConfig(t)
	var buf bytes.Buffer
	printStatus(&buf, cfg)
	out := buf.String()
	for _, want := range []string{"no 3mf-*.xsd files", "(not generated)", "not yet created"} {
		if !strings.Contains(out, want) {
			t.Errorf("status missing %q:\n%s", want, out)
		}
	}

	if err := setup(&bytes.Buffer{}, cfg, false); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.LogPath, []byte(`{"event":"run_finished","run_id":"r1","count":7}`+"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	printStatus(&buf, cfg)
	for _, want := range []string{"03_3mf-mutated.yaml", "Last run: r1", "7 files"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("status missing %q:\n%s", want, buf.String())
		}
	}
}
