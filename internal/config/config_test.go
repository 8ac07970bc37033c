package config

import (
	"os"
	"path/filepath"
	"testing"
)

var tmfVars = []string{
	"TMF_DATA_DIR", "TMF_XSD_DIR", "TMF_DESCRIPTION_DIR", "TMF_GENERATED_DIR", "TMF_BUILD_DIR",
	"TMF_LOG_FILE", "TMF_S3_ENDPOINT", "TMF_S3_REGION", "TMF_S3_ACCESS_KEY", "TMF_S3_SECRET_KEY",
	"TMF_S3_BUCKET", "TMF_S3_USE_SSL", "MINIO_ROOT_USER", "MINIO_ROOT_PASSWORD",
}

// isolate clears the TMF variables and moves into an empty directory so no
// .env file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for _, name := range tmfVars {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", "", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := map[string]string{
		"DataDir":        "data",
		"XSDDir":         filepath.Join("data", "xsd"),
		"DescriptionDir": filepath.Join("data", "description"),
		"GeneratedDir":   filepath.Join("data", "testcases", "generated"),
		"BuildDir":       "build",
		"LogPath":        filepath.Join("data", "logs", "events.jsonl"),
	}
	got := map[string]string{
		"DataDir":        cfg.DataDir,
		"XSDDir":         cfg.XSDDir,
		"DescriptionDir": cfg.DescriptionDir,
		"GeneratedDir":   cfg.GeneratedDir,
		"BuildDir":       cfg.BuildDir,
		"LogPath":        cfg.LogPath,
	}
	for k, v := range expected {
		if got[k] != v {
			t.Errorf("%s: got %q, expected %q", k, got[k], v)
		}
	}

	if cfg.Publish.Enabled {
		t.Error("publishing should be disabled without an endpoint")
	}
	if _, err := os.Stat(filepath.Join("data", "logs")); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestLoad_FlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("TMF_DATA_DIR", "/env/data")
	t.Setenv("TMF_XSD_DIR", "/env/xsd")

	cfg, err := Load("flagdata", "flagxsd", "logs/run.jsonl")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "flagdata" {
		t.Errorf("got DataDir %q, expected flagdata", cfg.DataDir)
	}
	if cfg.XSDDir != "flagxsd" {
		t.Errorf("got XSDDir %q, expected flagxsd", cfg.XSDDir)
	}
	if cfg.LogPath != "logs/run.jsonl" {
		t.Errorf("got LogPath %q, expected logs/run.jsonl", cfg.LogPath)
	}
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("TMF_DATA_DIR", "corpus")
	t.Setenv("TMF_S3_ENDPOINT", "minio.local:9000")
	t.Setenv("MINIO_ROOT_USER", "root")
	t.Setenv("TMF_S3_SECRET_KEY", "secret")
	t.Setenv("TMF_S3_USE_SSL", "false")

	cfg, err := Load("", "", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.XSDDir != filepath.Join("corpus", "xsd") {
		t.Errorf("got XSDDir %q", cfg.XSDDir)
	}

	p := cfg.Publish
	if !p.Enabled || p.Endpoint != "minio.local:9000" {
		t.Errorf("unexpected publish config: %+v", p)
	}
	if p.AccessKey != "root" || p.SecretKey != "secret" {
		t.Errorf("credentials not resolved: %q / %q", p.AccessKey, p.SecretKey)
	}
	if p.UseSSL {
		t.Error("expected UseSSL=false")
	}
	if p.Bucket != DefaultBucket || p.Region != DefaultRegion {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("TMF_BUILD_DIR")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TMF_BUILD_DIR=out\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("TMF_BUILD_DIR") })

	cfg, err := Load("", "", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BuildDir != "out" {
		t.Errorf("got BuildDir %q, expected value from .env", cfg.BuildDir)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw      string
		fallback bool
		expected bool
	}{
		{"", true, true},
		{"false", true, false},
		{"1", false, true},
		{"nope", false, false},
	}
	for _, tc := range tests {
		if got := parseBool(tc.raw, tc.fallback); got != tc.expected {
			t.Errorf("parseBool(%q, %v) = %v, expected %v", tc.raw, tc.fallback, got, tc.expected)
		}
	}
}
