// Package config resolves the directories and credentials a run uses.
// Values come from flags, then TMF_* environment variables (a .env file in
// the working directory is loaded first), then defaults relative to the
// data root.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultDataDir  = "data"
	DefaultBuildDir = "build"
	DefaultLogFile  = "events.jsonl"
	DefaultBucket   = "tmf-corpus"
	DefaultRegion   = "us-east-1"
)

type Config struct {
	DataDir        string
	XSDDir         string
	DescriptionDir string
	// TestcaseDir is the source tree the build step packages.
	TestcaseDir string
	// GeneratedDir receives the <name>.3mf_models folders.
	GeneratedDir string
	BuildDir     string
	LogPath      string
	Publish      PublishConfig
}

// PublishConfig describes the optional S3 compatible mirror of the corpus.
type PublishConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load builds the configuration. Empty arguments fall back to the
// environment and then to defaults.
func Load(dataDir, xsdDir, logPath string) (*Config, error) {
	_ = godotenv.Load()

	dataDir = firstNonEmpty(dataDir, env("TMF_DATA_DIR"), DefaultDataDir)
	testcases := filepath.Join(dataDir, "testcases")

	cfg := &Config{
		DataDir:        dataDir,
		XSDDir:         firstNonEmpty(xsdDir, env("TMF_XSD_DIR"), filepath.Join(dataDir, "xsd")),
		DescriptionDir: firstNonEmpty(env("TMF_DESCRIPTION_DIR"), filepath.Join(dataDir, "description")),
		TestcaseDir:    testcases,
		GeneratedDir:   firstNonEmpty(env("TMF_GENERATED_DIR"), filepath.Join(testcases, "generated")),
		BuildDir:       firstNonEmpty(env("TMF_BUILD_DIR"), DefaultBuildDir),
		LogPath:        firstNonEmpty(logPath, env("TMF_LOG_FILE"), filepath.Join(dataDir, "logs", DefaultLogFile)),
		Publish:        loadPublishConfig(),
	}

	if err := ensureDir(filepath.Dir(cfg.LogPath)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadPublishConfig() PublishConfig {
	endpoint := env("TMF_S3_ENDPOINT")
	return PublishConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(env("TMF_S3_REGION"), DefaultRegion),
		AccessKey: firstNonEmpty(env("TMF_S3_ACCESS_KEY"), env("MINIO_ROOT_USER")),
		SecretKey: firstNonEmpty(env("TMF_S3_SECRET_KEY"), env("MINIO_ROOT_PASSWORD")),
		Bucket:    firstNonEmpty(env("TMF_S3_BUCKET"), DefaultBucket),
		UseSSL:    parseBool(env("TMF_S3_USE_SSL"), true),
	}
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func parseBool(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}
