package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/logger"
)

// WriteReport lists the outcome of Write.
type WriteReport struct {
	Written []string
	Failed  map[string]error
}

// Write stores every record at its path. A failing file is logged and
// skipped; the remaining records are still written.
func Write(records []Record, events *logger.EventLogger) WriteReport {
	report := WriteReport{Failed: make(map[string]error)}
	for _, r := range records {
		if err := writeFile(r.Path, r.Content); err != nil {
			report.Failed[r.Path] = err
			_ = events.Log(logger.Event{
				Event:  logger.EventWriteFailed,
				Seed:   r.Seed,
				TestID: r.ID,
				Path:   r.Path,
				Error:  err.Error(),
			})
			continue
		}
		report.Written = append(report.Written, r.Path)
		_ = events.Log(logger.Event{
			Event:    logger.EventGenerated,
			Seed:     r.Seed,
			TestID:   r.ID,
			Type:     r.Type,
			Path:     r.Path,
			Validity: r.Validity,
		})
	}
	return report
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Diff compares the reported .model paths with the .model files found in
// the folders they live in. Missing files were reported but are not on
// disk; unexpected files are on disk but were not reported, usually left
// over from an earlier run.
func Diff(reported []string) (missing, unexpected []string, err error) {
	want := make(map[string]bool, len(reported))
	dirs := make(map[string]bool)
	for _, p := range reported {
		p = filepath.Clean(p)
		want[p] = true
		dirs[filepath.Dir(p)] = true
	}

	have := make(map[string]bool)
	for dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("read %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".model") {
				have[filepath.Join(dir, e.Name())] = true
			}
		}
	}

	for p := range want {
		if !have[p] {
			missing = append(missing, p)
		}
	}
	for p := range have {
		if !want[p] {
			unexpected = append(unexpected, p)
		}
	}
	slices.Sort(missing)
	slices.Sort(unexpected)
	return missing, unexpected, nil
}

// Prune removes the unexpected files reported by Diff.
func Prune(paths []string) error {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale %s: %w", p, err)
		}
	}
	return nil
}

// Relative rewrites path relative to root with forward slashes, as used by
// object keys.
func Relative(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside %s: %w", path, root, fs.ErrInvalid)
	}
	return filepath.ToSlash(rel), nil
}
