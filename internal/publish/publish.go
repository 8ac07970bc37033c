package publish

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/logger"
)

// Sink receives published files.
type Sink interface {
	Put(ctx context.Context, runID, relPath string, content []byte) error
}

// File is one local file and the key it is published under.
type File struct {
	Local   string
	RelPath string
}

// Lister is implemented by sinks that can enumerate what a run stored.
type Lister interface {
	List(ctx context.Context, runID string) ([]string, error)
}

// Result counts published and failed files. Missing holds the relative
// paths that were uploaded but are not listed by the sink afterwards.
type Result struct {
	Published int
	Failed    int
	Missing   []string
}

// Files uploads every file to sink. A failing file is logged and skipped.
// Cancelling ctx stops the upload between files.
func Files(ctx context.Context, sink Sink, runID string, files []File, events *logger.EventLogger) (Result, error) {
	var res Result
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		err := put(ctx, sink, runID, f)
		if err != nil {
			res.Failed++
			_ = events.Log(logger.Event{
				Event: logger.EventPublishFailed,
				RunID: runID,
				Path:  f.RelPath,
				Error: err.Error(),
			})
			continue
		}
		res.Published++
	}
	_ = events.Log(logger.Event{Event: logger.EventPublished, RunID: runID, Count: res.Published})
	return res, nil
}

// Verify lists the objects stored for runID and returns the relative paths
// of files that are absent. Every absent file is logged as a failed
// publish.
func Verify(ctx context.Context, lister Lister, runID string, files []File, events *logger.EventLogger) ([]string, error) {
	stored, err := lister.List(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("list run %s: %w", runID, err)
	}
	slices.Sort(stored)

	var missing []string
	for _, f := range files {
		if _, found := slices.BinarySearch(stored, f.RelPath); found {
			continue
		}
		missing = append(missing, f.RelPath)
		_ = events.Log(logger.Event{
			Event: logger.EventPublishFailed,
			RunID: runID,
			Path:  f.RelPath,
			Error: "object not listed after upload",
		})
	}
	return missing, nil
}

func put(ctx context.Context, sink Sink, runID string, f File) error {
	content, err := os.ReadFile(f.Local)
	if err != nil {
		return err
	}
	return sink.Put(ctx, runID, f.RelPath, content)
}

// RunID names a run by its UTC start time.
func RunID(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
