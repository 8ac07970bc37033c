package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/config"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/corpus"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/description"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/logger"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/publish"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/seed"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/xsdcheck"
	"github.com/spf13/cobra"
)

var (
	generateSeeds   []string
	generatePrune   bool
	generatePublish bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the mutated model corpus and update the test descriptions",
	Long: `Run the mutator over every reference model, write one .model file per
variant into <data>/testcases/generated/<name>.3mf_models/ and upsert the
matching entries in <data>/description/.

Examples:
  tmfgen generate                 # All reference models
  tmfgen generate --seed C --seed M
  tmfgen generate --prune         # Remove .model files left over from older runs
  tmfgen generate --publish       # Mirror the written files to $TMF_S3_ENDPOINT`,
	RunE: generateCommand,
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateSeeds, "seed", nil, "Reference model ids to mutate (default: all)")
	generateCmd.Flags().BoolVar(&generatePrune, "prune", false, "Delete unexpected .model files after writing")
	generateCmd.Flags().BoolVar(&generatePublish, "publish", false, "Upload written files to the configured S3 bucket")
	rootCmd.AddCommand(generateCmd)
}

type generateOptions struct {
	Seeds   []string
	Prune   bool
	Publish bool
	// Sink overrides the S3 sink built from the configuration.
	Sink publish.Sink
}

type generateSummary struct {
	RunID      string
	Records    int
	Written    int
	Failed     int
	Missing    []string
	Unexpected []string
	Removed    []string
	Published  publish.Result
}

func generateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summary, err := generate(cmd.Context(), cfg, generateOptions{
		Seeds:   generateSeeds,
		Prune:   generatePrune,
		Publish: generatePublish,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Run %s: %d test files generated, %d written", summary.RunID, summary.Records, summary.Written)
	if summary.Failed > 0 {
		fmt.Printf(", %d failed", summary.Failed)
	}
	fmt.Println()
	if len(summary.Removed) > 0 {
		fmt.Printf("Removed %d stale description entries\n", len(summary.Removed))
	}
	if generatePublish {
		fmt.Printf("Published %d files (%d failed)\n", summary.Published.Published, summary.Published.Failed)
		if n := len(summary.Published.Missing); n > 0 {
			return fmt.Errorf("%d published files are missing from the bucket", n)
		}
	}
	return nil
}

func generate(ctx context.Context, cfg *config.Config, opts generateOptions) (generateSummary, error) {
	summary := generateSummary{RunID: publish.RunID(time.Now())}

	events, err := logger.New(cfg.LogPath)
	if err != nil {
		warnf("event log disabled: %v", err)
	}
	defer events.Close()
	events.SetRun(summary.RunID)
	_ = events.Log(logger.Event{Event: logger.EventRunStarted})

	gen := corpus.New(cfg.GeneratedDir, xsdcheck.New(cfg.XSDDir))
	if len(opts.Seeds) > 0 {
		docs, err := selectSeeds(opts.Seeds)
		if err != nil {
			return summary, err
		}
		gen.Seeds = docs
	}

	records, err := gen.Run(ctx)
	if err != nil {
		return summary, err
	}
	summary.Records = len(records)

	report := corpus.Write(records, events)
	summary.Written = len(report.Written)
	summary.Failed = len(report.Failed)
	for path, err := range report.Failed {
		warnf("could not write %s: %v", path, err)
	}

	if err := checkOutput(records, opts.Prune, events, &summary); err != nil {
		warnf("%v", err)
	}

	ix, err := description.Open(cfg.DescriptionDir)
	if err != nil {
		return summary, fmt.Errorf("failed to open descriptions: %w", err)
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
		if err := ix.Upsert(description.Entry{
			ID:          r.ID,
			Description: r.Description,
			Validity:    r.Validity,
			Type:        r.Type,
		}); err != nil {
			return summary, err
		}
	}
	// A partial run does not know every id, so nothing is collected.
	if len(opts.Seeds) == 0 {
		summary.Removed = ix.GC(ids)
	}
	if err := ix.Save(); err != nil {
		return summary, fmt.Errorf("failed to save descriptions: %w", err)
	}

	if opts.Publish {
		res, err := publishCorpus(ctx, cfg, opts.Sink, summary.RunID, report.Written, events)
		if err != nil {
			return summary, err
		}
		summary.Published = res
	}

	_ = events.Log(logger.Event{Event: logger.EventRunFinished, Count: summary.Written})
	return summary, nil
}

func selectSeeds(ids []string) ([]seed.Document, error) {
	docs := make([]seed.Document, 0, len(ids))
	for _, id := range ids {
		doc, ok := seed.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown reference model %q (known: %v)", id, seed.IDs())
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// checkOutput compares the generated files with what is on disk and warns
// about the difference.
func checkOutput(records []corpus.Record, prune bool, events *logger.EventLogger, summary *generateSummary) error {
	reported := make([]string, 0, len(records))
	for _, r := range records {
		reported = append(reported, r.Path)
	}
	missing, unexpected, err := corpus.Diff(reported)
	if err != nil {
		return fmt.Errorf("could not compare output: %w", err)
	}
	summary.Missing = missing
	summary.Unexpected = unexpected

	for _, p := range missing {
		warnf("generated but not on disk: %s", p)
		_ = events.Log(logger.Event{Event: logger.EventMissing, Path: p})
	}
	for _, p := range unexpected {
		warnf("on disk but not generated: %s", p)
		_ = events.Log(logger.Event{Event: logger.EventUnexpected, Path: p})
	}
	if prune && len(unexpected) > 0 {
		return corpus.Prune(unexpected)
	}
	return nil
}

func publishCorpus(ctx context.Context, cfg *config.Config, sink publish.Sink, runID string, written []string, events *logger.EventLogger) (publish.Result, error) {
	if sink == nil {
		if !cfg.Publish.Enabled {
			return publish.Result{}, fmt.Errorf("publishing requires TMF_S3_ENDPOINT")
		}
		s3, err := publish.NewS3Sink(publish.S3Config{
			Endpoint:  cfg.Publish.Endpoint,
			Region:    cfg.Publish.Region,
			AccessKey: cfg.Publish.AccessKey,
			SecretKey: cfg.Publish.SecretKey,
			Bucket:    cfg.Publish.Bucket,
			UseSSL:    cfg.Publish.UseSSL,
		})
		if err != nil {
			return publish.Result{}, err
		}
		sink = s3
	}

	files := make([]publish.File, 0, len(written))
	for _, p := range written {
		rel, err := corpus.Relative(cfg.GeneratedDir, p)
		if err != nil {
			return publish.Result{}, err
		}
		files = append(files, publish.File{Local: p, RelPath: rel})
	}
	res, err := publish.Files(ctx, sink, runID, files, events)
	if err != nil {
		return res, err
	}

	lister, ok := sink.(publish.Lister)
	if !ok {
		return res, nil
	}
	res.Missing, err = publish.Verify(ctx, lister, runID, files, events)
	if err != nil {
		return res, err
	}
	for _, rel := range res.Missing {
		warnf("%s was uploaded but is not in the bucket", rel)
	}
	return res, nil
}
