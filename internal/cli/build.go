package cli

import (
	"fmt"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/config"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/description"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/opc"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Package the test case tree into .3mf archives",
	Long: `Rebuild the output directory from <data>/testcases. Folders ending in
.3mf become one archive, .3mf_models folders become one archive per model
file, .3mf_rels folders one archive per relationship file and .ignore
folders are skipped. Afterwards the "created" flag of every description
entry is updated.

  tmfgen build`,
	RunE: buildCommand,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func buildCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	report, err := build(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Built %d files into %s\n", len(report.Reported), cfg.BuildDir)
	return nil
}

func build(cfg *config.Config) (opc.Report, error) {
	report, buildErr := opc.Build(cfg.TestcaseDir, cfg.BuildDir)
	if buildErr != nil && len(report.Failed) == 0 {
		return report, fmt.Errorf("failed to build test files: %w", buildErr)
	}
	for path, err := range report.Failed {
		warnf("could not package %s: %v", path, err)
	}
	for _, p := range report.Missing {
		warnf("reported but not built: %s", p)
	}
	for _, p := range report.Unexpected {
		warnf("built but not reported: %s", p)
	}

	ix, err := description.Open(cfg.DescriptionDir)
	if err != nil {
		return report, fmt.Errorf("failed to open descriptions: %w", err)
	}
	if err := ix.MarkCreated(cfg.BuildDir); err != nil {
		return report, err
	}
	if err := ix.Save(); err != nil {
		return report, fmt.Errorf("failed to save descriptions: %w", err)
	}
	if buildErr != nil {
		return report, fmt.Errorf("%d files could not be built: %w", len(report.Failed), buildErr)
	}
	return report, nil
}
