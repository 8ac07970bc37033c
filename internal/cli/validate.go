package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/xsdcheck"
	"github.com/spf13/cobra"
)

var validateSpecs []string

var validateCmd = &cobra.Command{
	Use:   "validate <file.model>...",
	Short: "Check model files against the 3MF schemas",
	Long: `Validate model XML files against 3mf-<spec>.xsd from the schema directory.
Every outcome is one of "Valid", "Invalid XML" or "Invalid 3MF: <reason>".

Examples:
  tmfgen validate 3dmodel.model
  tmfgen validate --spec core --spec materials GEN-M-CRA-MCOLORGROUP-0.model
  tmfgen validate --spec all broken.model`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().StringSliceVar(&validateSpecs, "spec", []string{"core"}, `Specifications to check against ("all" for every schema found)`)
	rootCmd.AddCommand(validateCmd)
}

func validateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	checker := xsdcheck.New(cfg.XSDDir)

	specs := validateSpecs
	if slices.Contains(specs, "all") {
		specs = checker.Specs()
		if len(specs) == 0 {
			return fmt.Errorf("no 3mf-*.xsd files in %s", cfg.XSDDir)
		}
	}

	failed, err := validateFiles(os.Stdout, checker, specs, args)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}

func validateFiles(w io.Writer, checker *xsdcheck.Checker, specs, paths []string) (int, error) {
	failed := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return failed, fmt.Errorf("failed to read %s: %w", path, err)
		}
		validity := checker.Check(string(content), specs...)
		ok := xsdcheck.AllValid(validity)
		if !ok {
			failed++
		}

		fmt.Fprintf(w, "%s  %s\n", passIcon(ok), path)
		for _, spec := range specs {
			fmt.Fprintf(w, "     %-12s %s\n", spec+":", validity[spec])
		}
	}
	return failed, nil
}
