package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/description"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/taxonomy"
	"github.com/spf13/cobra"
)

var (
	overviewTypes  string
	overviewOutput string
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Summarize the described tests by attack type",
	Long: `Sort every test of the description index into the attack type tree and
print the number of tests per type. With --output the full markdown overview,
one table per type, is written to a file.

Examples:
  tmfgen overview
  tmfgen overview --output docs/tests-by-type.md
  tmfgen overview --types my-types.yaml`,
	RunE: overviewCommand,
}

func init() {
	overviewCmd.Flags().StringVar(&overviewTypes, "types", "", "Type catalog YAML (default: built-in catalog)")
	overviewCmd.Flags().StringVarP(&overviewOutput, "output", "o", "", "Write the markdown overview to this file")
	rootCmd.AddCommand(overviewCmd)
}

func overviewCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat := taxonomy.Default()
	if overviewTypes != "" {
		cat, err = taxonomy.LoadCatalog(overviewTypes)
		if err != nil {
			return fmt.Errorf("failed to load types: %w", err)
		}
	}

	ix, err := description.Open(cfg.DescriptionDir)
	if err != nil {
		return fmt.Errorf("failed to open descriptions: %w", err)
	}
	o := taxonomy.BuildOverview(cat, ix.Tests())

	if overviewOutput != "" {
		if err := os.WriteFile(overviewOutput, []byte(o.Markdown()), 0644); err != nil {
			return fmt.Errorf("failed to write overview: %w", err)
		}
		fmt.Printf("Overview written to %s\n", overviewOutput)
		return nil
	}
	printCounts(os.Stdout, o)
	return nil
}

func printCounts(w io.Writer, o taxonomy.Overview) {
	for _, c := range o.Counts() {
		name := c.Tag
		if i := strings.LastIndex(name, ", "); i >= 0 {
			name = name[i+2:]
		}
		fmt.Fprintf(w, "%s%-*s %5d\n", strings.Repeat("  ", c.Depth), 40-2*c.Depth, name, c.Tests)
	}
}
