package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	dataDir string
	xsdDir  string
	logPath string
)

var rootCmd = &cobra.Command{
	Use:   "tmfgen",
	Short: "tmfgen - 3MF mutation corpus generator",
	Long: `tmfgen derives security test cases for 3MF consumers. It takes valid
reference models, applies exactly one schema-aware deviation per test file,
re-validates every variant against the 3MF XSDs and records the result in the
test description index.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data root (default: ./data or $TMF_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&xsdDir, "xsd", "", "Directory holding the 3mf-<spec>.xsd files (default: <data>/xsd)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to the event log (default: <data>/logs/events.jsonl)")
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(dataDir, xsdDir, logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// interactive reports whether stdout is a terminal. Glyphs and banners are
// only printed for humans.
func interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func passIcon(pass bool) string {
	switch {
	case !interactive() && pass:
		return "PASS"
	case !interactive():
		return "FAIL"
	case pass:
		return "\xe2\x9c\x85" // ✅
	default:
		return "\xe2\x9d\x8c" // ❌
	}
}

func banner(title string) {
	if !interactive() {
		fmt.Printf("== %s ==\n\n", title)
		return
	}
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Printf("  %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
