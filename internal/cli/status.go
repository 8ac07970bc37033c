package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/config"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/corpus"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/description"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/logger"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/seed"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/xsdcheck"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tmfgen status: schemas, generated files, descriptions, event log",
	Long: `Check which schemas are available, how many files every reference model
has on disk, how many tests are described and when the last run happened.

  tmfgen status`,
	RunE: statusCommand,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	banner("tmfgen Status")
	printStatus(os.Stdout, cfg)
	return nil
}

func printStatus(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "  Binary:    tmfgen %s\n", Version)
	fmt.Fprintf(w, "  Data:      %s\n", cfg.DataDir)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "─── Schemas ───────────────────────────────────────────")
	specs := xsdcheck.New(cfg.XSDDir).Specs()
	if len(specs) == 0 {
		fmt.Fprintf(w, "  ⬚  no 3mf-*.xsd files in %s, every variant will be reported invalid\n", cfg.XSDDir)
	} else {
		fmt.Fprintf(w, "  %s  %s: %s\n", passIcon(true), cfg.XSDDir, strings.Join(specs, ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "─── Generated Files ───────────────────────────────────")
	for _, doc := range seed.All() {
		dir := filepath.Join(cfg.GeneratedDir, doc.Name()+corpus.ModelsSuffix)
		matches, _ := filepath.Glob(filepath.Join(dir, "*.model"))
		if len(matches) == 0 {
			fmt.Fprintf(w, "  ⬚  %-3s %s (not generated)\n", doc.ID, dir)
			continue
		}
		fmt.Fprintf(w, "  %s  %-3s %s (%d files)\n", passIcon(true), doc.ID, dir, len(matches))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "─── Descriptions ──────────────────────────────────────")
	checkDescriptions(w, cfg.DescriptionDir)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "─── Event Log ─────────────────────────────────────────")
	checkEventLog(w, cfg.LogPath)
	fmt.Fprintln(w)
}

func checkDescriptions(w io.Writer, dir string) {
	if _, err := os.Stat(dir); err != nil {
		fmt.Fprintf(w, "  ⬚  %s (not yet created, run generate or setup)\n", dir)
		return
	}
	ix, err := description.Open(dir)
	if err != nil {
		fmt.Fprintf(w, "  %s  %s: %v\n", passIcon(false), dir, err)
		return
	}
	for _, file := range description.Files {
		fmt.Fprintf(w, "  %s  %-22s %d tests\n", passIcon(true), file, len(ix.IDs(file)))
	}
}

func checkEventLog(w io.Writer, path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(w, "  ⬚  %s (not yet created, starts on first run)\n", path)
		return
	}

	sizeKB := info.Size() / 1024
	if sizeKB == 0 {
		fmt.Fprintf(w, "  %s  %s (<1 KB)\n", passIcon(true), path)
	} else {
		fmt.Fprintf(w, "  %s  %s (%d KB)\n", passIcon(true), path, sizeKB)
	}

	events, err := logger.Read(path)
	if err != nil {
		return
	}
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Event == logger.EventRunFinished {
			fmt.Fprintf(w, "     Last run: %s at %s, %d files\n",
				events[i].RunID, formatTimestamp(events[i].Timestamp), events[i].Count)
			return
		}
	}
}
