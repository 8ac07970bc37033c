package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logFilterEvent string
	logFilterRun   string
	logFilterTest  string
	logLast        int
	logSummary     bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and filter the generation event log",
	Long: `View the event log written by generate with filtering and summary options.

Examples:
  tmfgen log                          # Show all entries
  tmfgen log --last 20                # Show last 20 entries
  tmfgen log --event write_failed     # Show only failed writes
  tmfgen log --test GEN-C-AR          # Entries whose test id starts with GEN-C-AR
  tmfgen log --summary                # Per-run statistics`,
	RunE: logCommand,
}

func init() {
	logCmd.Flags().StringVar(&logFilterEvent, "event", "", "Filter by event (generated, write_failed, missing, unexpected, ...)")
	logCmd.Flags().StringVar(&logFilterRun, "run", "", "Filter by run id")
	logCmd.Flags().StringVar(&logFilterTest, "test", "", "Filter by test id prefix")
	logCmd.Flags().IntVar(&logLast, "last", 0, "Show last N entries")
	logCmd.Flags().BoolVar(&logSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(logCmd)
}

func logCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	events, err := logger.Read(cfg.LogPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read event log: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No event log entries found.")
		return nil
	}

	filtered := filterEvents(events, logFilterEvent, logFilterRun, logFilterTest)
	if logLast > 0 && logLast < len(filtered) {
		filtered = filtered[len(filtered)-logLast:]
	}

	if logSummary {
		printSummary(os.Stdout, filtered)
		return nil
	}
	printEvents(os.Stdout, filtered)
	return nil
}

func filterEvents(events []logger.Event, event, run, testPrefix string) []logger.Event {
	if event == "" && run == "" && testPrefix == "" {
		return events
	}

	var filtered []logger.Event
	for _, e := range events {
		if event != "" && !strings.EqualFold(e.Event, event) {
			continue
		}
		if run != "" && e.RunID != run {
			continue
		}
		if testPrefix != "" && !strings.HasPrefix(strings.ToUpper(e.TestID), strings.ToUpper(testPrefix)) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func printEvents(w io.Writer, events []logger.Event) {
	for _, e := range events {
		line := fmt.Sprintf("%s %-14s", formatTimestamp(e.Timestamp), e.Event)
		if e.TestID != "" {
			line += " " + e.TestID
		}
		if e.RunID != "" && e.TestID == "" {
			line += " run=" + e.RunID
		}
		if e.Count > 0 {
			line += fmt.Sprintf(" count=%d", e.Count)
		}
		fmt.Fprintln(w, line)

		if e.Type != "" {
			fmt.Fprintf(w, "     Type: %s\n", e.Type)
		}
		if len(e.Validity) > 0 {
			specs := make([]string, 0, len(e.Validity))
			for spec := range e.Validity {
				specs = append(specs, spec)
			}
			sort.Strings(specs)
			for _, spec := range specs {
				fmt.Fprintf(w, "     %s: %s\n", spec, e.Validity[spec])
			}
		}
		if e.Path != "" {
			fmt.Fprintf(w, "     Path: %s\n", e.Path)
		}
		if e.Error != "" {
			fmt.Fprintf(w, "     Error: %s\n", e.Error)
		}
	}
}

type runSummary struct {
	id        string
	first     string
	last      string
	counts    map[string]int
	conformed int
}

func summarize(events []logger.Event) []*runSummary {
	var runs []*runSummary
	byID := make(map[string]*runSummary)
	for _, e := range events {
		s, ok := byID[e.RunID]
		if !ok {
			s = &runSummary{id: e.RunID, first: e.Timestamp, counts: make(map[string]int)}
			byID[e.RunID] = s
			runs = append(runs, s)
		}
		s.last = e.Timestamp
		s.counts[e.Event]++
		if e.Event == logger.EventGenerated && conformsAll(e.Validity) {
			s.conformed++
		}
	}
	return runs
}

func conformsAll(validity map[string]string) bool {
	for _, v := range validity {
		if !strings.HasPrefix(v, "Valid") {
			return false
		}
	}
	return len(validity) > 0
}

func printSummary(w io.Writer, events []logger.Event) {
	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintln(w, "  tmfgen Event Summary")
	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintf(w, "  Total events:    %d\n", len(events))

	for _, s := range summarize(events) {
		id := s.id
		if id == "" {
			id = "(no run id)"
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Run %s\n", id)
		fmt.Fprintf(w, "    From:          %s\n", formatTimestamp(s.first))
		fmt.Fprintf(w, "    To:            %s\n", formatTimestamp(s.last))
		fmt.Fprintf(w, "    Generated:     %d (%d schema valid)\n", s.counts[logger.EventGenerated], s.conformed)
		fmt.Fprintf(w, "    Write failed:  %d\n", s.counts[logger.EventWriteFailed])
		fmt.Fprintf(w, "    Missing:       %d\n", s.counts[logger.EventMissing])
		fmt.Fprintf(w, "    Unexpected:    %d\n", s.counts[logger.EventUnexpected])
		if n := s.counts[logger.EventPublishFailed]; n > 0 {
			fmt.Fprintf(w, "    Publish failed: %d\n", n)
		}
	}
	fmt.Fprintln(w, "═══════════════════════════════════════════")
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
