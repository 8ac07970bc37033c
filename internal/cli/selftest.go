package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/element"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/mutator"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/seed"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/simpletype"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/taxonomy"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/xsdcheck"
	"github.com/spf13/cobra"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Self-test: check the reference models, the mutator and the schemas",
	Long: `Run a quick diagnostic without writing any file. Every reference model and
every default element instance must satisfy its own content model, every
variant must differ from its reference and the reference must be accepted by
the XSDs found in the schema directory.

  tmfgen selftest`,
	RunE: selftestCommand,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func selftestCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	banner("tmfgen Self-Test")
	passed, total := selftest(os.Stdout, xsdcheck.New(cfg.XSDDir))

	fmt.Println("═══════════════════════════════════════════════════════")
	if passed == total {
		fmt.Printf("  All %d checks passed\n", total)
		fmt.Println("═══════════════════════════════════════════════════════")
		return nil
	}
	fmt.Printf("  %d/%d checks passed, %d failed\n", passed, total, total-passed)
	fmt.Println("═══════════════════════════════════════════════════════")
	return fmt.Errorf("self-test failed")
}

// selftest prints one line per check and returns the tally.
func selftest(w io.Writer, checker *xsdcheck.Checker) (passed, total int) {
	tally := func(ok bool) {
		total++
		if ok {
			passed++
		}
	}

	// ── Reference models ─────────────────────────────────────────
	fmt.Fprintln(w, "─── Reference Models ──────────────────────────────────")
	for _, doc := range seed.All() {
		err := element.Check(doc.Root)
		tally(err == nil)
		fmt.Fprintf(w, "  %s  %-3s %-11s %s\n", passIcon(err == nil), doc.ID, doc.Spec, describeNode(doc.Root))
		var breach *element.BreachError
		if errors.As(err, &breach) {
			fmt.Fprintf(w, "       %s\n", breach.Breach)
		}
	}
	fmt.Fprintln(w)

	// ── Element catalog ──────────────────────────────────────────
	fmt.Fprintln(w, "─── Element Catalog ───────────────────────────────────")
	for _, spec := range []string{"core", "materials", "production", "slice"} {
		broken := brokenDefaults(element.ExtensionsFor(spec))
		tally(len(broken) == 0)
		fmt.Fprintf(w, "  %s  %-11s %d element kinds", passIcon(len(broken) == 0), spec, element.KindTotal-1)
		if len(broken) > 0 {
			fmt.Fprintf(w, ", invalid defaults: %v", broken)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	// ── Mutator ──────────────────────────────────────────────────
	fmt.Fprintln(w, "─── Mutator ───────────────────────────────────────────")
	for _, doc := range seed.All() {
		counts, unchanged := mutationCounts(doc)
		ok := unchanged == 0 && len(counts) > 0
		tally(ok)

		variants := 0
		for _, n := range counts {
			variants += n
		}
		fmt.Fprintf(w, "  %s  %-3s %5d variants", passIcon(ok), doc.ID, variants)
		for k := mutator.AttributeDropped; k <= mutator.ChildDuplicatedSame; k++ {
			if counts[k] > 0 {
				fmt.Fprintf(w, "  %s:%d", k.Code(), counts[k])
			}
		}
		fmt.Fprintln(w)
		if unchanged > 0 {
			fmt.Fprintf(w, "       %d variants render identical to the reference\n", unchanged)
		}
	}
	fmt.Fprintln(w)

	// ── Schemas ──────────────────────────────────────────────────
	fmt.Fprintln(w, "─── XSD Validation ────────────────────────────────────")
	available := make(map[string]bool)
	for _, spec := range checker.Specs() {
		available[spec] = true
	}
	for _, doc := range seed.All() {
		if !available["core"] || !available[doc.Spec] {
			fmt.Fprintf(w, "  -   %-3s skipped, no schema for %s\n", doc.ID, doc.Spec)
			continue
		}
		specs := []string{"core"}
		if doc.Spec != "core" {
			specs = append(specs, doc.Spec)
		}
		validity := checker.Check(doc.Root.XML(true), specs...)
		ok := taxonomy.Conforms(validity)
		tally(ok)
		fmt.Fprintf(w, "  %s  %-3s", passIcon(ok), doc.ID)
		for _, spec := range specs {
			fmt.Fprintf(w, "  %s: %s", spec, validity[spec])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	return passed, total
}

// brokenDefaults lists the kinds whose default instance breaks its own
// content model under ext.
func brokenDefaults(ext element.Extensions) []element.Kind {
	var broken []element.Kind
	for k := element.Kind(1); int(k) < element.KindTotal; k++ {
		if element.Check(element.Create(k, ext)) != nil {
			broken = append(broken, k)
		}
	}
	return broken
}

// mutationCounts counts the variants of doc by kind. unchanged counts the
// variants whose XML equals the reference.
func mutationCounts(doc seed.Document) (counts map[mutator.Kind]int, unchanged int) {
	counts = make(map[mutator.Kind]int)
	reference := doc.Root.XML(true)
	m := mutator.New(simpletype.NewAllocator())
	for v := range m.Mutate(doc.Root) {
		counts[v.Info.Kind]++
		if v.Root.XML(true) == reference {
			unchanged++
		}
	}
	return counts, unchanged
}
