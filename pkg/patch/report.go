package patch

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RuleResult pairs a rule with the number of files it changed.
type RuleResult struct {
	Rule         Rule
	FilesPatched int
}

// Report aggregates the outcome of one patch run.
type Report struct {
	// Results holds per-rule counts in rule order.
	Results []RuleResult
	// FilesScanned counts every candidate file read.
	FilesScanned int
	// FilesPatched counts distinct files changed by any rule.
	FilesPatched int
	// SkippedBinary counts candidate files skipped by the binary sniff.
	SkippedBinary int
	// BytesScanned is the total size of all candidate files read.
	BytesScanned int64
	// Duration is the wall time of the run.
	Duration time.Duration
	// Changes holds before/after content when collection is enabled.
	Changes []FileChange
}

// NewReport returns a Report with one zeroed result slot per rule.
func NewReport(rules []Rule) *Report {
	results := make([]RuleResult, len(rules))
	for i, rule := range rules {
		results[i].Rule = rule
	}

	return &Report{Results: results}
}

// SummaryLines returns one line per rule in the fixed
// "[i/n] Patched <count> files with <label>" shape.
// The shape is stable; release scripts grep for it.
func (r *Report) SummaryLines() []string {
	total := len(r.Results)
	lines := make([]string, 0, total)

	for i, res := range r.Results {
		lines = append(lines, fmt.Sprintf("[%d/%d] Patched %d files with %s", i+1, total, res.FilesPatched, res.Rule.Label))
	}

	return lines
}

// WriteSummary prints the per-rule summary lines, followed by an
// informational note when nothing required patching.
func (r *Report) WriteSummary(writer io.Writer, colored bool) {
	patched := color.New(color.FgGreen)

	for i, line := range r.SummaryLines() {
		if colored && r.Results[i].FilesPatched > 0 {
			patched.Fprintln(writer, line)

			continue
		}

		fmt.Fprintln(writer, line)
	}

	if r.FilesPatched == 0 {
		fmt.Fprintln(writer, "No circular __exportAll imports found; nothing to patch.")
	}
}

// WriteTable renders the verbose per-rule breakdown with scan totals.
func (r *Report) WriteTable(writer io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(writer)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"#", "Rule", "Files patched"})

	for i, res := range r.Results {
		tw.AppendRow(table.Row{i + 1, res.Rule.Name, res.FilesPatched})
	}

	tw.AppendFooter(table.Row{"", "scanned", fmt.Sprintf("%d files, %s in %s",
		r.FilesScanned, humanize.Bytes(uint64(r.BytesScanned)), r.Duration.Round(time.Millisecond))})

	if r.SkippedBinary > 0 {
		tw.AppendFooter(table.Row{"", "skipped binary", r.SkippedBinary})
	}

	tw.Render()
}
