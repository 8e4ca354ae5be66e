// File: pkg/digest/summary.go
package digest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// formatBytes renders a byte count with binary units.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// SummaryBlock renders the plain-text statistics block appended to the
// digest document.
func SummaryBlock(stats Statistics) string {
	var b strings.Builder
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  Files included: %d\n", stats.FileCount)
	fmt.Fprintf(&b, "  Total size: %s\n", formatBytes(stats.TotalSize))
	fmt.Fprintf(&b, "  Excluded by pattern: %d\n", stats.ExcludedFiles)
	fmt.Fprintf(&b, "  Skipped over size limit: %d\n", stats.SkippedFiles)
	fmt.Fprintf(&b, "  Non-text skipped: %d\n", stats.NonTextFiles)
	if stats.SizeLimitReached {
		fmt.Fprintf(&b, "  Total size limit reached: yes (%s)\n", formatBytes(stats.MaxTotalSize))
	}
	if stats.EstimatedTokens > 0 {
		fmt.Fprintf(&b, "  Estimated tokens: %d\n", stats.EstimatedTokens)
	}
	if len(stats.MatchedPatterns) > 0 {
		fmt.Fprintf(&b, "  Patterns that matched: %s\n", strings.Join(stats.MatchedPatterns, ", "))
	}
	if len(stats.Errors) > 0 {
		fmt.Fprintf(&b, "  Errors (%d):\n", len(stats.Errors))
		for _, e := range stats.Errors {
			fmt.Fprintf(&b, "    [%s] %s\n", e.Time.Format(time.RFC3339), e.Message)
		}
	}
	fmt.Fprintf(&b, "  Elapsed: %s\n", stats.Elapsed.Round(time.Millisecond))
	return b.String()
}

// PrintSummary writes the console summary. Labels are colored when useColor
// is true; callers decide based on terminal detection and flags.
func PrintSummary(w io.Writer, stats Statistics, useColor bool) {
	label := fmt.Sprint
	warn := fmt.Sprint
	if useColor {
		label = color.New(color.FgCyan, color.Bold).SprintFunc()
		warn = color.New(color.FgYellow).SprintFunc()
	}

	fmt.Fprintf(w, "%s %d files, %s\n", label("Included:"), stats.FileCount, formatBytes(stats.TotalSize))
	fmt.Fprintf(w, "%s %d by pattern, %d over size limit, %d non-text\n",
		label("Excluded:"), stats.ExcludedFiles, stats.SkippedFiles, stats.NonTextFiles)
	if stats.SizeLimitReached {
		fmt.Fprintln(w, warn("Total size limit reached; output is incomplete."))
	}
	if stats.EstimatedTokens > 0 {
		fmt.Fprintf(w, "%s %d\n", label("Estimated tokens:"), stats.EstimatedTokens)
	}
	if len(stats.Errors) > 0 {
		fmt.Fprintln(w, warn(fmt.Sprintf("%d errors during traversal; see log output.", len(stats.Errors))))
	}
	fmt.Fprintf(w, "%s %s\n", label("Elapsed:"), stats.Elapsed.Round(time.Millisecond))
}
