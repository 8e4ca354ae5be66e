// File: pkg/digest/assemble.go
package digest

import (
	"strings"
	"time"

	"repotome/pkg/ignore"
)

// digestSeparator frames each file header in the digest.
var digestSeparator = strings.Repeat("=", 50)

// AssembleDigest concatenates file records into the digest text. Each record
// contributes a framed header, its content terminated by a newline, and a
// blank separator line, in record order.
func AssembleDigest(records []FileRecord) string {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(digestSeparator)
		b.WriteByte('\n')
		b.WriteString("File: ")
		b.WriteString(rec.Path)
		b.WriteByte('\n')
		b.WriteString(digestSeparator)
		b.WriteByte('\n')
		b.WriteString(rec.Content)
		if !strings.HasSuffix(rec.Content, "\n") {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Summarize snapshots a finished run into Statistics.
func Summarize(state *TraversalState, rules *ignore.RuleSet, cfg *Config, elapsed time.Duration) Statistics {
	return Statistics{
		FileCount:        state.FileCount,
		TotalSize:        state.TotalSize,
		SkippedFiles:     state.SkippedFiles,
		ExcludedFiles:    state.ExcludedFiles,
		NonTextFiles:     state.NonTextFiles,
		SizeLimitReached: state.SizeLimitReached,
		Elapsed:          elapsed,
		MatchedPatterns:  rules.MatchedPatterns(),
		Errors:           append([]WalkError(nil), state.Errors...),
		MaxFileSize:      cfg.Budget.MaxFileSize,
		MaxTotalSize:     cfg.Budget.MaxTotalSize,
		MaxDepth:         cfg.Budget.MaxDepth,
		IgnorePatterns:   append([]string(nil), cfg.IgnorePatterns...),
		IncludePatterns:  append([]string(nil), cfg.IncludePatterns...),
	}
}
