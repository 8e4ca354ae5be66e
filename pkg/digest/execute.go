// File: pkg/digest/execute.go
package digest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"repotome/pkg/ignore"
)

// Document section headings.
const (
	treeHeading    = "Directory Structure"
	contentHeading = "File Contents"
)

// Result carries everything a run produced. Document is the full output
// text as written to the output file.
type Result struct {
	Records  []FileRecord
	Tree     string
	Digest   string
	Document string
	Stats    Statistics
}

// Run executes a full digest run: validate the configuration, walk the
// root, render the tree, assemble the digest, and write the output
// document. The configuration is not modified.
func Run(cfg *Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Honor the quiet flags even when the caller hands in a chattier logger.
	switch {
	case cfg.UltraQuiet:
		logger = logger.WithOptions(zap.IncreaseLevel(zap.ErrorLevel))
	case cfg.Quiet:
		logger = logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	}

	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules := ignore.NewRuleSet(cfg.IncludePatterns, withOutputIgnores(cfg, logger), cfg.MatchOpts, logger)
	logger.Debug("Compiled selection rules",
		zap.Int("ignorePatterns", rules.IgnoreCount()),
		zap.Int("includePatterns", rules.IncludeCount()))

	walker := NewWalker(cfg, rules, logger)
	records, err := walker.Walk()
	if err != nil {
		return nil, fmt.Errorf("walk failed: %w", err)
	}

	tree := NewTreeRenderer(cfg, rules, logger).Render()
	digestText := AssembleDigest(records)

	stats := Summarize(walker.State(), rules, cfg, time.Since(start))
	if cfg.CountTokens {
		stats.EstimatedTokens = EstimateTokens(digestText, logger)
	}

	document := RenderDocument(tree, digestText, stats)

	if cfg.Output != "" {
		if err := writeFile(cfg.Output, document, logger); err != nil {
			return nil, err
		}
	}
	if cfg.TreeFile != "" {
		if err := writeFile(cfg.TreeFile, tree, logger); err != nil {
			return nil, err
		}
	}

	logger.Info("Digest complete",
		zap.String("output", cfg.Output),
		zap.Int("files", stats.FileCount),
		zap.Int64("totalSize", stats.TotalSize),
		zap.Duration("elapsed", stats.Elapsed))

	return &Result{
		Records:  records,
		Tree:     tree,
		Digest:   digestText,
		Document: document,
		Stats:    stats,
	}, nil
}

// withOutputIgnores returns the configured ignore patterns extended with
// rooted patterns for the output artifacts, so a digest never swallows its
// own previous output. The configured slice is not modified.
func withOutputIgnores(cfg *Config, logger *zap.Logger) []string {
	patterns := append([]string(nil), cfg.IgnorePatterns...)
	for _, out := range []string{cfg.Output, cfg.TreeFile} {
		if out == "" {
			continue
		}
		abs, err := filepath.Abs(out)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(cfg.RootDir, abs)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		pattern := "/" + filepath.ToSlash(rel)
		patterns = append(patterns, pattern)
		logger.Debug("Excluding output artifact", zap.String("pattern", pattern))
	}
	return patterns
}

// RenderDocument lays out the full output document: tree section, file
// contents section, then the summary block.
func RenderDocument(tree, digestText string, stats Statistics) string {
	var b strings.Builder
	b.WriteString(treeHeading + "\n")
	b.WriteString(strings.Repeat("-", len(treeHeading)) + "\n\n")
	b.WriteString(tree)
	b.WriteByte('\n')
	b.WriteString(contentHeading + "\n")
	b.WriteString(strings.Repeat("-", len(contentHeading)) + "\n\n")
	b.WriteString(digestText)
	b.WriteByte('\n')
	b.WriteString(SummaryBlock(stats))
	return b.String()
}

// writeFile writes one standalone artifact, creating parent directories.
func writeFile(path, content string, logger *zap.Logger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("Wrote file", zap.String("path", path))
	return nil
}
