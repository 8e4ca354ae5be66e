// File: pkg/digest/config.go
package digest

import (
	"fmt"
	"os"

	gitignore "github.com/sabhiram/go-gitignore"

	"repotome/pkg/ignore"
)

// Default budgets applied when the caller does not override them.
const (
	DefaultMaxFileSize  int64 = 10 * 1024 * 1024  // 10 MiB per file
	DefaultMaxTotalSize int64 = 500 * 1024 * 1024 // 500 MiB per run
	DefaultMaxDepth           = 20
)

// Budget holds the traversal thresholds.
type Budget struct {
	MaxFileSize  int64 // Per-file ceiling in bytes; larger files are skipped.
	MaxTotalSize int64 // Cumulative ceiling in bytes across all accepted files.
	MaxDepth     int   // Maximum directory descent below the root.
}

// Config is the fully resolved configuration the engine consumes. The cmd
// layer builds it from flags, config files, and defaults.
type Config struct {
	RootDir         string   // Absolute path of the directory to walk.
	Output          string   // Digest document path; excluded from its own digest.
	TreeFile        string   // Optional separate tree output path.
	IgnorePatterns  []string // Ordered ignore patterns: defaults, file-loaded, command-line.
	IncludePatterns []string // Ordered include patterns; empty includes everything.
	Budget          Budget
	MatchOpts       ignore.MatchOptions
	OmitExcluded    bool // Prune excluded entries from the rendered tree.
	Placeholders    bool // Emit placeholder records for oversized and non-text files.
	CountTokens     bool // Estimate digest tokens for the summary.
	Quiet           bool // Suppress informational logging.
	UltraQuiet      bool // Suppress everything except errors, including the console summary.

	// GitIgnore, when non-nil, is consulted after the configured rules;
	// paths it matches count as pattern exclusions.
	GitIgnore *gitignore.GitIgnore
}

// Validate reports fatal configuration errors. It runs before any traversal
// begins; a non-nil error means the process should exit without walking.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("root directory is required")
	}
	info, err := os.Stat(c.RootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("root directory %s does not exist", c.RootDir)
		}
		return fmt.Errorf("cannot access root directory %s: %w", c.RootDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", c.RootDir)
	}
	if c.Budget.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.Budget.MaxFileSize)
	}
	if c.Budget.MaxTotalSize <= 0 {
		return fmt.Errorf("max total size must be positive, got %d", c.Budget.MaxTotalSize)
	}
	if c.Budget.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.Budget.MaxDepth)
	}
	return nil
}
