// File: cmd/config.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig mirrors the optional TOML configuration file. Pointer fields
// distinguish "absent" from zero values so command-line flags keep
// precedence over the file.
type fileConfig struct {
	Output       *string  `toml:"output"`
	TreeFile     *string  `toml:"tree_file"`
	Ignore       []string `toml:"ignore"`
	Include      []string `toml:"include"`
	NoDefaults   *bool    `toml:"no_default_ignores"`
	MaxFileSize  *int64   `toml:"max_file_size"`
	MaxTotalSize *int64   `toml:"max_total_size"`
	MaxDepth     *int     `toml:"max_depth"`
	IgnoreCase   *bool    `toml:"ignore_case"`
	MatchHidden  *bool    `toml:"match_hidden"`
	OmitExcluded *bool    `toml:"omit_excluded"`
	UseGitignore *bool    `toml:"use_gitignore"`
	Placeholders *bool    `toml:"placeholders"`
	Tokens       *bool    `toml:"tokens"`
	NoColor      *bool    `toml:"no_color"`
}

// defaultConfigPath returns the user-level config location.
func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "repotome", "config.toml")
}

// loadFileConfig reads the explicit config path, or the default location
// when one exists. A missing explicit file is an error; a missing default
// is not.
func loadFileConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// applyFileConfig copies file values into the options for every flag the
// user did not set on the command line. Pattern lists from the file are
// prepended so command-line patterns keep last-match-wins priority.
func applyFileConfig(cmd *cobra.Command, fc *fileConfig, o *cliOptions) {
	if fc == nil {
		return
	}
	set := cmd.Flags().Changed

	if fc.Output != nil && !set("output") {
		o.output = *fc.Output
	}
	if fc.TreeFile != nil && !set("tree") {
		o.treeFile = *fc.TreeFile
	}
	if len(fc.Ignore) > 0 {
		o.ignores = append(append([]string(nil), fc.Ignore...), o.ignores...)
	}
	if len(fc.Include) > 0 {
		o.includes = append(append([]string(nil), fc.Include...), o.includes...)
	}
	if fc.NoDefaults != nil && !set("no-default-ignores") {
		o.noDefaults = *fc.NoDefaults
	}
	if fc.MaxFileSize != nil && !set("max-file-size") {
		o.maxFileSize = *fc.MaxFileSize
	}
	if fc.MaxTotalSize != nil && !set("max-total-size") {
		o.maxTotalSize = *fc.MaxTotalSize
	}
	if fc.MaxDepth != nil && !set("max-depth") {
		o.maxDepth = *fc.MaxDepth
	}
	if fc.IgnoreCase != nil && !set("ignore-case") {
		o.ignoreCase = *fc.IgnoreCase
	}
	if fc.MatchHidden != nil && !set("match-hidden") {
		o.matchHidden = *fc.MatchHidden
	}
	if fc.OmitExcluded != nil && !set("omit-excluded") {
		o.omitExcluded = *fc.OmitExcluded
	}
	if fc.UseGitignore != nil && !set("use-gitignore") {
		o.useGitignore = *fc.UseGitignore
	}
	if fc.Placeholders != nil && !set("placeholders") {
		o.placeholders = *fc.Placeholders
	}
	if fc.Tokens != nil && !set("tokens") {
		o.countTokens = *fc.Tokens
	}
	if fc.NoColor != nil && !set("no-color") {
		o.noColor = *fc.NoColor
	}
}
