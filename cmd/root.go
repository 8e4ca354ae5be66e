package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repotome/pkg/digest"
	"repotome/pkg/ignore"
	"repotome/pkg/logging"
	"repotome/pkg/version"
)

const appName = "Repotome"

// globalIgnoreEnv names an extra pattern file applied after the built-in
// defaults.
const globalIgnoreEnv = "REPOTOME_GLOBAL_IGNORE"

// cliOptions holds every command-line option after flag parsing and config
// file merging.
type cliOptions struct {
	output       string
	treeFile     string
	ignores      []string
	includes     []string
	ignoreFiles  []string
	includeFiles []string
	noDefaults   bool
	maxFileSize  int64
	maxTotalSize int64
	maxDepth     int
	ignoreCase   bool
	matchHidden  bool
	omitExcluded bool
	useGitignore bool
	placeholders bool
	countTokens  bool
	toClipboard  bool
	configFile   string
	noColor      bool
	quiet        bool
	ultraQuiet   bool
	debug        bool
}

var opts cliOptions

// RootCmd is the base command. Running it digests the target directory or
// repository into a single text document.
var RootCmd = &cobra.Command{
	Use:   "repotome [path|git-url]",
	Short: "Repotome digests a directory tree into a single reviewable text file",
	Long: `Repotome walks a directory (or a freshly cloned git repository), selects
files with gitignore-style include/exclude rules, and writes one text file
containing the directory tree, every selected file's content, and a summary.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runDigest,
}

// Execute runs the root command. The passed logger serves until the logging
// flags are applied.
func Execute(logger *zap.Logger) error {
	logging.Logger = logger
	return RootCmd.Execute()
}

func registerFlags(cmd *cobra.Command, o *cliOptions) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "digest.txt", "digest output file")
	f.StringVar(&o.treeFile, "tree", "", "also write the directory tree to this file")
	f.StringArrayVarP(&o.ignores, "ignore", "i", nil, "ignore pattern (repeatable, later patterns win)")
	f.StringArrayVar(&o.includes, "include", nil, "include pattern (repeatable)")
	f.StringArrayVar(&o.ignoreFiles, "ignore-file", nil, "file with ignore patterns, one per line (repeatable)")
	f.StringArrayVar(&o.includeFiles, "include-file", nil, "file with include patterns, one per line (repeatable)")
	f.BoolVar(&o.noDefaults, "no-default-ignores", false, "start from an empty ignore list")
	f.Int64Var(&o.maxFileSize, "max-file-size", digest.DefaultMaxFileSize, "per-file size ceiling in bytes")
	f.Int64Var(&o.maxTotalSize, "max-total-size", digest.DefaultMaxTotalSize, "total size ceiling in bytes")
	f.IntVar(&o.maxDepth, "max-depth", digest.DefaultMaxDepth, "maximum directory depth")
	f.BoolVar(&o.ignoreCase, "ignore-case", false, "match patterns case-insensitively")
	f.BoolVar(&o.matchHidden, "match-hidden", false, "let plain patterns match dotfiles")
	f.BoolVar(&o.omitExcluded, "omit-excluded", false, "prune excluded entries from the tree")
	f.BoolVar(&o.useGitignore, "use-gitignore", false, "also honor the root's .gitignore")
	f.BoolVar(&o.placeholders, "placeholders", false, "keep placeholder entries for skipped files")
	f.BoolVar(&o.countTokens, "tokens", false, "estimate digest tokens in the summary")
	f.BoolVarP(&o.toClipboard, "clipboard", "c", false, "copy the digest document to the clipboard")
	f.StringVar(&o.configFile, "config", "", "TOML config file (default: user config dir)")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored summary output")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "log warnings and errors only")
	f.BoolVar(&o.ultraQuiet, "ultra-quiet", false, "log errors only and skip the summary")
	f.BoolVar(&o.debug, "debug", false, "verbose development logging")
}

func init() {
	registerFlags(RootCmd, &opts)
}

func runDigest(cmd *cobra.Command, args []string) error {
	logOpts := logging.Options{Debug: opts.debug, Quiet: opts.quiet, UltraQuiet: opts.ultraQuiet}
	if err := logging.Setup(logOpts, appName, version.Version); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	logger := logging.Logger

	fc, err := loadFileConfig(opts.configFile)
	if err != nil {
		return err
	}
	applyFileConfig(cmd, fc, &opts)

	target := "."
	if len(args) == 1 && args[0] != "" {
		target = args[0]
	}

	rootDir := target
	if digest.IsRemoteURL(target) {
		dir, cleanup, err := digest.CloneRepository(target, logger)
		if err != nil {
			return err
		}
		defer cleanup()
		rootDir = dir
	}
	rootDir, err = filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root path %s: %w", target, err)
	}

	ignores, err := collectIgnorePatterns(&opts, logger)
	if err != nil {
		return err
	}
	includes, err := collectIncludePatterns(&opts)
	if err != nil {
		return err
	}

	cfg := &digest.Config{
		RootDir:         rootDir,
		Output:          opts.output,
		TreeFile:        opts.treeFile,
		IgnorePatterns:  ignores,
		IncludePatterns: includes,
		Budget: digest.Budget{
			MaxFileSize:  opts.maxFileSize,
			MaxTotalSize: opts.maxTotalSize,
			MaxDepth:     opts.maxDepth,
		},
		MatchOpts: ignore.MatchOptions{
			CaseInsensitive: opts.ignoreCase,
			MatchHidden:     opts.matchHidden,
		},
		OmitExcluded: opts.omitExcluded,
		Placeholders: opts.placeholders,
		CountTokens:  opts.countTokens,
		Quiet:        opts.quiet,
		UltraQuiet:   opts.ultraQuiet,
	}

	if opts.useGitignore {
		cfg.GitIgnore = loadGitIgnore(rootDir, logger)
	}

	result, err := digest.Run(cfg, logger)
	if err != nil {
		logger.Error("Digest run failed", zap.Error(err))
		return err
	}

	if opts.toClipboard {
		if err := clipboard.WriteAll(result.Document); err != nil {
			logger.Warn("Failed to copy digest to clipboard", zap.Error(err))
		} else {
			logger.Info("Digest copied to clipboard")
		}
	}

	if !cfg.UltraQuiet {
		useColor := !opts.noColor && isatty.IsTerminal(os.Stdout.Fd())
		digest.PrintSummary(os.Stdout, result.Stats, useColor)
	}
	return nil
}

// collectIgnorePatterns assembles the ordered ignore list: built-in
// defaults, the global ignore file, pattern files, then command-line
// patterns. Later entries win under last-match-wins evaluation.
func collectIgnorePatterns(o *cliOptions, logger *zap.Logger) ([]string, error) {
	var patterns []string
	if !o.noDefaults {
		patterns = ignore.DefaultPatterns()
	}
	if path := os.Getenv(globalIgnoreEnv); path != "" {
		loaded, err := ignore.LoadPatternFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded global ignore file",
			zap.String("path", path),
			zap.Int("patterns", len(loaded)))
		patterns = append(patterns, loaded...)
	}
	for _, path := range o.ignoreFiles {
		loaded, err := ignore.LoadPatternFile(path)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, loaded...)
	}
	return append(patterns, o.ignores...), nil
}

func collectIncludePatterns(o *cliOptions) ([]string, error) {
	var patterns []string
	for _, path := range o.includeFiles {
		loaded, err := ignore.LoadPatternFile(path)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, loaded...)
	}
	return append(patterns, o.includes...), nil
}

// loadGitIgnore compiles the root's .gitignore when present. Absence is not
// an error.
func loadGitIgnore(rootDir string, logger *zap.Logger) *gitignore.GitIgnore {
	path := filepath.Join(rootDir, ".gitignore")
	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to load .gitignore",
				zap.String("path", path),
				zap.Error(err))
		}
		return nil
	}
	logger.Debug("Loaded .gitignore", zap.String("path", path))
	return gi
}
