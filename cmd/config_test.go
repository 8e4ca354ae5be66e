// File: cmd/config_test.go
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repotome/pkg/digest"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	assertions := assert.New(t)
	path := writeConfigFile(t, `
output = "out.txt"
max_depth = 3
ignore = ["*.log", "!keep.log"]
use_gitignore = true
`)

	fc, err := loadFileConfig(path)
	require.NoError(t, err)
	require.NotNil(t, fc)
	assertions.Equal("out.txt", *fc.Output)
	assertions.Equal(3, *fc.MaxDepth)
	assertions.Equal([]string{"*.log", "!keep.log"}, fc.Ignore)
	assertions.True(*fc.UseGitignore)
	assertions.Nil(fc.MaxFileSize)
}

func TestLoadFileConfigMissingExplicit(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadFileConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "max_depth = [not an int")
	_, err := loadFileConfig(path)
	assert.Error(t, err)
}

func TestApplyFileConfigFlagPrecedence(t *testing.T) {
	assertions := assert.New(t)

	var o cliOptions
	testCmd := &cobra.Command{Use: "test"}
	registerFlags(testCmd, &o)
	require.NoError(t, testCmd.Flags().Parse([]string{"--max-depth", "7", "--ignore", "cli.log"}))

	out := "file-out.txt"
	depth := 3
	size := int64(123)
	fc := &fileConfig{
		Output:      &out,
		MaxDepth:    &depth,
		MaxFileSize: &size,
		Ignore:      []string{"file.log"},
	}
	applyFileConfig(testCmd, fc, &o)

	// A flag set on the command line wins; unset flags take file values.
	assertions.Equal(7, o.maxDepth)
	assertions.Equal("file-out.txt", o.output)
	assertions.Equal(int64(123), o.maxFileSize)
	// File patterns come first so command-line patterns override them.
	assertions.Equal([]string{"file.log", "cli.log"}, o.ignores)
}

func TestApplyFileConfigNil(t *testing.T) {
	var o cliOptions
	testCmd := &cobra.Command{Use: "test"}
	registerFlags(testCmd, &o)

	applyFileConfig(testCmd, nil, &o)
	assert.Equal(t, digest.DefaultMaxDepth, o.maxDepth)
	assert.Equal(t, "digest.txt", o.output)
}

func TestCollectIgnorePatternsOrder(t *testing.T) {
	assertions := assert.New(t)
	t.Setenv(globalIgnoreEnv, "")

	patternFile := filepath.Join(t.TempDir(), "extra.ignore")
	require.NoError(t, os.WriteFile(patternFile, []byte("# extra\n*.tmp\n"), 0o644))

	o := cliOptions{
		ignoreFiles: []string{patternFile},
		ignores:     []string{"!keep.tmp"},
	}
	patterns, err := collectIgnorePatterns(&o, zap.NewNop())
	require.NoError(t, err)

	// Defaults first, then file-loaded, then command-line.
	assertions.Contains(patterns, "node_modules")
	n := len(patterns)
	assertions.Equal("*.tmp", patterns[n-2])
	assertions.Equal("!keep.tmp", patterns[n-1])
}

func TestCollectIgnorePatternsGlobalEnv(t *testing.T) {
	globalFile := filepath.Join(t.TempDir(), "global.ignore")
	require.NoError(t, os.WriteFile(globalFile, []byte("*.bak\n"), 0o644))
	t.Setenv(globalIgnoreEnv, globalFile)

	o := cliOptions{noDefaults: true}
	patterns, err := collectIgnorePatterns(&o, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"*.bak"}, patterns)
}

func TestCollectIgnorePatternsNoDefaults(t *testing.T) {
	t.Setenv(globalIgnoreEnv, "")
	o := cliOptions{noDefaults: true, ignores: []string{"*.log"}}
	patterns, err := collectIgnorePatterns(&o, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log"}, patterns)
}

func TestCollectIgnorePatternsMissingFile(t *testing.T) {
	t.Setenv(globalIgnoreEnv, "")
	o := cliOptions{ignoreFiles: []string{filepath.Join(t.TempDir(), "absent")}}
	_, err := collectIgnorePatterns(&o, zap.NewNop())
	assert.Error(t, err)
}

func TestCollectIncludePatterns(t *testing.T) {
	patternFile := filepath.Join(t.TempDir(), "includes")
	require.NoError(t, os.WriteFile(patternFile, []byte("*.go\n*.md\n"), 0o644))

	o := cliOptions{
		includeFiles: []string{patternFile},
		includes:     []string{"*.txt"},
	}
	patterns, err := collectIncludePatterns(&o)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.go", "*.md", "*.txt"}, patterns)
}
