package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPatternFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.txt")
	content := "# build output\n\ndist\n*.log\n!keep.log\n   spaced.txt   \n# trailing comment\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	patterns, err := LoadPatternFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dist", "*.log", "!keep.log", "spaced.txt"}, patterns)
}

func TestLoadPatternFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("# only comments\n\n"), 0o644))

	patterns, err := LoadPatternFile(path)
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestLoadPatternFileMissing(t *testing.T) {
	_, err := LoadPatternFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestDefaultPatterns(t *testing.T) {
	assertions := assert.New(t)

	defaults := DefaultPatterns()
	assertions.Contains(defaults, "*.png")
	assertions.Contains(defaults, ".git")
	assertions.Contains(defaults, "node_modules")

	// Callers get a copy; mutating it must not leak into later calls.
	defaults[0] = "mutated"
	assertions.NotContains(DefaultPatterns(), "mutated")
}
