package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRuleSetNegation(t *testing.T) {
	assertions := assert.New(t)
	rs := NewRuleSet(nil, []string{"*.log", "!keep.log"}, MatchOptions{}, zap.NewNop())

	assertions.False(rs.IsExcluded("keep.log"))
	assertions.True(rs.IsExcluded("other.log"))
	assertions.False(rs.IsExcluded("notes.txt"))
}

func TestRuleSetLastMatchWins(t *testing.T) {
	assertions := assert.New(t)

	// Reversed order: the blanket pattern comes last and overrides the
	// earlier re-include.
	rs := NewRuleSet(nil, []string{"!keep.log", "*.log"}, MatchOptions{}, zap.NewNop())
	assertions.True(rs.IsExcluded("keep.log"))

	// A later negation re-includes what an earlier pattern excluded.
	rs = NewRuleSet(nil, []string{"docs", "*.md", "!README.md"}, MatchOptions{}, zap.NewNop())
	assertions.False(rs.IsExcluded("README.md"))
	assertions.True(rs.IsExcluded("CHANGELOG.md"))
	assertions.True(rs.IsExcluded("docs"))
}

func TestRuleSetIncludeGate(t *testing.T) {
	assertions := assert.New(t)
	rs := NewRuleSet([]string{"*.js"}, nil, MatchOptions{}, zap.NewNop())

	assertions.True(rs.IsExcluded("README.md"))
	assertions.False(rs.IsExcluded("app.js"))
	// Include patterns use basename semantics, so nested files pass the gate.
	assertions.False(rs.IsExcluded("sub/deep/c.js"))
}

func TestRuleSetIncludeGateThenIgnore(t *testing.T) {
	assertions := assert.New(t)
	rs := NewRuleSet([]string{"*.js"}, []string{"vendor.js"}, MatchOptions{}, zap.NewNop())

	assertions.False(rs.IsExcluded("app.js"))
	assertions.True(rs.IsExcluded("vendor.js"))
	assertions.True(rs.IsExcluded("style.css"))
}

func TestRuleSetNoPatterns(t *testing.T) {
	rs := NewRuleSet(nil, nil, MatchOptions{}, zap.NewNop())
	assert.False(t, rs.IsExcluded("anything/at/all.txt"))
}

func TestRuleSetMatchedPatterns(t *testing.T) {
	assertions := assert.New(t)
	rs := NewRuleSet(nil, []string{"*.log", "*.png", "!keep.log"}, MatchOptions{}, zap.NewNop())

	assertions.Empty(rs.MatchedPatterns())

	rs.IsExcluded("debug.log")
	rs.IsExcluded("logo.png")
	rs.IsExcluded("notes.txt")
	rs.IsExcluded("keep.log")

	// Negated patterns are never recorded; both blanket patterns fired.
	assertions.Equal([]string{"*.log", "*.png"}, rs.MatchedPatterns())
}

func TestRuleSetCounts(t *testing.T) {
	rs := NewRuleSet([]string{"*.go"}, []string{"*.log", "!keep.log"}, MatchOptions{CaseInsensitive: true}, zap.NewNop())
	assert.Equal(t, 1, rs.IncludeCount())
	assert.Equal(t, 2, rs.IgnoreCount())
	assert.True(t, rs.Options().CaseInsensitive)
}

func TestRuleSetDirSkipsIncludeGate(t *testing.T) {
	assertions := assert.New(t)
	rs := NewRuleSet([]string{"*.js"}, []string{"node_modules"}, MatchOptions{}, zap.NewNop())

	// Directories are not gated by include patterns, only by ignores;
	// otherwise no directory could ever contain an included file.
	assertions.False(rs.IsDirExcluded("src"))
	assertions.False(rs.IsDirExcluded("src/deep"))
	assertions.True(rs.IsDirExcluded("node_modules"))

	// The same path evaluated as a file still fails the gate.
	assertions.True(rs.IsExcluded("src"))
}
