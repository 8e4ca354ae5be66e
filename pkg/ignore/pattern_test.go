package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPatternMatch(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		path    string
		opts    MatchOptions
		want    bool
	}{
		{name: "exact basename", pattern: "main.go", path: "main.go", want: true},
		{name: "basename matches anywhere", pattern: "main.go", path: "cmd/app/main.go", want: true},
		{name: "basename no match", pattern: "main.go", path: "cmd/app/main_test.go", want: false},
		{name: "star suffix", pattern: "*.png", path: "assets/logo.png", want: true},
		{name: "star requires suffix", pattern: "*.png", path: "logo.png.txt", want: false},
		{name: "star prefix", pattern: "test_*", path: "test_walker", want: true},
		{name: "lone star", pattern: "*", path: "anything", want: true},
		{name: "question mark is literal", pattern: "file?.txt", path: "file1.txt", want: false},
		{name: "question mark exact", pattern: "file?.txt", path: "file?.txt", want: true},
		{name: "bracket is literal", pattern: "a[0].txt", path: "a0.txt", want: false},
		{name: "anchored path", pattern: "sub/c.js", path: "sub/c.js", want: true},
		{name: "anchored path not nested", pattern: "sub/c.js", path: "top/sub/c.js", want: false},
		{name: "rooted single segment", pattern: "/build", path: "build", want: true},
		{name: "rooted rejects nested", pattern: "/build", path: "x/build", want: false},
		{name: "double star middle", pattern: "a/**/b", path: "a/x/y/b", want: true},
		{name: "double star zero segments", pattern: "a/**/b", path: "a/b", want: true},
		{name: "double star trailing", pattern: "a/**", path: "a/x/y", want: true},
		{name: "double star trailing bare dir", pattern: "a/**", path: "a", want: true},
		{name: "double star leading", pattern: "**/c.js", path: "sub/deep/c.js", want: true},
		{name: "bare double star", pattern: "**", path: "any/depth/file.txt", want: true},
		{name: "bare double star hidden gate", pattern: "**", path: ".git/config", want: false},
		{name: "trailing slash acts as basename", pattern: "build/", path: "x/build", want: true},
		{name: "multiple stars", pattern: "a*b*c", path: "axxbyyc", want: true},
		{name: "multiple stars wrong order", pattern: "a*b*c", path: "axxcyyb", want: false},
		{name: "segment count respected", pattern: "a/b", path: "a/x/b", want: false},
		{name: "hidden path rejected", pattern: "*.log", path: ".cache/x.log", want: false},
		{name: "hidden pattern opts in", pattern: ".cache", path: "sub/.cache", want: true},
		{name: "hidden segment pattern matches inside", pattern: ".git/**", path: ".git/objects/ab", want: true},
		{name: "match hidden option", pattern: "*.log", path: ".cache/x.log", opts: MatchOptions{MatchHidden: true}, want: true},
		{name: "case sensitive by default", pattern: "*.PNG", path: "logo.png", want: false},
		{name: "case fold", pattern: "*.PNG", path: "logo.png", opts: MatchOptions{CaseInsensitive: true}, want: true},
		{name: "case fold literal", pattern: "README.md", path: "readme.MD", opts: MatchOptions{CaseInsensitive: true}, want: true},
		{name: "empty path", pattern: "*", path: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Compile(tc.pattern, zap.NewNop())
			got := p.Match(tc.path, tc.opts)
			assert.Equal(t, tc.want, got, "pattern %q vs path %q", tc.pattern, tc.path)
		})
	}
}

func TestCompileNegation(t *testing.T) {
	assertions := assert.New(t)

	p := Compile("!keep.log", zap.NewNop())
	assertions.True(p.Negated())
	assertions.Equal("keep.log", p.String())
	// Match evaluates the bare glob; the resolver applies negation.
	assertions.True(p.Match("keep.log", MatchOptions{}))
	assertions.True(p.Match("sub/keep.log", MatchOptions{}))
}

func TestCompileEmptyPattern(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	p := Compile("", logger)
	assert.False(t, p.Match("anything", MatchOptions{}))
	assert.Equal(t, 1, logs.FilterMessage("Ignoring empty pattern").Len())

	bare := Compile("!", logger)
	assert.True(t, bare.Negated())
	assert.False(t, bare.Match("anything", MatchOptions{}))
	assert.Equal(t, 2, logs.FilterMessage("Ignoring empty pattern").Len())
}
