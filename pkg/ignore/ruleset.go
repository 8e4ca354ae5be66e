// File: pkg/ignore/ruleset.go
package ignore

import (
	"sort"

	"go.uber.org/zap"
)

// RuleSet holds the compiled include and ignore patterns for one run and
// records which ignore patterns caused exclusions.
type RuleSet struct {
	includes []*Pattern
	ignores  []*Pattern
	opts     MatchOptions
	matched  map[string]struct{}
	logger   *zap.Logger
}

// NewRuleSet compiles the configured pattern lists. Order is preserved:
// later ignore patterns override earlier ones on conflict. Negation markers
// on include patterns have no meaning and are ignored.
func NewRuleSet(includes, ignores []string, opts MatchOptions, logger *zap.Logger) *RuleSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	rs := &RuleSet{
		opts:    opts,
		matched: make(map[string]struct{}),
		logger:  logger,
	}
	for _, line := range includes {
		rs.includes = append(rs.includes, Compile(line, logger))
	}
	for _, line := range ignores {
		rs.ignores = append(rs.ignores, Compile(line, logger))
	}
	return rs
}

// IgnoreCount returns the number of compiled ignore patterns.
func (rs *RuleSet) IgnoreCount() int { return len(rs.ignores) }

// IncludeCount returns the number of compiled include patterns.
func (rs *RuleSet) IncludeCount() int { return len(rs.includes) }

// Options returns the match options the rule set evaluates with.
func (rs *RuleSet) Options() MatchOptions { return rs.opts }

// IsExcluded evaluates a forward-slash relative file path against the rule
// set. When include patterns exist the path must match at least one of them
// or it is excluded immediately. The ignore patterns are then applied in
// order and the last match wins, honoring negation. Every non-negated match
// is recorded for reporting.
func (rs *RuleSet) IsExcluded(relPath string) bool {
	if len(rs.includes) > 0 {
		included := false
		for _, p := range rs.includes {
			if p.Match(relPath, rs.opts) {
				included = true
				break
			}
		}
		if !included {
			rs.logger.Debug("Path matches no include pattern",
				zap.String("path", relPath))
			return true
		}
	}
	return rs.excludedByIgnores(relPath)
}

// IsDirExcluded evaluates a directory path against the ignore patterns
// only. The include gate does not apply to directories: include patterns
// name the files wanted, and pruning every directory that fails a file glob
// would make nested includes unreachable.
func (rs *RuleSet) IsDirExcluded(relPath string) bool {
	return rs.excludedByIgnores(relPath)
}

func (rs *RuleSet) excludedByIgnores(relPath string) bool {
	excluded := false
	var last *Pattern
	for _, p := range rs.ignores {
		if !p.Match(relPath, rs.opts) {
			continue
		}
		last = p
		if p.Negated() {
			excluded = false
		} else {
			excluded = true
			rs.matched[p.String()] = struct{}{}
		}
	}

	if excluded {
		rs.logger.Debug("Path excluded by ignore pattern",
			zap.String("path", relPath),
			zap.String("pattern", last.String()))
	}
	return excluded
}

// MatchedPatterns returns the sorted set of ignore patterns that caused at
// least one exclusion so far.
func (rs *RuleSet) MatchedPatterns() []string {
	out := make([]string, 0, len(rs.matched))
	for p := range rs.matched {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
