// Package ignore implements gitignore-style pattern matching and rule
// evaluation: compiled glob patterns, ordered last-match-wins resolution
// with negation, and an include gate for narrowing the selection.
package ignore

import (
	"strings"

	"go.uber.org/zap"
)

// MatchOptions control how compiled patterns are evaluated against paths.
type MatchOptions struct {
	CaseInsensitive bool // fold both sides before comparing
	MatchHidden     bool // allow matches on paths containing dot segments
}

// segment is one compiled pattern segment. star marks a full "**" segment.
// chunks holds the literal pieces between '*' wildcards; it is nil when the
// segment contains no wildcard and raw is compared directly.
type segment struct {
	star    bool
	raw     string
	folded  string
	chunks  []string
	fchunks []string
}

// Pattern is a single glob pattern compiled once and reused for every path
// tested during a run.
type Pattern struct {
	raw      string // pattern text without the negation marker
	negate   bool
	basename bool // no slash in the pattern: match the final segment anywhere
	hidden   bool // pattern references a dot segment
	valid    bool
	segments []segment
}

// Compile parses a single pattern line into a Pattern. A leading '!' marks
// negation and is stripped here; the caller applies negation semantics. An
// empty pattern compiles to a Pattern that never matches and logs a warning.
// Compile never fails.
func Compile(line string, logger *zap.Logger) *Pattern {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pattern{}
	text := line
	if strings.HasPrefix(text, "!") {
		p.negate = true
		text = strings.TrimPrefix(text, "!")
	}
	p.raw = text

	trimmed := strings.TrimRight(text, "/")
	rooted := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimLeft(trimmed, "/")

	if trimmed == "" {
		logger.Warn("Ignoring empty pattern", zap.String("pattern", line))
		return p
	}

	p.valid = true
	p.basename = !rooted && !strings.Contains(trimmed, "/")

	for _, part := range strings.Split(trimmed, "/") {
		if part == "" {
			continue
		}
		seg := segment{raw: part, folded: strings.ToLower(part)}
		if part == "**" {
			seg.star = true
		} else if strings.Contains(part, "*") {
			seg.chunks = strings.Split(part, "*")
			seg.fchunks = strings.Split(seg.folded, "*")
		}
		if strings.HasPrefix(part, ".") {
			p.hidden = true
		}
		p.segments = append(p.segments, seg)
	}

	return p
}

// Negated reports whether the pattern line carried a leading '!'.
func (p *Pattern) Negated() bool { return p.negate }

// String returns the pattern text without its negation marker.
func (p *Pattern) String() string { return p.raw }

// Match reports whether a forward-slash relative path matches the compiled
// pattern. Negation is not applied here.
func (p *Pattern) Match(path string, opts MatchOptions) bool {
	if !p.valid || path == "" {
		return false
	}

	parts := strings.Split(path, "/")

	if !opts.MatchHidden && !p.hidden && hasHiddenSegment(parts) {
		return false
	}

	if p.basename {
		if p.segments[0].star {
			return true
		}
		return matchSegment(&p.segments[0], parts[len(parts)-1], opts.CaseInsensitive)
	}
	return matchSegments(p.segments, parts, opts.CaseInsensitive)
}

func hasHiddenSegment(parts []string) bool {
	for _, part := range parts {
		if len(part) > 1 && part[0] == '.' {
			return true
		}
	}
	return false
}

// matchSegments walks pattern segments against path segments. A "**" segment
// consumes zero or more path segments.
func matchSegments(segs []segment, parts []string, fold bool) bool {
	for len(segs) > 0 {
		s := &segs[0]
		if s.star {
			if len(segs) == 1 {
				return true
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(segs[1:], parts[i:], fold) {
					return true
				}
			}
			return false
		}
		if len(parts) == 0 {
			return false
		}
		if !matchSegment(s, parts[0], fold) {
			return false
		}
		segs = segs[1:]
		parts = parts[1:]
	}
	return len(parts) == 0
}

// matchSegment matches one path segment against one compiled segment. Only
// '*' acts as a wildcard; every other character is literal.
func matchSegment(s *segment, part string, fold bool) bool {
	text := s.raw
	chunks := s.chunks
	if fold {
		text = s.folded
		chunks = s.fchunks
		part = strings.ToLower(part)
	}

	if chunks == nil {
		return part == text
	}

	// The first chunk anchors the start, the last anchors the end; middle
	// chunks are found left to right, each '*' absorbing the gap.
	if !strings.HasPrefix(part, chunks[0]) {
		return false
	}
	part = part[len(chunks[0]):]

	rest := chunks[1:]
	for i, c := range rest {
		if i == len(rest)-1 {
			return strings.HasSuffix(part, c)
		}
		idx := strings.Index(part, c)
		if idx < 0 {
			return false
		}
		part = part[idx+len(c):]
	}
	return true
}
