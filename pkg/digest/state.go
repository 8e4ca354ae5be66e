// File: pkg/digest/state.go
package digest

import "time"

// ChunkSize is the buffer size for chunked file reads.
const ChunkSize = 8192

// Placeholder contents substituted for file bytes when placeholders are
// enabled. Placeholder records never count toward the accepted totals.
const (
	PlaceholderNonText  = "[non-text file]"
	PlaceholderTooLarge = "[file too large]"
)

// FileRecord is one file selected by a walk: its path relative to the walk
// root (forward slashes), its content or a placeholder, and its on-disk size.
type FileRecord struct {
	Path        string
	Content     string
	Size        int64
	Placeholder bool
}

// WalkError is one non-fatal error collected during traversal.
type WalkError struct {
	Time    time.Time
	Message string
}

// linkEdge identifies a traversed symlink by its source path and resolved
// target, so a cycle through the same edge is caught exactly once.
type linkEdge struct {
	link   string
	target string
}

// TraversalState is the single mutable state threaded through a recursive
// walk. It is created once per run and never reset mid-walk.
type TraversalState struct {
	seenDirs  map[string]struct{}
	seenLinks map[linkEdge]struct{}

	TotalSize        int64
	FileCount        int
	SkippedFiles     int // over the per-file size limit
	ExcludedFiles    int // excluded by pattern
	NonTextFiles     int
	SizeLimitReached bool
	Errors           []WalkError
}

func newTraversalState() *TraversalState {
	return &TraversalState{
		seenDirs:  make(map[string]struct{}),
		seenLinks: make(map[linkEdge]struct{}),
	}
}

func (s *TraversalState) recordError(msg string) {
	s.Errors = append(s.Errors, WalkError{Time: time.Now(), Message: msg})
}

// Statistics is the read-only snapshot of a finished run, rendered into the
// digest document and the console summary.
type Statistics struct {
	FileCount        int
	TotalSize        int64
	SkippedFiles     int
	ExcludedFiles    int
	NonTextFiles     int
	SizeLimitReached bool
	Elapsed          time.Duration
	MatchedPatterns  []string
	Errors           []WalkError
	EstimatedTokens  int

	// Configuration echo.
	MaxFileSize     int64
	MaxTotalSize    int64
	MaxDepth        int
	IgnorePatterns  []string
	IncludePatterns []string
}
