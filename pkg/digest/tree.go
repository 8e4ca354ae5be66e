// File: pkg/digest/tree.go
package digest

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"repotome/pkg/ignore"
)

// treeOutputLimit caps the rendered tree text. Rendering stops once the cap
// is reached and a truncation marker is appended.
const treeOutputLimit = 256 * 1024

// treeTruncationMarker terminates a tree that hit the output cap.
const treeTruncationMarker = "... (tree truncated)"

// TreeRenderer produces the box-drawing directory tree. It re-walks the
// directory independently of the Walker, so the tree can show either the
// full layout or only the selected portion.
type TreeRenderer struct {
	cfg    *Config
	rules  *ignore.RuleSet
	logger *zap.Logger

	// MaxOutput overrides the default output cap when positive.
	MaxOutput int

	builder   strings.Builder
	seenDirs  map[string]struct{}
	truncated bool
}

// NewTreeRenderer builds a renderer sharing the walk's rule set so pattern
// matches recorded during rendering land in the same statistics.
func NewTreeRenderer(cfg *Config, rules *ignore.RuleSet, logger *zap.Logger) *TreeRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeRenderer{
		cfg:       cfg,
		rules:     rules,
		logger:    logger,
		MaxOutput: treeOutputLimit,
		seenDirs:  make(map[string]struct{}),
	}
}

// Render walks the root for display and returns the tree text. Entries keep
// directory-listing order. When pruning is enabled, entries the selection
// rules exclude are omitted along with their subtrees.
func (r *TreeRenderer) Render() string {
	r.builder.WriteString(filepath.Base(r.cfg.RootDir) + "/\n")
	r.renderDir(r.cfg.RootDir, "", "", 0)
	if r.truncated {
		r.builder.WriteString(treeTruncationMarker + "\n")
	}
	return r.builder.String()
}

func (r *TreeRenderer) renderDir(dir, rel, prefix string, depth int) {
	if depth > r.cfg.Budget.MaxDepth || r.truncated {
		return
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		canonical = dir
	}
	if _, seen := r.seenDirs[canonical]; seen {
		return
	}
	r.seenDirs[canonical] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Warn("Failed to list directory for tree",
			zap.String("dir", dir),
			zap.Error(err))
		return
	}

	if r.cfg.OmitExcluded {
		// Filter before rendering so the last visible entry gets the
		// closing connector.
		filtered := make([]fs.DirEntry, 0, len(entries))
		for _, entry := range entries {
			entryPath := filepath.Join(dir, entry.Name())
			if !excludedByRules(r.cfg, r.rules, joinRel(rel, entry.Name()), entryIsDir(entryPath, entry)) {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	for i, entry := range entries {
		if r.truncated {
			return
		}
		connector, extension := "├── ", "│   "
		if i == len(entries)-1 {
			connector, extension = "└── ", "    "
		}

		entryPath := filepath.Join(dir, entry.Name())
		entryRel := joinRel(rel, entry.Name())

		isDir := entryIsDir(entryPath, entry)

		name := entry.Name()
		if isDir {
			name += "/"
		}
		r.write(prefix + connector + name + "\n")

		if isDir {
			r.renderDir(entryPath, entryRel, prefix+extension, depth+1)
		}
	}
}

// write appends one line unless the output cap would be exceeded.
func (r *TreeRenderer) write(line string) {
	if r.builder.Len()+len(line) > r.MaxOutput {
		r.truncated = true
		return
	}
	r.builder.WriteString(line)
}
