// File: pkg/digest/walker.go
package digest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"repotome/pkg/ignore"
)

// Walker performs the single-threaded depth-first traversal, applying the
// selection rules and budgets and accumulating file records in visit order.
type Walker struct {
	cfg    *Config
	rules  *ignore.RuleSet
	state  *TraversalState
	logger *zap.Logger
}

// NewWalker builds a Walker over the given rule set. One Walker serves one
// run; traversal state is created fresh here.
func NewWalker(cfg *Config, rules *ignore.RuleSet, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		cfg:    cfg,
		rules:  rules,
		state:  newTraversalState(),
		logger: logger,
	}
}

// State exposes the traversal state for summarizing after the walk.
func (w *Walker) State() *TraversalState { return w.state }

// Walk traverses the configured root and returns the accepted file records.
func (w *Walker) Walk() ([]FileRecord, error) {
	info, err := os.Stat(w.cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("cannot access root directory %s: %w", w.cfg.RootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", w.cfg.RootDir)
	}
	return w.walkDir(w.cfg.RootDir, "", 0), nil
}

// walkDir visits one directory. rel is the forward-slash path of dir
// relative to the root, empty for the root itself.
func (w *Walker) walkDir(dir, rel string, depth int) []FileRecord {
	if depth > w.cfg.Budget.MaxDepth {
		w.logger.Warn("Max depth reached, not descending",
			zap.String("dir", dir),
			zap.Int("maxDepth", w.cfg.Budget.MaxDepth))
		return nil
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		// Fall back to the lexical path so the revisit guard still works.
		w.logger.Warn("Cannot resolve canonical path",
			zap.String("dir", dir),
			zap.Error(err))
		canonical = dir
	}
	if _, seen := w.state.seenDirs[canonical]; seen {
		w.logger.Warn("Circular directory reference, skipping",
			zap.String("dir", dir),
			zap.String("canonical", canonical))
		return nil
	}
	w.state.seenDirs[canonical] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.state.recordError(fmt.Sprintf("failed to list directory %s: %v", dir, err))
		w.logger.Warn("Failed to list directory",
			zap.String("dir", dir),
			zap.Error(err))
		return nil
	}

	var records []FileRecord
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		entryRel := joinRel(rel, entry.Name())

		if excludedByRules(w.cfg, w.rules, entryRel, entryIsDir(entryPath, entry)) {
			w.state.ExcludedFiles++
			w.logger.Debug("Entry excluded by pattern", zap.String("path", entryRel))
			continue
		}

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			records = append(records, w.walkSymlink(entryPath, entryRel, depth)...)
		case entry.IsDir():
			records = append(records, w.walkDir(entryPath, entryRel, depth+1)...)
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				w.state.recordError(fmt.Sprintf("failed to stat %s: %v", entryPath, err))
				w.logger.Warn("Failed to stat entry",
					zap.String("path", entryPath),
					zap.Error(err))
				continue
			}
			if rec, ok := w.processFile(entryPath, entryRel, info.Size()); ok {
				records = append(records, rec)
			}
		default:
			w.logger.Debug("Skipping irregular entry", zap.String("path", entryRel))
		}
	}
	return records
}

// walkSymlink follows one symlink entry. Each (link, target) edge is
// traversed at most once per run; directory targets then pass through the
// canonical-path guard in walkDir, which catches links back to an ancestor.
func (w *Walker) walkSymlink(linkPath, rel string, depth int) []FileRecord {
	target, err := filepath.EvalSymlinks(linkPath)
	if err != nil {
		w.logger.Warn("Broken or unresolvable symlink, skipping",
			zap.String("link", linkPath),
			zap.Error(err))
		return nil
	}

	edge := linkEdge{link: linkPath, target: target}
	if _, seen := w.state.seenLinks[edge]; seen {
		w.logger.Warn("Circular symlink, skipping",
			zap.String("link", linkPath),
			zap.String("target", target))
		return nil
	}
	w.state.seenLinks[edge] = struct{}{}

	info, err := os.Stat(linkPath)
	if err != nil {
		w.logger.Warn("Cannot stat symlink target, skipping",
			zap.String("link", linkPath),
			zap.Error(err))
		return nil
	}

	if info.IsDir() {
		// Recurse through the link path, not the target, so record paths
		// stay relative to the walk root.
		return w.walkDir(linkPath, rel, depth+1)
	}
	if rec, ok := w.processFile(linkPath, rel, info.Size()); ok {
		return []FileRecord{rec}
	}
	return nil
}

// processFile applies the per-file size limit, the cumulative budget, and
// text classification, in that order. The returned bool reports whether a
// record was produced.
func (w *Walker) processFile(path, rel string, size int64) (FileRecord, bool) {
	if size > w.cfg.Budget.MaxFileSize {
		w.state.SkippedFiles++
		w.logger.Warn("File exceeds maximum size, skipping",
			zap.String("path", rel),
			zap.Int64("sizeBytes", size),
			zap.Int64("maxFileSize", w.cfg.Budget.MaxFileSize))
		if w.cfg.Placeholders {
			return FileRecord{Path: rel, Content: PlaceholderTooLarge, Size: size, Placeholder: true}, true
		}
		return FileRecord{}, false
	}

	if w.state.SizeLimitReached {
		return FileRecord{}, false
	}
	if w.state.TotalSize+size > w.cfg.Budget.MaxTotalSize {
		w.state.SizeLimitReached = true
		w.logger.Warn("Total size limit reached, no further files will be added",
			zap.String("path", rel),
			zap.Int64("totalSize", w.state.TotalSize),
			zap.Int64("maxTotalSize", w.cfg.Budget.MaxTotalSize))
		return FileRecord{}, false
	}

	if !IsTextFile(path, w.logger) {
		w.state.NonTextFiles++
		w.logger.Warn("Non-text file, skipping", zap.String("path", rel))
		if w.cfg.Placeholders {
			return FileRecord{Path: rel, Content: PlaceholderNonText, Size: size, Placeholder: true}, true
		}
		return FileRecord{}, false
	}

	content, err := w.readFile(path, size)
	if err != nil {
		w.state.recordError(fmt.Sprintf("failed to read %s: %v", path, err))
		w.logger.Warn("Failed to read file",
			zap.String("path", path),
			zap.Error(err))
		return FileRecord{}, false
	}

	w.state.TotalSize += size
	w.state.FileCount++
	return FileRecord{Path: rel, Content: content, Size: size}, true
}

// readFile reads a file whole when it fits in one chunk, in fixed-size
// chunks otherwise.
func (w *Walker) readFile(path string, size int64) (string, error) {
	if size <= ChunkSize {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	b.Grow(int(size))
	buf := make([]byte, ChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			return "", err
		}
	}
}

// excludedByRules applies the configured rules and the optional .gitignore.
// Directories are tested against the ignore patterns only; the include gate
// applies to files.
func excludedByRules(cfg *Config, rules *ignore.RuleSet, rel string, isDir bool) bool {
	if isDir {
		if rules.IsDirExcluded(rel) {
			return true
		}
	} else if rules.IsExcluded(rel) {
		return true
	}
	return cfg.GitIgnore != nil && cfg.GitIgnore.MatchesPath(rel)
}

// entryIsDir reports whether an entry acts as a directory for rule
// evaluation. Symlinks take the type of their target, so a link to a
// directory is not mistaken for a file by the include gate. A broken link
// counts as a file; walkSymlink warns about it later.
func entryIsDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	}
	return entry.IsDir()
}

// joinRel builds a forward-slash relative path regardless of platform.
func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
