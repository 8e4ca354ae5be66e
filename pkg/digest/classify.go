// File: pkg/digest/classify.go
package digest

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// textExtensions is the allow-list of extensions accepted as text without
// reading the file. Comparison is case-insensitive.
var textExtensions = map[string]bool{
	".bash":       true,
	".bat":        true,
	".c":          true,
	".cc":         true,
	".cfg":        true,
	".cjs":        true,
	".clj":        true,
	".cmd":        true,
	".conf":       true,
	".cpp":        true,
	".cs":         true,
	".css":        true,
	".csv":        true,
	".dart":       true,
	".dockerfile": true,
	".env":        true,
	".erl":        true,
	".ex":         true,
	".exs":        true,
	".fish":       true,
	".go":         true,
	".gradle":     true,
	".graphql":    true,
	".h":          true,
	".hcl":        true,
	".hh":         true,
	".hpp":        true,
	".hs":         true,
	".htm":        true,
	".html":       true,
	".ini":        true,
	".java":       true,
	".jl":         true,
	".js":         true,
	".json":       true,
	".jsx":        true,
	".kt":         true,
	".kts":        true,
	".less":       true,
	".lua":        true,
	".markdown":   true,
	".md":         true,
	".mjs":        true,
	".nim":        true,
	".php":        true,
	".pl":         true,
	".pm":         true,
	".proto":      true,
	".properties": true,
	".ps1":        true,
	".py":         true,
	".r":          true,
	".rb":         true,
	".rs":         true,
	".rst":        true,
	".sass":       true,
	".scala":      true,
	".scss":       true,
	".sh":         true,
	".sql":        true,
	".svelte":     true,
	".swift":      true,
	".tf":         true,
	".toml":       true,
	".ts":         true,
	".tsv":        true,
	".tsx":        true,
	".txt":        true,
	".vue":        true,
	".xml":        true,
	".yaml":       true,
	".yml":        true,
	".zig":        true,
	".zsh":        true,
}

// IsTextFile decides whether a file holds text. Files with a known text
// extension pass without being read; everything else is scanned for null
// bytes. A read error classifies the file as non-text.
func IsTextFile(path string, logger *zap.Logger) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if textExtensions[ext] {
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Cannot open file for text check",
			zap.String("path", path),
			zap.Error(err))
		return false
	}
	defer f.Close()

	buf := make([]byte, ChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 && bytes.IndexByte(buf[:n], 0) >= 0 {
			return false
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true
			}
			logger.Warn("Failed to read file for text check",
				zap.String("path", path),
				zap.Error(err))
			return false
		}
	}
}
