package ignore

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadPatternFile reads patterns from a plain text file: one pattern per
// line, blank lines and lines starting with '#' skipped. A missing file is
// an error; callers treat it as fatal configuration.
func LoadPatternFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file %s: %w", path, err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}
	return patterns, nil
}
