// File: pkg/digest/remote.go
package digest

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// IsRemoteURL reports whether the root argument names a git repository
// rather than a local path.
func IsRemoteURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@") ||
		strings.HasPrefix(input, "https://github.com/") ||
		strings.HasPrefix(input, "https://gitlab.com/") ||
		strings.HasPrefix(input, "https://bitbucket.org/")
}

// CloneRepository shallow-clones a repository into a temporary directory and
// returns the directory together with a cleanup function.
func CloneRepository(url string, logger *zap.Logger) (string, func(), error) {
	tempDir, err := os.MkdirTemp("", "repotome-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}

	logger.Info("Cloning repository",
		zap.String("url", url),
		zap.String("dir", tempDir))

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Depth:         1,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", nil, fmt.Errorf("failed to clone %s: %w", url, err)
	}

	cleanup := func() {
		if err := os.RemoveAll(tempDir); err != nil {
			logger.Warn("Failed to remove clone directory",
				zap.String("dir", tempDir),
				zap.Error(err))
		}
	}
	return tempDir, cleanup, nil
}
