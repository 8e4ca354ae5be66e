// File: pkg/digest/config_test.go
package digest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assertions := assert.New(t)
	root := t.TempDir()

	cfg := testConfig(root)
	assertions.NoError(cfg.Validate())

	missing := testConfig(filepath.Join(root, "missing"))
	assertions.ErrorContains(missing.Validate(), "does not exist")

	file := filepath.Join(root, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	notDir := testConfig(file)
	assertions.ErrorContains(notDir.Validate(), "not a directory")

	empty := testConfig("")
	assertions.Error(empty.Validate())

	zeroFile := testConfig(root)
	zeroFile.Budget.MaxFileSize = 0
	assertions.ErrorContains(zeroFile.Validate(), "max file size")

	negDepth := testConfig(root)
	negDepth.Budget.MaxDepth = -1
	assertions.ErrorContains(negDepth.Validate(), "max depth")
}
