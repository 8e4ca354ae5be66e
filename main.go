package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"repotome/cmd"
	"repotome/pkg/logging"
)

func main() {
	// Bootstrap logger; the command layer rebuilds it once the logging
	// flags are known.
	logger, err := zap.NewProduction(zap.Fields(
		zap.String("appName", "Repotome"),
	))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	runErr := cmd.Execute(logger)
	syncLogger(logging.Active(logger))
	if runErr != nil {
		os.Exit(1)
	}
}

// syncLogger flushes buffered log entries. Syncing a terminal stderr fails
// with EINVAL on some platforms, so only terminals and regular files are
// synced and that error is tolerated.
func syncLogger(logger *zap.Logger) {
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
