package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Options selects the verbosity profile for Setup.
type Options struct {
	Debug      bool // development config, debug level
	Quiet      bool // warnings and errors only
	UltraQuiet bool // errors only
}

// Setup builds the global logger. Debug wins over the quiet flags; the quiet
// flags raise the level floor on the production config.
func Setup(opts Options, appName, appVersion string) error {
	var cfg zap.Config

	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		switch {
		case opts.UltraQuiet:
			cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
		case opts.Quiet:
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}

// Active returns the configured logger, or fallback when Setup has not run.
func Active(fallback *zap.Logger) *zap.Logger {
	if Logger != nil {
		return Logger
	}
	return fallback
}
