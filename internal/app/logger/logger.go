package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger. Verbose mode uses the colored development
// encoder at debug level. The default is production JSON limited to
// warnings, so the run report stays the primary output of a quiet run.
func New(verbose bool) (*zap.Logger, error) {
	var config zap.Config

	if verbose {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return config.Build()
}

// MustNew creates a logger and panics if it fails.
func MustNew(verbose bool) *zap.Logger {
	log, err := New(verbose)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return log
}
