// internal/cli/logging.go
package cli

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger builds the CLI logger. Default is warn-and-above on stderr so
// tabular output on stdout stays clean; --verbose switches to debug with
// the development encoder.
func Logger(verbose bool) *zap.SugaredLogger {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		l, err := cfg.Build()
		if err != nil {
			return zap.NewNop().Sugar()
		}
		return l.Sugar()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}
