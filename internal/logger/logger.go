package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/merrymath/internal/config"
)

// New builds the application logger. The terminal belongs to the TUI, so
// logs go to cfg.LogFile as JSON; with no log file configured logging is
// disabled.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg == nil || cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	zc.Sampling = nil
	return zc.Build()
}
