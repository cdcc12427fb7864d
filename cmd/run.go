package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/merrymath/internal/app"
	"github.com/abhisek/merrymath/internal/config"
	"github.com/abhisek/merrymath/internal/logger"
	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/session"
	"github.com/abhisek/merrymath/internal/store"
)

// runApp loads configuration, opens the round log and launches the TUI.
// A non-nil start table skips the menu and begins a round right away.
func runApp(cmd *cobra.Command, start *problemgen.Table) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := store.Open(cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	log.Info("starting",
		zap.String("version", displayVersion(version)),
		zap.Int("round_size", cfg.RoundSize),
		zap.Duration("feedback_delay", cfg.FeedbackDelay),
		zap.Uint64("seed", cfg.Seed))

	return app.Run(app.Options{
		Generator:  newGenerator(cfg),
		Rounds:     st.RoundRepo(),
		Logger:     log,
		Session:    sessionConfig(cfg),
		StartTable: start,
	})
}

func newGenerator(cfg *config.Config) *problemgen.RandomGenerator {
	gc := problemgen.DefaultConfig()
	gc.Seed = cfg.Seed
	return problemgen.New(gc)
}

func sessionConfig(cfg *config.Config) session.Config {
	return session.Config{
		RoundSize:     cfg.RoundSize,
		FeedbackDelay: cfg.FeedbackDelay,
	}
}
