package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/merrymath/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "merrymath",
	Short: "Festive multiplication table practice",
	Long:  "Merry Math is a terminal game for practicing the 2 to 12 times tables, one 20-question round at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./merrymath.yaml when present)")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file (overrides MERRYMATH_LOG_FILE)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed the question generator for repeatable rounds (overrides MERRYMATH_SEED)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration from the config file, environment and
// command-line flags, in increasing order of priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		cfg.LogFile = f.Value.String()
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
