package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/merrymath/internal/problemgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round right away",
	Long:  "Start a round on one times table, or a mixed challenge with --table 0.",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("table")
		table := problemgen.Table(n)
		if !table.Valid() {
			return fmt.Errorf("%w: %d (want 0 for mixed or %d-%d)",
				problemgen.ErrInvalidTable, n, problemgen.MinTable, problemgen.MaxTable)
		}
		return runApp(cmd, &table)
	},
}

func init() {
	playCmd.Flags().Int("table", 0, "Times table to practice (0 for a mixed challenge)")
}
