package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/merrymath/internal/problemgen"
)

var tableCmd = &cobra.Command{
	Use:   "table N",
	Short: "Print a times table for study",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", problemgen.ErrInvalidTable, args[0])
		}
		facts, err := problemgen.TimesTable(problemgen.Table(n))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "The %d times table\n\n", n)
		for _, f := range facts {
			fmt.Fprintf(out, "  %2d x %2d = %3d\n", f.Num1, f.Num2, f.Product)
		}
		return nil
	},
}
