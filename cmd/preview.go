package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/merrymath/internal/problemgen"
	"github.com/abhisek/merrymath/internal/screens/summary"
	"github.com/abhisek/merrymath/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play a plain-text round on stdin (no TUI)",
	Long: `Play a round in plain text, answering each question by its choice number.

Nothing is recorded and there is no pause between questions. Useful for
checking the question mix and the scoring without a terminal UI.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("table", 0, "Times table to practice (0 for a mixed challenge)")
	previewCmd.Flags().Int("count", session.DefaultRoundSize, "Number of questions")
}

func runPreview(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("table")
	count, _ := cmd.Flags().GetInt("count")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctrl := session.NewController(newGenerator(cfg), session.Config{RoundSize: count})
	if err := ctrl.Start(problemgen.Table(n)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for ctrl.Phase() == session.PhaseActive {
		st := ctrl.State()
		q := st.CurrentQuestion

		fmt.Fprintf(out, "── Question %d/%d ──\n", st.QuestionIndex+1, len(st.Queue))
		fmt.Fprintln(out, q.Text())
		for i, a := range q.Answers {
			fmt.Fprintf(out, "  %d) %d\n", i+1, a)
		}

		value, err := readChoice(scanner, out, q)
		if errors.Is(err, io.EOF) {
			st = ctrl.Abandon()
			fmt.Fprintf(out, "\nRound ended early after %d questions. Score: %d\n", st.Answered(), st.Score)
			return nil
		}
		if err != nil {
			return err
		}

		fb, _ := ctrl.Submit(value)
		if fb.Correct {
			fmt.Fprintf(out, "Correct! +%d (streak %d)\n", fb.Points, fb.Streak)
		} else {
			fmt.Fprintf(out, "Not quite. %d x %d = %d\n", q.Num1, q.Num2, fb.CorrectAnswer)
		}
		if fb.Milestone {
			fmt.Fprintf(out, "%d in a row!\n", fb.Streak)
		}
		fmt.Fprintln(out)
		ctrl.Advance(fb.Ticket)
	}

	sum, ok := ctrl.Summary()
	if !ok {
		return nil
	}
	fmt.Fprintln(out, "── Round complete ──")
	fmt.Fprintf(out, "Score: %d   Best streak: %d   Correct: %d/%d (%.0f%%)\n",
		sum.Score, sum.MaxStreak, sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100)
	fmt.Fprintln(out, summary.RankFor(sum.Score).Text)
	return nil
}

// readChoice prompts until the player enters a valid choice number. It
// returns io.EOF when input runs out.
func readChoice(scanner *bufio.Scanner, out io.Writer, q *problemgen.Question) (int, error) {
	for {
		fmt.Fprint(out, "Your answer (1-4): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read answer: %w", err)
			}
			return 0, io.EOF
		}
		value, err := problemgen.ParseChoice(strings.TrimSpace(scanner.Text()), q)
		if err == nil {
			return value, nil
		}
		fmt.Fprintf(out, "Please enter a choice between 1 and %d.\n", len(q.Answers))
	}
}
