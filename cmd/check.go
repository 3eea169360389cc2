package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/learnkit/internal/problem"
	"github.com/abhisek/learnkit/internal/submission"
	"github.com/abhisek/learnkit/internal/ui/theme"
	"github.com/spf13/cobra"
)

// errCheckFailed makes a wrong answer exit non-zero after the outcome
// has been printed.
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check an answer to an exercise",
	Long: `Check an answer to an exercise.

The answer is a JSON object mapping each expected variable to its value:

  learnkit check q_4 --file answer.json
  learnkit check q_2 --json '{"a": 5}'

Use --file - to read the answer from stdin. Thought experiments need no answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ex, err := rt.exercise(args[0])
		if err != nil {
			return err
		}

		sub := problem.Submission{}
		if ex.Checkable() {
			if sub, err = readSubmission(cmd); err != nil {
				return err
			}
		}

		out, err := ex.Check(cmd.Context(), sub)
		if err != nil {
			return fmt.Errorf("check %s: %w", ex.Name, err)
		}

		w := cmd.OutOrStdout()
		if out.Passed {
			lipgloss.Fprintln(w, theme.Correct.Render("✓ "+out.Message()))
			return nil
		}
		lipgloss.Fprintln(w, theme.Incorrect.Render("✗ "+out.Message()))
		return errCheckFailed
	},
}

func init() {
	checkCmd.Flags().String("json", "", "Answer as a JSON object")
	checkCmd.Flags().StringP("file", "f", "", "Read the answer from a JSON file (- for stdin)")
	checkCmd.MarkFlagsMutuallyExclusive("json", "file")
}

func readSubmission(cmd *cobra.Command) (problem.Submission, error) {
	raw, _ := cmd.Flags().GetString("json")
	path, _ := cmd.Flags().GetString("file")

	switch {
	case raw != "":
		return submission.Decode(strings.NewReader(raw))
	case path == "-":
		return submission.Decode(cmd.InOrStdin())
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open answer: %w", err)
		}
		defer f.Close()
		return submission.Decode(f)
	}
	return nil, errors.New("an answer is required: use --json or --file")
}
