package cmd

import (
	"context"
	"errors"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/learnkit/internal/binder"
	"github.com/abhisek/learnkit/internal/problem"
	"github.com/abhisek/learnkit/internal/screens/exercise"
	"github.com/abhisek/learnkit/internal/ui/theme"
	"github.com/spf13/cobra"
)

var hintCmd = &cobra.Command{
	Use:   "hint <name>",
	Short: "Show the hint for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reveal(cmd, args[0], (*binder.Exercise).Hint)
	},
}

var solutionCmd = &cobra.Command{
	Use:   "solution <name>",
	Short: "Show the solution for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reveal(cmd, args[0], (*binder.Exercise).Solution)
	},
}

type revealFunc func(*binder.Exercise, context.Context) (problem.Text, error)

// reveal prints a hint or solution. Missing content is not an error.
func reveal(cmd *cobra.Command, name string, fn revealFunc) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ex, err := rt.exercise(name)
	if err != nil {
		return err
	}

	text, err := fn(ex, cmd.Context())
	if err != nil {
		if problem.IsMissingContent(err) {
			printNotAvailable(cmd.OutOrStdout(), err)
			return nil
		}
		return err
	}
	lipgloss.Fprintln(cmd.OutOrStdout(), exercise.RenderText(text, 80))
	return nil
}

func printNotAvailable(w io.Writer, err error) {
	msg := "No solution available."
	if errors.Is(err, problem.ErrNoHint) {
		msg = "No hint available."
	}
	lipgloss.Fprintln(w, theme.Hint.Render(msg))
}
