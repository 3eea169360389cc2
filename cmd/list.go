package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/learnkit/internal/screens/exercise"
	"github.com/abhisek/learnkit/internal/ui/theme"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercises and the variables each one expects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, theme.Title.Render(lessonTitle))
		for _, ex := range rt.ns.Exercises() {
			line := fmt.Sprintf("%-6s %s", ex.Name, theme.Subtitle.Render(exercise.Kind(ex)))
			if vars := ex.Vars(); len(vars) > 0 {
				line += "  " + theme.Hint.Render(strings.Join(vars, ", "))
			}
			lipgloss.Fprintln(out, line)
		}
		return nil
	},
}
