package cmd

import (
	"context"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/abhisek/learnkit/internal/session"
	"github.com/abhisek/learnkit/internal/store"
	"github.com/abhisek/learnkit/internal/ui/theme"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show check attempts and revealed hints and solutions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		sessionID, _ := cmd.Flags().GetString("session")
		rows, err := collectProgress(cmd.Context(), rt.store.EventRepo(), sessionID)
		if err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
			Headers("EXERCISE", "ATTEMPTS", "PASSED", "HINT", "SOLUTION").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return theme.Selected.Padding(0, 1)
				}
				return theme.Body.Padding(0, 1)
			})
		for _, name := range rt.ns.Names() {
			p := rows[name]
			if p == nil {
				p = &progress{}
			}
			t.Row(name, strconv.Itoa(p.attempts), strconv.Itoa(p.passes), times(p.hints), times(p.solutions))
		}

		out := cmd.OutOrStdout()
		scope := "all sessions"
		if sessionID != "" {
			scope = "session " + sessionID
		}
		lipgloss.Fprintln(out, theme.Title.Render(lessonTitle)+"  "+theme.Subtitle.Render(scope))
		lipgloss.Fprintln(out, t.String())
		return nil
	},
}

func init() {
	progressCmd.Flags().String("session", "", "Only show activity from this session ID")
}

type progress struct {
	attempts  int
	passes    int
	hints     int
	solutions int
}

// collectProgress aggregates recorded check and reveal events by exercise.
func collectProgress(ctx context.Context, repo store.EventRepo, sessionID string) (map[string]*progress, error) {
	rows := map[string]*progress{}
	get := func(name string) *progress {
		p, ok := rows[name]
		if !ok {
			p = &progress{}
			rows[name] = p
		}
		return p
	}

	if sessionID == "" {
		stats, err := repo.CheckStats(ctx)
		if err != nil {
			return nil, fmt.Errorf("load check stats: %w", err)
		}
		for _, s := range stats {
			p := get(s.ProblemName)
			p.attempts, p.passes = s.Attempts, s.Passes
		}
	} else {
		checks, err := repo.CheckEvents(ctx, store.QueryOpts{SessionID: sessionID})
		if err != nil {
			return nil, fmt.Errorf("load check events: %w", err)
		}
		for _, c := range checks {
			p := get(c.ProblemName)
			p.attempts++
			if c.Passed {
				p.passes++
			}
		}
	}

	reveals, err := repo.RevealEvents(ctx, store.QueryOpts{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("load reveal events: %w", err)
	}
	for _, r := range reveals {
		p := get(r.ProblemName)
		switch r.Kind {
		case string(session.KindHint):
			p.hints++
		case string(session.KindSolution):
			p.solutions++
		}
	}

	return rows, nil
}

// times renders how many sessions revealed something.
func times(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n) + "×"
}
