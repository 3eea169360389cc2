package cmd

import (
	"github.com/abhisek/learnkit/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Work through the exercises in the terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		return app.Run(lessonTitle, rt.ns, rt.tracker.SessionID())
	},
}
