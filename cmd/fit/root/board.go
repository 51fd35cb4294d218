package root

import (
	"github.com/spf13/cobra"

	"github.com/rob-by06/workout-nutrition-tracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}
			return tui.RunBoard(svc, cmd.OutOrStdout())
		},
	}
}
