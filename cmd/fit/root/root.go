package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rob-by06/workout-nutrition-tracker/internal/ui"
)

const Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:           "fit",
	Short:         "FitTrack — local workout and nutrition tracker",
	Long:          "FitTrack logs workouts and meals to flat JSON files and charts 7-day calorie/protein trends.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newFoodCmd(),
		newWorkoutCmd(),
		newMealCmd(),
		newTrendCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
