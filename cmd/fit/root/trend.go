package root

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rob-by06/workout-nutrition-tracker/internal/tracker"
	"github.com/rob-by06/workout-nutrition-tracker/internal/ui"
)

const trendBarWidth = 30

func newTrendCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Chart the last 7 days of calories and protein",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			end, err := dateArg(date)
			if err != nil {
				return err
			}
			series, err := svc.ComputeTrend(end)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrend, "7-Day Trend"))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconFlame+" Calories (kcal)"))
			printSeries(cmd, series, func(p tracker.DailyTotals) float64 { return p.TotalCalories }, ui.CalBar)
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconMuscle+" Protein (g)"))
			printSeries(cmd, series, func(p tracker.DailyTotals) float64 { return p.TotalProtein }, ui.ProtBar)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Window end date YYYY-MM-DD (default today)")

	return cmd
}

func printSeries(cmd *cobra.Command, series []tracker.DailyTotals, value func(tracker.DailyTotals) float64, style lipgloss.Style) {
	max := 0.0
	for _, p := range series {
		if v := value(p); v > max {
			max = v
		}
	}
	for _, p := range series {
		v := value(p)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			ui.Muted.Render(string(p.Date)),
			style.Render(ui.Bar(v, max, trendBarWidth)),
			fmt.Sprintf("%.1f", v))
	}
}
