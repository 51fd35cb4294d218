package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
	"github.com/rob-by06/workout-nutrition-tracker/internal/ui"
)

func newMealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meal",
		Short: "Manage the nutrition log",
	}

	cmd.AddCommand(
		newMealLogCmd(),
		newMealListCmd(),
		newMealRemoveCmd(),
	)

	return cmd
}

func newMealLogCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log <food> <grams>",
		Short: "Log a meal (food must exist in the catalog)",
		Long: `Log a meal for a date. The food is referenced by its exact catalog name
and must exist when the meal is logged. Meals older than the ` + fmt.Sprint(storage.MaxMealDates) + ` most
recent logged dates are dropped.`,
		Example: `  fit meal log "Chicken Breast" 200
  fit meal log Rice 150 --date 2025-08-28`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("food name and grams are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("grams must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			d, err := dateArg(date)
			if err != nil {
				return err
			}
			grams, _ := strconv.ParseFloat(args[1], 64)

			entry, err := svc.LogMeal(d, args[0], grams)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.0f g %s on %s\n",
				ui.Good.Render(ui.IconPlus+" Logged"), entry.GramsConsumed, entry.FoodName, entry.Date)

			totals, err := svc.DayTotals(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Day so far",
				fmt.Sprintf("%.1f kcal / %.1f g protein", totals.TotalCalories, totals.TotalProtein)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Meal date YYYY-MM-DD (default today)")

	return cmd
}

func newMealListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [date]",
		Short: "List meals for a date (default today) with running totals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			d, err := dateArg(arg)
			if err != nil {
				return err
			}

			meals := svc.Meals().ListMeals(d)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMeal, "Meals on "+string(d)))
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no meals logged)"))
				return nil
			}
			for i, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.Muted.Render(fmt.Sprintf("[%d]", i)),
					ui.Muted.Render(m.Time),
					ui.Key.Render(m.FoodName),
					fmt.Sprintf("%.0f g", m.GramsConsumed))
			}

			totals, err := svc.DayTotals(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Totals",
				fmt.Sprintf("%.1f kcal / %.1f g protein", totals.TotalCalories, totals.TotalProtein)))
			return nil
		},
	}
}

func newMealRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <date> <index>",
		Short: "Delete a meal by date and list index",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("date and index are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("index must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			d, err := storage.ParseDate(args[0])
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[1])
			if err := svc.Meals().DeleteMeal(d, index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s meal #%d on %s\n", ui.Warn.Render("Deleted"), index, d)
			return nil
		},
	}
}
