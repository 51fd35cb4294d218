package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
	"github.com/rob-by06/workout-nutrition-tracker/internal/tracker"
	"github.com/rob-by06/workout-nutrition-tracker/internal/ui"
)

func newWorkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Manage the workout log",
	}

	cmd.AddCommand(
		newWorkoutLogCmd(),
		newWorkoutShowCmd(),
		newWorkoutListCmd(),
		newWorkoutRemoveCmd(),
	)

	return cmd
}

func newWorkoutLogCmd() *cobra.Command {
	var date string
	var name string
	var specs []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log (or replace) the session for a date",
		Long: `Log a workout session. One session per date: logging again for the same
date replaces the exercise list. Each --ex records the single best set for
that exercise, as Name:WEIGHTxREPS (weight in kg, 0 for bodyweight).

Sessions older than the ` + fmt.Sprint(storage.MaxWorkoutDates) + ` most recent training dates are dropped.`,
		Example: `  fit workout log --name Push --ex "Bench Press:80x5" --ex "Overhead Press:50x8"
  fit workout log --date 2025-08-27 --ex "Squat:100x5"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			d, err := dateArg(date)
			if err != nil {
				return err
			}
			exercises := make([]storage.ExerciseSet, 0, len(specs))
			for _, spec := range specs {
				set, err := tracker.ParseExerciseSpec(spec)
				if err != nil {
					return err
				}
				exercises = append(exercises, set)
			}

			session, err := svc.Workouts().UpsertSession(d, name, exercises)
			if err != nil {
				return err
			}
			label := session.Name
			if label == "" {
				label = "session"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s %s\n",
				ui.Good.Render(ui.IconDone+" Logged"), label, session.Date,
				ui.Muted.Render(fmt.Sprintf("(%d exercises)", len(session.Exercises))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Session date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Session name (e.g. Push, Legs)")
	cmd.Flags().StringArrayVarP(&specs, "ex", "e", nil, "Best set as Name:WEIGHTxREPS (repeatable)")

	return cmd
}

func newWorkoutShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Show the session for a date (default today)",
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

			session, err := svc.Workouts().GetSession(d)
			if err != nil {
				return err
			}
			printSession(cmd, session)
			return nil
		},
	}
}

func newWorkoutListCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			sessions := svc.Workouts().ListRecent(n)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWorkout, "Workout Log"))
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no sessions logged)"))
				return nil
			}
			for _, s := range sessions {
				label := s.Name
				if label == "" {
					label = "—"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(string(s.Date)), label,
					ui.Muted.Render(fmt.Sprintf("(%d exercises)", len(s.Exercises))))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", storage.MaxWorkoutDates, "Maximum sessions to list")

	return cmd
}

func newWorkoutRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <date>",
		Short: "Delete the session for a date",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("date is required")
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
			if err := svc.Workouts().DeleteSession(d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s session on %s\n", ui.Warn.Render("Deleted"), d)
			return nil
		},
	}
}

func printSession(cmd *cobra.Command, session *storage.WorkoutSession) {
	title := string(session.Date)
	if session.Name != "" {
		title += " — " + session.Name
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWorkout, title))
	if len(session.Exercises) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no exercises)"))
		return
	}
	for _, ex := range session.Exercises {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n",
			ui.Key.Render(ex.ExerciseName),
			ui.Muted.Render(fmt.Sprintf("%.1f kg × %d", ex.Weight, ex.Reps)))
	}
}
