package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rob-by06/workout-nutrition-tracker/internal/storage"
	"github.com/rob-by06/workout-nutrition-tracker/internal/ui"
)

func newFoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Manage the food catalog",
	}

	cmd.AddCommand(
		newFoodAddCmd(),
		newFoodListCmd(),
		newFoodEditCmd(),
		newFoodRemoveCmd(),
	)

	return cmd
}

func newFoodAddCmd() *cobra.Command {
	var cal float64
	var prot float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a food to the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("food name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			item := storage.FoodItem{Name: args[0], CaloriesPer100g: cal, ProteinPer100g: prot}
			if err := svc.Foods().Add(item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				item.Name,
				ui.Muted.Render(fmt.Sprintf("(%.1f kcal / %.1f g protein per 100g)", cal, prot)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&cal, "cal", 0, "Calories per 100g")
	cmd.Flags().Float64Var(&prot, "prot", 0, "Protein grams per 100g")

	return cmd
}

func newFoodListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the food catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			items := svc.Foods().ListAll()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconFood, "Food Catalog"))
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty — add foods with `fit food add`)"))
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n",
					ui.Key.Render(item.Name),
					ui.Muted.Render(fmt.Sprintf("%.1f kcal / %.1f g protein per 100g", item.CaloriesPer100g, item.ProteinPer100g)))
			}
			return nil
		},
	}
}

func newFoodEditCmd() *cobra.Command {
	var newName string
	var cal float64
	var prot float64

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit a catalog food (only the given flags change)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("food name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			current, err := svc.Foods().Get(args[0])
			if err != nil {
				return err
			}
			item := *current
			if cmd.Flags().Changed("name") {
				item.Name = newName
			}
			if cmd.Flags().Changed("cal") {
				item.CaloriesPer100g = cal
			}
			if cmd.Flags().Changed("prot") {
				item.ProteinPer100g = prot
			}

			if err := svc.Foods().Update(args[0], item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Updated"), item.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "Rename the food")
	cmd.Flags().Float64Var(&cal, "cal", 0, "Calories per 100g")
	cmd.Flags().Float64Var(&prot, "prot", 0, "Protein grams per 100g")

	return cmd
}

func newFoodRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a food from the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("food name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openApp()
			if err != nil {
				return err
			}

			if err := svc.Foods().Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Warn.Render("Deleted"), args[0],
				ui.Muted.Render("(existing meals that reference it will count zero in reports)"))
			return nil
		},
	}
}
