package cmd

import (
	"fmt"

	"github.com/RogueScr1be/fast-food-sub004/internal/application"
	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and seed the meal catalog",
	}

	cmd.AddCommand(newCatalogListCmd(app), newCatalogSeedCmd(app))

	return cmd
}

func newCatalogListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog meals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meals, err := app.catalogRepo.ListMeals(cmd.Context())
			if err != nil {
				return err
			}

			if len(meals) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "catalog is empty; run 'ffsub catalog seed' to install the starter catalog")
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "meals: %d\n", len(meals))
			for _, meal := range meals {
				state := "active"
				if !meal.Active {
					state = "retired"
				}
				fmt.Fprintf(out, "  %-26s %-30s %3d min  %s\n", meal.Key, meal.Title, meal.EstimatedMinutes, state)
			}

			if err := domain.ValidateSafeCore(meals); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			return nil
		},
	}
}

func newCatalogSeedCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Install the starter catalog and pantry inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			existing, err := app.catalogRepo.ListMeals(cmd.Context())
			if err != nil {
				return err
			}
			if len(existing) > 0 && !force {
				return fmt.Errorf("catalog at %s already has %d meals; re-run with --force to overwrite", app.catalogRepo.Path(), len(existing))
			}

			meals, ingredients := application.StarterCatalog()
			if err := app.catalogRepo.ReplaceCatalog(cmd.Context(), meals, ingredients); err != nil {
				return err
			}

			items, err := app.inventoryRepo.List(cmd.Context())
			if err != nil {
				return err
			}
			seededInventory := false
			if len(items) == 0 {
				if err := app.inventoryRepo.Replace(cmd.Context(), application.StarterInventory(app.now())); err != nil {
					return err
				}
				seededInventory = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seeded %d meals into %s\n", len(meals), app.catalogRepo.Path())
			if seededInventory {
				fmt.Fprintln(out, "seeded starter pantry inventory")
			} else {
				fmt.Fprintln(out, "inventory already has items; left untouched")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing catalog")

	return cmd
}
