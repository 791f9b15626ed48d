package cmd

import (
	"fmt"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/spf13/cobra"
)

func newInventoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the rough pantry inventory",
	}

	cmd.AddCommand(
		newInventoryListCmd(app),
		newInventorySetCmd(app),
		newInventoryRemoveCmd(app),
	)

	return cmd
}

func newInventoryListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inventory items with decayed estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.inventoryRepo.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(items) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "inventory is empty")
				return err
			}

			now := app.now()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "items: %d\n", len(items))
			for _, item := range items {
				qtyText := "qty unknown"
				if qty, known := item.RemainingQty(now); known {
					qtyText = fmt.Sprintf("~%.1f %s", qty, item.Unit)
				}
				available := "unlikely"
				if item.LikelyAvailable(now, domain.DefaultAvailabilityThreshold) {
					available = "likely"
				}
				fmt.Fprintf(out, "  %-20s %-16s confidence %.2f  %s\n", item.Name, qtyText, item.DecayedConfidence(now), available)
			}

			return nil
		},
	}
}

func newInventorySetCmd(app *app) *cobra.Command {
	var qty float64
	var used float64
	var unit string
	var confidence float64
	var decayRate float64

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Record a fresh observation of an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := domain.InventoryItem{
				Name:       args[0],
				Unit:       unit,
				Confidence: confidence,
				LastSeenAt: app.now(),
			}
			if cmd.Flags().Changed("qty") {
				item.QtyEstimated = &qty
			}
			if cmd.Flags().Changed("used") {
				item.QtyUsedEstimated = &used
			}
			if cmd.Flags().Changed("decay-rate") {
				item.DecayRatePerDay = &decayRate
			}

			if err := app.inventoryRepo.Upsert(cmd.Context(), item); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "recorded %s\n", item.Name)
			return err
		},
	}

	cmd.Flags().Float64Var(&qty, "qty", 0, "Estimated quantity on hand (omit if unknown)")
	cmd.Flags().Float64Var(&used, "used", 0, "Estimated quantity already used")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit label, e.g. count, g, cups")
	cmd.Flags().Float64Var(&confidence, "confidence", 0.9, "Observation confidence in [0,1]")
	cmd.Flags().Float64Var(&decayRate, "decay-rate", 0, "Per-day quantity decay rate override")

	return cmd
}

func newInventoryRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.inventoryRepo.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}
