package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent decision events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := app.arbiter.History(cmd.Context(), app.household, days)
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(events)
			}

			if len(events) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no decisions recorded in this window")
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "decisions: %d\n", len(events))
			for _, event := range events {
				subject := "zero-cook plate"
				if event.DecisionType == domain.DecisionCook && event.MealKey != nil {
					subject = string(*event.MealKey)
				}
				fmt.Fprintf(out, "  %s  %-10s %-24s %-8s %s\n",
					event.DecidedAt.Local().Format(time.RFC3339),
					event.DecisionType,
					subject,
					event.UserAction,
					event.ID,
				)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Trailing window in days")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
