package cmd

import (
	"fmt"

	"github.com/RogueScr1be/fast-food-sub004/internal/application"
	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <event-id> <accepted|rejected>",
		Short: "Record whether a suggestion was accepted or rejected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.arbiter.RecordFeedback(cmd.Context(), application.FeedbackCommand{
				EventID: domain.EventID(args[0]),
				Action:  domain.UserAction(args[1]),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s for event %s\n", args[1], args[0])
			return err
		},
	}
}
