package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	renderadapter "github.com/RogueScr1be/fast-food-sub004/internal/adapters/render/decision"
	"github.com/RogueScr1be/fast-food-sub004/internal/application"
	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/spf13/cobra"
)

func newDecideCmd(app *app) *cobra.Command {
	var energy string
	var conflict bool
	var at string
	var asJSON bool
	var rotationDays int

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Get tonight's single dinner suggestion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDecide(cmd, app, decideOptions{
				energy:       energy,
				conflict:     conflict,
				at:           at,
				asJSON:       asJSON,
				rotationDays: rotationDays,
			})
		},
	}

	cmd.Flags().StringVar(&energy, "energy", string(domain.EnergyOK), "Energy level: low, ok, or high")
	cmd.Flags().BoolVar(&conflict, "conflict", false, "An evening calendar conflict is in play")
	cmd.Flags().StringVar(&at, "at", "", "Decision time as RFC3339 (default: now)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVar(&rotationDays, "rotation-days", 0, "Override the rotation-avoidance window in days")

	return cmd
}

type decideOptions struct {
	energy       string
	conflict     bool
	at           string
	asJSON       bool
	rotationDays int
}

func runDecide(cmd *cobra.Command, app *app, opts decideOptions) error {
	at := app.now()
	if opts.at != "" {
		parsed, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
		at = parsed
	}

	arbiter := app.arbiter
	if opts.rotationDays > 0 {
		arbiter = app.arbiterWith(opts.rotationDays)
	}

	req := application.DecideRequest{
		Household:        app.household,
		Energy:           domain.EnergyLevel(opts.energy),
		CalendarConflict: opts.conflict,
		At:               at,
	}

	var response domain.DecisionResponse
	decideCmd := func(ctx context.Context) error {
		var err error
		response, err = arbiter.Decide(ctx, req)
		return err
	}

	if opts.asJSON {
		if err := decideCmd(cmd.Context()); err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	}

	if err := runDecideSpinner(cmd.Context(), cmd.ErrOrStderr(), decideCmd); err != nil {
		return err
	}

	rendered, err := app.decisionRenderer(response, renderadapter.RenderOptions{Now: at})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
