package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ffsub",
		Short:         "ffsub: decide what's for dinner without negotiating",
		Long:          "ffsub (fast food substitute) keeps a meal catalog and a rough pantry inventory, then answers 'what's for dinner' with exactly one suggestion. On low-energy or conflicted evenings it routes to a zero-cook rescue plate instead.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDecideCmd(app),
		newCatalogCmd(app),
		newInventoryCmd(app),
		newHistoryCmd(app),
		newFeedbackCmd(app),
	)

	return rootCmd
}
