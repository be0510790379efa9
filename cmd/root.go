package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "med",
		Short:         "med: browse meditation sessions and play them in the terminal",
		Long:          "med lists the meditation session catalog, filters it by tier or category, and plays a session with a pausable breathing guide.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd, viper.New(), flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.catalogSource, "catalog-source", "", "Catalog source: builtin, file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog-path", "", "Catalog file or database path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: error, warn, info, debug or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionsCmd(app),
		newPlayCmd(app),
		newCatalogCmd(app),
	)

	return rootCmd
}
