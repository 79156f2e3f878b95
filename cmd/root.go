package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts wireOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "rota",
		Short:         "rota: rotating speaker scheduler for lab meetings",
		Long:          "rota reads the group roster and presentation archive, keeps a rotation pool on disk, and draws the next run of speakers with a recency-weighted shuffle so everyone presents before anyone repeats.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.wire(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Dir, "dir", "", "Storage directory holding roster, archive, snapshot and schedule files")
	rootCmd.PersistentFlags().StringVar(&opts.Roster, "roster", "", "Roster file name or path (defaults to members.xlsx, then members.csv)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newPoolCmd(app),
		newRosterCmd(app),
		newScheduleCmd(app),
	)

	return rootCmd
}
