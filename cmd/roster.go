package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labrota/rota/internal/application"
)

func newRosterCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Work with the group roster",
	}

	cmd.AddCommand(newRosterCheckCmd(app))

	return cmd
}

func newRosterCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the roster file and list currently eligible members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := application.NewRosterService(app.roster, app.clock).Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "roster: %s\n", app.cfg.RosterPath)
			_, _ = fmt.Fprintf(out, "members: %d\n", report.Total)
			_, _ = fmt.Fprintf(out, "eligible: %d\n", len(report.Eligible))
			for _, member := range report.Eligible {
				_, _ = fmt.Fprintf(out, "  %s (%s)\n", member.ID(), member.Affiliation)
			}
			return nil
		},
	}
}
