package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scheduleadapter "github.com/labrota/rota/internal/adapters/render/schedule"
)

func newScheduleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Work with the written schedule",
	}

	cmd.AddCommand(newScheduleShowCmd(app))

	return cmd
}

func newScheduleShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the most recently written schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schedule, err := app.schedules.Load(cmd.Context())
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No schedule has been written yet. Run `rota run` first.")
					return nil
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), scheduleadapter.RenderSchedule(schedule))
			return nil
		},
	}
}
