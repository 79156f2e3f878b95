package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	scheduleadapter "github.com/labrota/rota/internal/adapters/render/schedule"
	"github.com/labrota/rota/internal/application"
	"github.com/labrota/rota/internal/domain"
)

func newPoolCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Inspect or reset the rotation pool",
	}

	cmd.AddCommand(
		newPoolStatusCmd(app),
		newPoolResetCmd(app),
	)

	return cmd
}

func newPoolStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is still owed a talk in the current rotation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := application.NewPoolService(app.snapshots).Status(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrSnapshotNotFound) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No pool snapshot yet. The first run builds one from the eligible roster.")
					return nil
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), scheduleadapter.RenderPool(snapshot))
			return nil
		},
	}
}

func newPoolResetCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the pool snapshot so the next run starts a fresh rotation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("pool reset discards rotation state; re-run with --yes to confirm")
			}

			if err := application.NewPoolService(app.snapshots).Reset(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Pool snapshot cleared. The next run rebuilds it from the eligible roster.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
