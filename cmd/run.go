package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	scheduleadapter "github.com/labrota/rota/internal/adapters/render/schedule"
	"github.com/labrota/rota/internal/application"
	"github.com/labrota/rota/internal/runlock"
)

func newRunCmd(app *app) *cobra.Command {
	var slots int
	var seed uint64
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw the next run of speakers and write the schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !dryRun {
				lock, err := runlock.Acquire(app.cfg.LockPath)
				if err != nil {
					return err
				}
				defer func() { _ = lock.Release() }()
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, seed))
			}

			if slots <= 0 {
				slots = app.cfg.Slots
			}

			service := application.NewSchedulerService(
				app.roster, app.archive, app.snapshots, app.schedules,
				app.clock, rng, app.log,
			)
			result, err := service.Run(cmd.Context(), application.RunOptions{
				Slots:  slots,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			if result.Reset {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Pool was empty: rotation restarted from the full eligible set.")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), scheduleadapter.RenderSchedule(result.Schedule))
			if dryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Dry run: no files were written.")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&slots, "slots", 0, fmt.Sprintf("Number of slots to fill (default from config, otherwise %d)", application.DefaultSlots))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed the shuffle for a reproducible draw")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and print the schedule without writing anything")

	return cmd
}
