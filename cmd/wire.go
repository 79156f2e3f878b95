package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	tomlrepo "github.com/labrota/rota/internal/adapters/repo/toml"
	"github.com/labrota/rota/internal/adapters/tabular/csvfile"
	"github.com/labrota/rota/internal/adapters/tabular/xlsxfile"
	"github.com/labrota/rota/internal/config"
	"github.com/labrota/rota/internal/logging"
	"github.com/labrota/rota/internal/ports"
)

type wireOptions struct {
	Dir      string
	Roster   string
	LogLevel string
}

type app struct {
	cfg       config.Config
	log       zerolog.Logger
	roster    ports.RosterSource
	archive   ports.ArchiveSource
	snapshots ports.SnapshotRepository
	schedules *csvfile.ScheduleStore
	clock     ports.Clock
}

func (a *app) wire(opts wireOptions) error {
	a.log = logging.New(opts.LogLevel)

	cfg, err := config.Load(viper.New(), config.Overrides{Dir: opts.Dir, Roster: opts.Roster})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if cfg.RosterIsWorkbook() {
		a.roster = xlsxfile.NewRosterReader(cfg.RosterPath, ports.SystemClock{}, a.log)
	} else {
		a.roster = csvfile.NewRosterReader(cfg.RosterPath, ports.SystemClock{}, a.log)
	}
	a.archive = csvfile.NewArchiveReader(cfg.ArchivePath, a.log)

	snapshots, err := tomlrepo.NewRepository(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("wire snapshot repository: %w", err)
	}
	a.snapshots = snapshots

	a.schedules = csvfile.NewScheduleStore(cfg.SchedulePath)
	a.clock = ports.SystemClock{}

	return nil
}
