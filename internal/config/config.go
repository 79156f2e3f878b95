// Package config resolves where rota keeps its data files and the default
// run parameters. Everything lives in one storage directory so the whole
// rotation state can be copied or backed up as a unit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/labrota/rota/internal/application"
)

const (
	storageDirKey   = "storage.dir"
	rosterFileKey   = "storage.roster"
	archiveFileKey  = "storage.archive"
	snapshotFileKey = "storage.snapshot"
	scheduleFileKey = "storage.schedule"
	slotsKey        = "schedule.slots"

	configDirName  = ".config"
	configAppDir   = "rota"
	configFileName = "rota"
	configFileType = "toml"

	defaultRosterFile   = "members.xlsx"
	fallbackRosterFile  = "members.csv"
	defaultArchiveFile  = "archive.csv"
	defaultSnapshotFile = "snapshot.toml"
	defaultScheduleFile = "schedule.csv"
	lockFileName        = "rota.lock"
)

// DefaultSlots covers one semester of weekly meetings.
const DefaultSlots = application.DefaultSlots

// Overrides carries command-line values that take precedence over the
// config file.
type Overrides struct {
	Dir    string
	Roster string
}

// Config holds fully resolved absolute paths plus run defaults.
type Config struct {
	Dir          string
	RosterPath   string
	ArchivePath  string
	SnapshotPath string
	SchedulePath string
	LockPath     string
	Slots        int
}

// RosterIsWorkbook reports whether the roster should be read as an Excel
// workbook rather than CSV.
func (c Config) RosterIsWorkbook() bool {
	switch strings.ToLower(filepath.Ext(c.RosterPath)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}

// Load reads the optional config file from ~/.config/rota/rota.toml and
// applies overrides on top. A missing config file is not an error.
func Load(cfg *viper.Viper, ov Overrides) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configFileName)
	cfg.SetConfigType(configFileType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName, configAppDir))
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	dir := ov.Dir
	if dir == "" {
		dir = cfg.GetString(storageDirKey)
	}
	if dir == "" {
		dir = filepath.Join(homeDir, configAppDir)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve storage directory: %w", err)
	}

	roster := ov.Roster
	if roster == "" {
		roster = cfg.GetString(rosterFileKey)
	}
	rosterPath := resolveRoster(dir, roster)

	slots := DefaultSlots
	if cfg.IsSet(slotsKey) {
		slots = cfg.GetInt(slotsKey)
	}
	if slots <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", slotsKey, slots)
	}

	return Config{
		Dir:          dir,
		RosterPath:   rosterPath,
		ArchivePath:  resolvePath(dir, cfg.GetString(archiveFileKey), defaultArchiveFile),
		SnapshotPath: resolvePath(dir, cfg.GetString(snapshotFileKey), defaultSnapshotFile),
		SchedulePath: resolvePath(dir, cfg.GetString(scheduleFileKey), defaultScheduleFile),
		LockPath:     filepath.Join(dir, lockFileName),
		Slots:        slots,
	}, nil
}

// resolveRoster picks the roster file. When nothing is configured it
// prefers the workbook but falls back to CSV if only that exists.
func resolveRoster(dir, configured string) string {
	if configured != "" {
		return resolvePath(dir, configured, configured)
	}

	workbook := filepath.Join(dir, defaultRosterFile)
	if _, err := os.Stat(workbook); err == nil {
		return workbook
	}
	csv := filepath.Join(dir, fallbackRosterFile)
	if _, err := os.Stat(csv); err == nil {
		return csv
	}
	return workbook
}

func resolvePath(dir, configured, fallback string) string {
	name := configured
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
