package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(viper.New(), Overrides{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "members.xlsx"), cfg.RosterPath)
	assert.Equal(t, filepath.Join(dir, "archive.csv"), cfg.ArchivePath)
	assert.Equal(t, filepath.Join(dir, "snapshot.toml"), cfg.SnapshotPath)
	assert.Equal(t, filepath.Join(dir, "schedule.csv"), cfg.SchedulePath)
	assert.Equal(t, filepath.Join(dir, "rota.lock"), cfg.LockPath)
	assert.Equal(t, DefaultSlots, cfg.Slots)
	assert.True(t, cfg.RosterIsWorkbook())
}

func TestLoadFallsBackToCSVRoster(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "members.csv"), []byte("Uni,First Name,Last Name,Consider,Start Date\n"), 0o644))

	cfg, err := Load(viper.New(), Overrides{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "members.csv"), cfg.RosterPath)
	assert.False(t, cfg.RosterIsWorkbook())
}

func TestLoadPrefersWorkbookWhenBothExist(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "members.csv"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "members.xlsx"), nil, 0o644))

	cfg, err := Load(viper.New(), Overrides{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "members.xlsx"), cfg.RosterPath)
}

func TestLoadRosterOverride(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(viper.New(), Overrides{Dir: dir, Roster: "lab-roster.csv"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "lab-roster.csv"), cfg.RosterPath)
}

func TestLoadConfiguredValues(t *testing.T) {
	dir := t.TempDir()

	v := viper.New()
	v.Set("storage.dir", dir)
	v.Set("storage.archive", "history.csv")
	v.Set("schedule.slots", 12)

	cfg, err := Load(v, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "history.csv"), cfg.ArchivePath)
	assert.Equal(t, 12, cfg.Slots)
}

func TestLoadRejectsNonPositiveSlots(t *testing.T) {
	v := viper.New()
	v.Set("storage.dir", t.TempDir())
	v.Set("schedule.slots", 0)

	_, err := Load(v, Overrides{})
	assert.ErrorContains(t, err, "schedule.slots must be positive")
}
