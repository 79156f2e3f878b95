package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCLI(t, dir, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev", strings.TrimSpace(stdout))
}

func TestRosterCheckListsEligibleMembers(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "roster", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "members: 4")
	assert.Contains(t, stdout, "eligible: 3")
	assert.Contains(t, stdout, "Ada Lovelace")
	assert.NotContains(t, stdout, "Dora Marr")
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "run", "--dry-run", "--seed", "1", "--slots", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "slots: 2")
	assert.Contains(t, stdout, "Dry run: no files were written.")

	assert.NoFileExists(t, filepath.Join(dir, "schedule.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "snapshot.toml"))
}

func TestRunWritesScheduleAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "run", "--seed", "1", "--slots", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "slots: 2")

	data, err := os.ReadFile(filepath.Join(dir, "schedule.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,uni", lines[0])

	require.FileExists(t, filepath.Join(dir, "snapshot.toml"))

	status, _, err := executeCLI(t, dir, "pool", "status")
	require.NoError(t, err)
	assert.Contains(t, status, "owed a turn: 1")
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	first, _, err := executeCLI(t, dir, "run", "--dry-run", "--seed", "42", "--slots", "3")
	require.NoError(t, err)

	second, _, err := executeCLI(t, dir, "run", "--dry-run", "--seed", "42", "--slots", "3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPoolStatusBeforeFirstRun(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "pool", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No pool snapshot yet")
}

func TestPoolResetRequiresConfirmation(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	_, _, err := executeCLI(t, dir, "pool", "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestPoolResetClearsSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	_, _, err := executeCLI(t, dir, "run", "--seed", "1", "--slots", "2")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "snapshot.toml"))

	stdout, _, err := executeCLI(t, dir, "pool", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pool snapshot cleared")
	assert.NoFileExists(t, filepath.Join(dir, "snapshot.toml"))
}

func TestScheduleShowBeforeFirstRun(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	stdout, _, err := executeCLI(t, dir, "schedule", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No schedule has been written yet")
}

func TestScheduleShowAfterRun(t *testing.T) {
	dir := t.TempDir()
	writeRotationFixture(t, dir)

	_, _, err := executeCLI(t, dir, "run", "--seed", "7", "--slots", "2")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, dir, "schedule", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "slots: 2")
}

func TestRunFailsWhenRosterMissing(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCLI(t, dir, "run", "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster")
}

func executeCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--dir", dir, "--log-level", "error"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeRotationFixture(t *testing.T, dir string) {
	t.Helper()

	roster := strings.Join([]string{
		"Uni,First Name,Last Name,Consider,Start Date",
		"aa1,Ada,Lovelace,yes,1/5/2020",
		"bb2,Grace,Hopper,yes,1/5/2020",
		"cc3,Alan,Turing,yes,1/5/2020",
		"dd4,Dora,Marr,no,1/5/2020",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "members.csv"), []byte(roster), 0o644))

	archive := strings.Join([]string{
		"Speaker,Date ",
		"Ada Lovelace,1/10/2024",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive.csv"), []byte(archive), 0o644))
}
