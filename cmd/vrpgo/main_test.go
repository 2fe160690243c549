package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testInstanceJSON = `{
	"depots": [{"x": 0, "y": 0}],
	"clients": [
		{"x": 1, "y": 0, "delivery_demand": 1, "tw_late": 1000000, "required": true},
		{"x": 2, "y": 0, "delivery_demand": 1, "tw_late": 1000000, "required": true},
		{"x": 3, "y": 0, "delivery_demand": 1, "tw_late": 1000000, "required": true}
	],
	"vehicle_types": [
		{"num_available": 3, "capacity": 3, "tw_late": 1000000}
	]
}`

func writeTempInstance(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(testInstanceJSON), 0o644))
	return path
}

func TestLoadInstance_ParsesMinimalDocument(t *testing.T) {
	path := writeTempInstance(t)
	pd, err := loadInstance(path)
	require.NoError(t, err)
	require.Equal(t, 1, pd.NumDepots())
	require.Equal(t, 3, pd.NumClients())
	require.Len(t, pd.Distances, 1)
	require.Len(t, pd.Durations, 1)
}

func TestLoadInstance_RejectsMissingFile(t *testing.T) {
	_, err := loadInstance(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}

func TestLoadInstance_RejectsNoDepots(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"clients": []}`), 0o644))
	_, err := loadInstance(path)
	require.Error(t, err)
}

func TestRun_SolvesInstanceAndExitsOK(t *testing.T) {
	path := writeTempInstance(t)
	code := run([]string{"solve", path, "--seed", "1", "--max-iterations", "5"})
	require.Equal(t, exitOK, code)
}

func TestRun_ExitsParseErrorOnMissingInstance(t *testing.T) {
	code := run([]string{"solve", "/no/such/instance.json"})
	require.Equal(t, exitParseError, code)
}

func TestRun_ExitsParseErrorOnBadConfig(t *testing.T) {
	path := writeTempInstance(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("bogus_key = true\n"), 0o644))
	code := run([]string{"solve", path, "--config", cfgPath})
	require.Equal(t, exitParseError, code)
}

func TestRun_WritesStatsCSVWhenRequested(t *testing.T) {
	path := writeTempInstance(t)
	dir := t.TempDir()
	statsPath := filepath.Join(dir, "stats.csv")
	code := run([]string{"solve", path, "--max-iterations", "3", "--stats", statsPath})
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "iteration")
}
