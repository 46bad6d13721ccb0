package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, 50, config.Population.Size)
	assert.Equal(t, 5, config.Population.FriendCount)
	assert.Equal(t, Range{Min: 5 * time.Second, Max: 10 * time.Second}, config.MessageDelay)
	assert.True(t, config.Customers.Enabled)
	assert.Equal(t, "info", config.Logging.Level)
	assert.NoError(t, validateConfig(config))
}

func TestLoadConfigWithoutFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default().SimulationDuration, config.SimulationDuration)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
frameDelay: 250ms
simulationDuration: 30m
seed: 42
population:
  size: 20
  friendCount: 3
messageDelay:
  min: 2s
  max: 4s
customers:
  enabled: false
arrivals:
  - name: mornings
    cronSchedule: "0 9 * * *"
  - name: steady
    cronSchedule: "@every 90s"
logging:
  level: debug
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, config.FrameDelay)
	assert.Equal(t, 30*time.Minute, config.SimulationDuration)
	assert.Equal(t, uint64(42), config.Seed)
	assert.Equal(t, 20, config.Population.Size)
	assert.Equal(t, 3, config.Population.FriendCount)
	assert.Equal(t, Range{Min: 2 * time.Second, Max: 4 * time.Second}, config.MessageDelay)
	assert.False(t, config.Customers.Enabled)
	require.Len(t, config.Arrivals, 2)
	assert.Equal(t, "@every 90s", config.Arrivals[1].CronSchedule)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "population: [", "failed to parse config file"},
		{"zero duration", "simulationDuration: 0s", "simulationDuration must be greater than 0"},
		{"negative frame delay", "frameDelay: -1s", "frameDelay must not be negative"},
		{"no population", "population:\n  size: 0", "population.size must be greater than 0"},
		{"no friends", "population:\n  friendCount: 0", "population.friendCount must be greater than 0"},
		{"inverted delay", "messageDelay:\n  min: 10s\n  max: 5s", "messageDelay.max must not be below"},
		{"arrival without name", "arrivals:\n  - cronSchedule: '* * * * *'", "name is required"},
		{"arrival without schedule", "arrivals:\n  - name: a", "cronSchedule is required"},
		{"duplicate arrival", "arrivals:\n  - {name: a, cronSchedule: '@hourly'}\n  - {name: a, cronSchedule: '@daily'}", "must be unique"},
		{"bad cron", "arrivals:\n  - name: a\n    cronSchedule: 'sometimes'", "invalid cronSchedule"},
		{"bad log level", "logging:\n  level: loud", "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestPopulationFileSkipsSizeCheck(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "population:\n  size: 0\n  file: people.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "people.yaml", config.Population.File)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ONBOARDING_SEED", "7")
	t.Setenv("ONBOARDING_POPULATION_SIZE", "12")
	t.Setenv("ONBOARDING_SIMULATION_DURATION", "2h")
	t.Setenv("ONBOARDING_FRAME_DELAY", "1s")
	t.Setenv("ONBOARDING_LOG_LEVEL", "trace")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, uint64(7), config.Seed)
	assert.Equal(t, 12, config.Population.Size)
	assert.Equal(t, 2*time.Hour, config.SimulationDuration)
	assert.Equal(t, time.Second, config.FrameDelay)
	assert.Equal(t, "trace", config.Logging.Level)
}

func TestEnvOverrideErrors(t *testing.T) {
	t.Setenv("ONBOARDING_SEED", "not-a-number")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ONBOARDING_SEED")
}
