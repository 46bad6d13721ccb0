package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sherine-k/onboarding/pkg/clock"
	"github.com/sherine-k/onboarding/pkg/config"
	"github.com/sherine-k/onboarding/pkg/entity"
	"github.com/sherine-k/onboarding/pkg/logging"
	"github.com/sherine-k/onboarding/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSeed pins the global seed flag for the duration of a test
func withSeed(t *testing.T, value uint64) {
	t.Helper()
	old := seed
	seed = value
	t.Cleanup(func() { seed = old })
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.SimulationDuration = 5 * time.Minute
	cfg.Customers.Enabled = false
	cfg.Arrivals = []config.Arrival{{Name: "steady", CronSchedule: "@every 30s"}}
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	assert.Equal(t, "version", cmd.Use)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "onboarding version dev")
}

func TestNewPopulationCmd(t *testing.T) {
	cmd := newPopulationCmd()
	assert.Equal(t, "population", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("out"))
}

func TestRootCmdRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["population"])
	assert.True(t, names["version"])
}

func TestPopulationCmdWritesFile(t *testing.T) {
	withSeed(t, 7)
	path := filepath.Join(t.TempDir(), "people.yaml")

	cmd := newPopulationCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--out", path})
	require.NoError(t, cmd.Execute())

	population, err := entity.LoadPopulation(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Population.Size, population.Len())
	assert.Contains(t, out.String(), "Wrote 50 entities")
}

func TestPopulationCmdIsReproducible(t *testing.T) {
	withSeed(t, 7)

	generate := func() string {
		cmd := newPopulationCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	first := generate()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, generate())
}

func TestSimulationOptions(t *testing.T) {
	cfg := testConfig()
	cfg.FrameDelay = 10 * time.Millisecond
	cfg.Population.FriendCount = 3

	opts := simulationOptions(cfg)

	assert.Equal(t, 10*time.Millisecond, opts.FrameDelay)
	assert.Equal(t, 5*time.Minute, opts.Duration)
	assert.Equal(t, 3, opts.FriendCount)
	assert.Equal(t, simulation.Uniform{Min: 5 * time.Second, Max: 10 * time.Second}, opts.MessageDelay)
	assert.False(t, opts.Customers.Enabled)
	assert.Equal(t, []simulation.Arrival{{Name: "steady", CronSchedule: "@every 30s"}}, opts.Arrivals)
}

func TestSeedPopulationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: X
  friends: [Y, Z]
- name: Y
  friends: [X]
- name: Z
  friends: [X]
`), 0600))

	cfg := testConfig()
	cfg.Population.File = path

	population, err := seedPopulation(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, population.Names())
}

func TestSimulateRunsToCompletion(t *testing.T) {
	var out bytes.Buffer
	sim, err := simulate(context.Background(), testConfig(), &out, discardLogger(), nil)
	require.NoError(t, err)

	assert.Equal(t, clock.Finished, sim.State())
	assert.Equal(t, 5*time.Minute, sim.Now())
	assert.Greater(t, sim.Population().Len(), 50)
	assert.Contains(t, out.String(), "Starting simulation! There are 50 OGs!")
	assert.Contains(t, out.String(), "Simulation is finished!")
	assert.Contains(t, out.String(), "Welcome here!")
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		_, err := simulate(context.Background(), testConfig(), &out, discardLogger(), nil)
		require.NoError(t, err)
		return out.String()
	}
	assert.Equal(t, run(), run())
}

func TestSimulateWritesJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal", "messages.jsonl")
	journal, err := logging.OpenJournal(path)
	require.NoError(t, err)

	var out bytes.Buffer
	sim, err := simulate(context.Background(), testConfig(), &out, discardLogger(), journal)
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	messages := 0
	for _, r := range sim.Records() {
		if r.IsMessage() {
			messages++
		}
	}
	assert.Len(t, lines, messages)
	assert.Contains(t, lines[0], `"kind":"message-welcome"`)
	assert.Contains(t, lines[0], sim.ID().String())
}

func TestSimulateInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sim, err := simulate(ctx, testConfig(), &out, discardLogger(), nil)
	require.NoError(t, err)

	assert.Equal(t, clock.Paused, sim.State())
	assert.Contains(t, out.String(), "Simulation interrupted")
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	sim, err := simulate(context.Background(), testConfig(), &out, discardLogger(), nil)
	require.NoError(t, err)

	var rendered bytes.Buffer
	report(&rendered, sim)

	assert.Contains(t, rendered.String(), "Messages Over Time")
	assert.Contains(t, rendered.String(), "Event Summary")
	assert.Contains(t, rendered.String(), "No failures!")
}

func TestSimulateLogsTimeAdvanceAtTrace(t *testing.T) {
	var out, logs bytes.Buffer
	_, err := simulate(context.Background(), testConfig(), &out, logging.NewLogger("trace", &logs), nil)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "simulated time advanced")
	assert.Contains(t, logs.String(), "wall=2024-01-01T00:00:30Z")
}
