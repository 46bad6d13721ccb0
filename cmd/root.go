package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os/signal"
	"time"

	"github.com/sherine-k/onboarding/pkg/chart"
	"github.com/sherine-k/onboarding/pkg/config"
	"github.com/sherine-k/onboarding/pkg/console"
	"github.com/sherine-k/onboarding/pkg/entity"
	"github.com/sherine-k/onboarding/pkg/generator"
	"github.com/sherine-k/onboarding/pkg/logging"
	"github.com/sherine-k/onboarding/pkg/simulation"
	"github.com/spf13/cobra"
)

var (
	configFile       string
	showTimeline     bool
	timelineLimit    int
	showEventSummary bool
	logLevel         string
	journalPath      string
	seed             uint64
)

var rootCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Newcomer onboarding simulator",
	Long: `A CLI tool that simulates how newcomers are onboarded into a community.

Newcomers join on cron schedules, get welcomed by one of their friends,
introduce themselves and are greeted by their other friends. The run is
driven by a virtual clock and narrated to the console, followed by a chart
of message activity and a summary of the run.`,
	SilenceUsage: true,
	RunE:         runSimulation,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (defaults are used when empty)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed overriding the configuration (0 keeps the configured seed)")
	rootCmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show detailed timeline of triggers and messages")
	rootCmd.Flags().IntVarP(&timelineLimit, "timeline-limit", "l", 50, "Limit number of timeline records to display")
	rootCmd.Flags().BoolVarP(&showEventSummary, "summary", "s", true, "Show event summary")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log verbosity: info, debug or trace (overrides the configuration)")
	rootCmd.Flags().StringVar(&journalPath, "journal", "", "Append every interaction message to this JSONL file")

	rootCmd.AddCommand(newPopulationCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	journal, err := openJournal(journalPath)
	if err != nil {
		return err
	}
	defer journal.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
	defer stop()

	printConfiguration(out, cfg)

	sim, err := simulate(ctx, cfg, out, logger, journal)
	if err != nil {
		return err
	}

	report(out, sim)
	return nil
}

// loadConfiguration loads the configuration and applies the seed flag
func loadConfiguration() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	return cfg, nil
}

func openJournal(path string) (*logging.Journal, error) {
	if path == "" {
		return nil, nil
	}
	journal, err := logging.OpenJournal(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return journal, nil
}

func printConfiguration(out io.Writer, cfg *config.Config) {
	source := configFile
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(out, "Loaded configuration from %s\n", source)
	if cfg.Population.File != "" {
		fmt.Fprintf(out, "  - Population File: %s\n", cfg.Population.File)
	} else {
		fmt.Fprintf(out, "  - Population Size: %d\n", cfg.Population.Size)
	}
	fmt.Fprintf(out, "  - Friends per Entity: %d\n", cfg.Population.FriendCount)
	fmt.Fprintf(out, "  - Message Delay: %s - %s\n", cfg.MessageDelay.Min, cfg.MessageDelay.Max)
	fmt.Fprintf(out, "  - Simulation Duration: %s\n", cfg.SimulationDuration)
	fmt.Fprintf(out, "  - Arrival Streams: %d\n", len(cfg.Arrivals))
	fmt.Fprintf(out, "  - Seed: %d\n\n", cfg.Seed)
}

// newRand returns the deterministic generator for a seed
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// seedPopulation loads the configured population file or generates one
func seedPopulation(cfg *config.Config, gen *generator.Generator) (*entity.Population, error) {
	if cfg.Population.File != "" {
		population, err := entity.LoadPopulation(cfg.Population.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load population: %w", err)
		}
		return population, nil
	}

	population, err := gen.SeedPopulation(cfg.Population.Size, cfg.Population.FriendCount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate population: %w", err)
	}
	return population, nil
}

// simulationOptions maps the configuration onto simulation options
func simulationOptions(cfg *config.Config) simulation.Options {
	opts := simulation.DefaultOptions()
	opts.FrameDelay = cfg.FrameDelay
	opts.Duration = cfg.SimulationDuration
	opts.FriendCount = cfg.Population.FriendCount
	opts.MessageDelay = uniform(cfg.MessageDelay)
	opts.Customers = simulation.CustomerOptions{
		Enabled:      cfg.Customers.Enabled,
		Interarrival: uniform(cfg.Customers.Interarrival),
		Service:      uniform(cfg.Customers.Service),
	}
	opts.Arrivals = nil
	for _, arrival := range cfg.Arrivals {
		opts.Arrivals = append(opts.Arrivals, simulation.Arrival{
			Name:         arrival.Name,
			CronSchedule: arrival.CronSchedule,
		})
	}
	return opts
}

func uniform(r config.Range) simulation.Uniform {
	return simulation.Uniform{Min: r.Min, Max: r.Max}
}

// simulate seeds the population, runs the simulation to completion and
// returns it for reporting. An interrupted run is still returned.
func simulate(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger, journal *logging.Journal) (*simulation.Simulation, error) {
	rng := newRand(cfg.Seed)
	gen := generator.New(rng)

	population, err := seedPopulation(cfg, gen)
	if err != nil {
		return nil, err
	}

	var sim *simulation.Simulation
	opts := simulationOptions(cfg)
	opts.OriginalGangsters = population
	opts.Generator = gen
	opts.Rand = rng
	opts.Logger = logger
	opts.Sink = console.NewWriter(out, func() time.Duration { return sim.Now() })

	sim, err = simulation.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	sim.Subscribe(simulation.Narrate)
	sim.OnTimeAdvance(func(now time.Duration) {
		logger.Log(ctx, logging.LevelTrace, "simulated time advanced",
			"now", console.FormatTime(now), "wall", sim.Time().Format(time.RFC3339))
	})
	if journal != nil {
		sim.Subscribe(journalObserver(journal))
	}

	logger.Info("simulation created", "run", sim.ID().String(), "seed", cfg.Seed, "population", population.Len())

	if err := sim.Start(); err != nil {
		return nil, err
	}
	if err := sim.Run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("simulation failed: %w", err)
		}
		fmt.Fprintln(out, "\nSimulation interrupted")
	}

	return sim, nil
}

// journalObserver appends every published interaction message to the journal
func journalObserver(journal *logging.Journal) simulation.Observer {
	return func(sim *simulation.Simulation, event simulation.Event) {
		from, to := event.Participants()
		entry := map[string]any{
			"run":  sim.ID().String(),
			"at":   sim.Now().String(),
			"kind": string(event.Kind()),
		}
		if from != nil {
			entry["from"] = from.Name
		}
		if to != nil {
			entry["to"] = to.Name
		}
		journal.Log(entry)
	}
}

func report(out io.Writer, sim *simulation.Simulation) {
	chartGen := chart.NewGenerator()
	records := sim.Records()

	fmt.Fprintln(out, chartGen.GenerateActivityChart(records, sim.Now()))

	if showEventSummary {
		fmt.Fprintln(out, chartGen.GenerateEventSummary(records))
		fmt.Fprintf(out, "Population: %d entities, %d customers served\n\n", sim.Population().Len(), sim.Customers())
	}

	fmt.Fprintln(out, chartGen.GenerateFailures(sim.Failures()))

	if showTimeline {
		fmt.Fprintln(out, chartGen.GenerateDetailedTimeline(records, timelineLimit))
	}
}
