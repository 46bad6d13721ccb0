package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sherine-k/onboarding/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Default returns a Config with the standard onboarding settings
func Default() *Config {
	return &Config{
		FrameDelay:         0,
		SimulationDuration: 10 * time.Minute,
		Population: PopulationConfig{
			Size:        50,
			FriendCount: 5,
		},
		MessageDelay: Range{Min: 5 * time.Second, Max: 10 * time.Second},
		Customers: CustomerConfig{
			Enabled:      true,
			Interarrival: Range{Min: 12 * time.Second, Max: 24 * time.Second},
			Service:      Range{Min: 12 * time.Second, Max: 18 * time.Second},
		},
		Arrivals: []Arrival{
			{Name: "newcomers", CronSchedule: "*/2 * * * *"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads and parses the configuration file. An empty filename
// yields the defaults. Environment overrides are applied before validation.
func LoadConfig(filename string) (*Config, error) {
	config := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.FrameDelay < 0 {
		return fmt.Errorf("frameDelay must not be negative")
	}

	if config.SimulationDuration <= 0 {
		return fmt.Errorf("simulationDuration must be greater than 0")
	}

	if config.Population.File == "" && config.Population.Size <= 0 {
		return fmt.Errorf("population.size must be greater than 0")
	}

	if config.Population.FriendCount <= 0 {
		return fmt.Errorf("population.friendCount must be greater than 0")
	}

	if err := validateRange("messageDelay", config.MessageDelay); err != nil {
		return err
	}

	if config.Customers.Enabled {
		if err := validateRange("customers.interarrival", config.Customers.Interarrival); err != nil {
			return err
		}
		if config.Customers.Interarrival.Max <= 0 {
			return fmt.Errorf("customers.interarrival must allow a positive delay")
		}
		if err := validateRange("customers.service", config.Customers.Service); err != nil {
			return err
		}
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	seen := map[string]bool{}
	for i, arrival := range config.Arrivals {
		if arrival.Name == "" {
			return fmt.Errorf("arrival %d: name is required", i)
		}

		if seen[arrival.Name] {
			return fmt.Errorf("arrival %s: name must be unique", arrival.Name)
		}
		seen[arrival.Name] = true

		if arrival.CronSchedule == "" {
			return fmt.Errorf("arrival %s: cronSchedule is required", arrival.Name)
		}

		if _, err := parser.Parse(arrival.CronSchedule); err != nil {
			return fmt.Errorf("arrival %s: invalid cronSchedule: %w", arrival.Name, err)
		}
	}

	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

func validateRange(name string, r Range) error {
	if r.Min < 0 {
		return fmt.Errorf("%s.min must not be negative", name)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max must not be below %s.min", name, name)
	}
	return nil
}

// applyEnvOverrides applies ONBOARDING_* environment variables to the config.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("ONBOARDING_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ONBOARDING_SEED: %w", err)
		}
		config.Seed = seed
	}

	if v := os.Getenv("ONBOARDING_POPULATION_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ONBOARDING_POPULATION_SIZE: %w", err)
		}
		config.Population.Size = size
	}

	if v := os.Getenv("ONBOARDING_SIMULATION_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ONBOARDING_SIMULATION_DURATION: %w", err)
		}
		config.SimulationDuration = d
	}

	if v := os.Getenv("ONBOARDING_FRAME_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ONBOARDING_FRAME_DELAY: %w", err)
		}
		config.FrameDelay = d
	}

	if v := os.Getenv("ONBOARDING_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	return nil
}
