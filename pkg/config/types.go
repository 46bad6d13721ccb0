package config

import (
	"time"
)

// Config represents the entire configuration for the onboarding simulator
type Config struct {
	// FrameDelay is the real time spent per simulated instant; zero runs headless.
	FrameDelay         time.Duration `yaml:"frameDelay"`
	SimulationDuration time.Duration `yaml:"simulationDuration"`
	// Seed makes a run reproducible; zero picks a random seed.
	Seed         uint64           `yaml:"seed"`
	Population   PopulationConfig `yaml:"population"`
	MessageDelay Range            `yaml:"messageDelay"`
	Customers    CustomerConfig   `yaml:"customers"`
	Arrivals     []Arrival        `yaml:"arrivals"`
	Logging      LoggingConfig    `yaml:"logging"`
}

// PopulationConfig describes the seed population ("original gangsters")
type PopulationConfig struct {
	Size        int `yaml:"size"`
	FriendCount int `yaml:"friendCount"`

	// File loads the population from YAML instead of generating it
	File string `yaml:"file,omitempty"`
}

// Range is a uniform interval of simulated time
type Range struct {
	Min time.Duration `yaml:"min"`
	Max time.Duration `yaml:"max"`
}

// CustomerConfig configures the background customer load
type CustomerConfig struct {
	Enabled      bool  `yaml:"enabled"`
	Interarrival Range `yaml:"interarrival"`
	Service      Range `yaml:"service"`
}

// Arrival represents a recurring stream of newcomers
type Arrival struct {
	Name string `yaml:"name"`

	// Five-field cron expression or descriptor evaluated in simulated time
	CronSchedule string `yaml:"cronSchedule"`
}

// LoggingConfig configures operational logging
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `yaml:"level"`
}
