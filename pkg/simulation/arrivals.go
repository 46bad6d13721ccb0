package simulation

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sherine-k/onboarding/pkg/clock"
)

// Arrival describes a recurring stream of newcomers joining the population.
type Arrival struct {
	Name         string
	CronSchedule string
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSchedule parses a five-field cron expression or an @descriptor such as "@every 90s".
func ParseSchedule(expr string) (cron.Schedule, error) {
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cron schedule %q: %w", expr, err)
	}
	return schedule, nil
}

// arrivalSource waits for the next fire time of its schedule in simulated
// wall time, lets a newcomer join and re-schedules itself.
type arrivalSource struct {
	arrival  Arrival
	schedule cron.Schedule
	sim      *Simulation
}

func (a *arrivalSource) Name() string { return "arrival:" + a.arrival.Name }

func (a *arrivalSource) Script() []clock.Step {
	now := a.sim.clock.Time()
	next := a.schedule.Next(now)
	if next.IsZero() {
		return nil
	}
	return []clock.Step{
		clock.Wait(next.Sub(now)),
		clock.Call(func() error {
			return a.sim.arrive(a.arrival.Name)
		}),
		clock.Do(func() {
			a.sim.clock.Schedule(a)
		}),
	}
}
