package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sherine-k/onboarding/pkg/clock"
	"github.com/sherine-k/onboarding/pkg/console"
	"github.com/sherine-k/onboarding/pkg/entity"
	"github.com/sherine-k/onboarding/pkg/generator"
)

// ErrPreconditionViolation marks an activity started on entities that cannot satisfy it.
var ErrPreconditionViolation = errors.New("precondition violation")

// actor bundles what an interaction needs to narrate and report its outcome.
type actor struct {
	sink console.Sink
	rng  *rand.Rand
	emit func(Event)
}

// welcome picks a random friend of a newcomer who writes them a welcome message.
type welcome struct {
	actor
	entity *entity.Entity
	delay  time.Duration
}

func (w *welcome) Name() string { return "welcome:" + w.entity.Name }

func (w *welcome) Script() []clock.Step {
	var friend *entity.Entity
	return []clock.Step{
		clock.Call(func() error {
			picked := generator.PickRandomDistinct(w.rng, w.entity.Friends, 1)
			if len(picked) == 0 {
				return fmt.Errorf("%w: %s has no friends to welcome them", ErrPreconditionViolation, w.entity.Name)
			}
			friend = picked[0]
			w.sink.Log(fmt.Sprintf("🗓️ [EVNT] Somebody needs to react about joining %s! We randomly select: %s", w.entity.Name, friend.Name))
			return nil
		}),
		clock.Wait(w.delay),
		clock.Do(func() {
			w.emit(WelcomeMessage{From: friend, To: w.entity})
		}),
	}
}

// introduce makes a newcomer answer the friend who welcomed them.
type introduce struct {
	actor
	entity    *entity.Entity
	initiator *entity.Entity
	delay     time.Duration
}

func (i *introduce) Name() string { return "introduce:" + i.entity.Name }

func (i *introduce) Script() []clock.Step {
	return []clock.Step{
		clock.Do(func() {
			i.sink.Log(fmt.Sprintf("🗓️ [EVNT] Now %s has to react to %s and introduce themselves!", i.entity.Name, i.initiator.Name))
		}),
		clock.Wait(i.delay),
		clock.Do(func() {
			i.emit(IntroduceMessage{From: i.entity, To: i.initiator})
		}),
	}
}

// greet makes one friend greet a newcomer.
type greet struct {
	actor
	entity *entity.Entity
	target *entity.Entity
	delay  time.Duration
}

func (g *greet) Name() string { return "greet:" + g.entity.Name + "->" + g.target.Name }

func (g *greet) Script() []clock.Step {
	return []clock.Step{
		clock.Do(func() {
			g.sink.Log(fmt.Sprintf("🗓️ [EVNT] %s will greet their friend %s!", g.entity.Name, g.target.Name))
		}),
		clock.Wait(g.delay),
		clock.Do(func() {
			g.emit(GreetMessage{From: g.entity, To: g.target})
		}),
	}
}

// customer occupies the clock for a service time and emits nothing.
type customer struct {
	id      int
	service time.Duration
}

func (c *customer) Name() string { return fmt.Sprintf("customer:%d", c.id) }

func (c *customer) Script() []clock.Step {
	return []clock.Step{clock.Wait(c.service)}
}

// customerSource generates customers with random inter-arrival times.
type customerSource struct {
	rng          *rand.Rand
	schedule     func(clock.Activity) bool
	interarrival Uniform
	service      Uniform
	count        *int
}

func (s *customerSource) Name() string { return "customer-source" }

func (s *customerSource) Script() []clock.Step {
	return []clock.Step{
		clock.Wait(s.interarrival.Sample(s.rng)),
		clock.Do(func() {
			*s.count++
			s.schedule(&customer{id: *s.count, service: s.service.Sample(s.rng)})
			s.schedule(s)
		}),
	}
}
