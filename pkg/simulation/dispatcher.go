package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sherine-k/onboarding/pkg/clock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Scheduler is the part of the clock the dispatcher schedules activities on.
type Scheduler interface {
	Schedule(a clock.Activity) bool
}

// Dispatcher maps triggers to scheduled interaction activities.
type Dispatcher struct {
	actor
	scheduler Scheduler
	delay     Uniform
	logger    *slog.Logger
	tracer    trace.Tracer
}

// Dispatch logs the trigger and schedules the activities it calls for.
// Unknown kinds and incomplete payloads are reported on the sink and ignored.
func (d *Dispatcher) Dispatch(t Trigger) {
	kind := TriggerKind("<nil>")
	if t != nil {
		kind = t.Kind()
	}
	_, span := d.tracer.Start(context.Background(), "dispatch "+string(kind),
		trace.WithAttributes(attribute.String("onboarding.trigger", string(kind))))
	defer span.End()

	switch t := t.(type) {
	case EntityInit:
		if t.Entity == nil {
			d.reject(kind, "missing entity")
			return
		}
		d.sink.Log(fmt.Sprintf("🚀 [TRIG] %s joined! OGs %s know %s!",
			t.Entity.Name, strings.Join(t.Entity.FriendNames(), ", "), t.Entity.Name))
		d.schedule(&welcome{actor: d.actor, entity: t.Entity, delay: d.delay.Sample(d.rng)})

	case EntityIntroduce:
		if t.Entity == nil || t.Initiator == nil {
			d.reject(kind, "missing entity or initiator")
			return
		}
		d.sink.Log(fmt.Sprintf("🚀 [TRIG] %s wrote welcome message to %s! So it's triggering reaction!",
			t.Initiator.Name, t.Entity.Name))
		d.schedule(&introduce{actor: d.actor, entity: t.Entity, initiator: t.Initiator, delay: d.delay.Sample(d.rng)})

	case FriendsGreet:
		if t.Entity == nil || t.Initiator == nil {
			d.reject(kind, "missing entity or initiator")
			return
		}
		d.sink.Log(fmt.Sprintf("🚀 [TRIG] %s wrote introduce message and their friends will greet them!", t.Entity.Name))
		greeted := 0
		for _, friend := range t.Entity.Friends {
			if friend.Name == t.Initiator.Name {
				continue
			}
			d.schedule(&greet{actor: d.actor, entity: friend, target: t.Entity, delay: d.delay.Sample(d.rng)})
			greeted++
		}
		span.SetAttributes(attribute.Int("onboarding.greetings", greeted))

	default:
		d.reject(kind, "unrecognized trigger kind")
	}
}

func (d *Dispatcher) schedule(a clock.Activity) {
	if !d.scheduler.Schedule(a) {
		d.logger.Debug("activity not scheduled", "activity", a.Name())
	}
}

func (d *Dispatcher) reject(kind TriggerKind, reason string) {
	d.sink.Log(fmt.Sprintf("⚠️ [WARN] Ignoring trigger %q: %s", kind, reason))
	d.logger.Debug("trigger ignored", "kind", kind, "reason", reason)
}
