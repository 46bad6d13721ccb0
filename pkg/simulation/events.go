package simulation

import (
	"time"

	"github.com/sherine-k/onboarding/pkg/entity"
)

// EventKind identifies the outcome of a completed interaction
type EventKind string

const (
	EventMessageWelcome   EventKind = "message-welcome"
	EventMessageReaction  EventKind = "message-reaction"
	EventMessageIntroduce EventKind = "message-introduce"
	EventMessageGreet     EventKind = "message-greet"
)

// Event is a custom event emitted by an interaction activity.
type Event interface {
	Kind() EventKind
	Participants() (from, to *entity.Entity)
}

// WelcomeMessage is emitted when a friend welcomes a newcomer
type WelcomeMessage struct {
	From *entity.Entity
	To   *entity.Entity
}

func (WelcomeMessage) Kind() EventKind { return EventMessageWelcome }

func (m WelcomeMessage) Participants() (from, to *entity.Entity) { return m.From, m.To }

// IntroduceMessage is emitted when a newcomer introduces themselves to the welcomer
type IntroduceMessage struct {
	From *entity.Entity
	To   *entity.Entity
}

func (IntroduceMessage) Kind() EventKind { return EventMessageIntroduce }

func (m IntroduceMessage) Participants() (from, to *entity.Entity) { return m.From, m.To }

// GreetMessage is emitted when a friend greets the newcomer
type GreetMessage struct {
	From *entity.Entity
	To   *entity.Entity
}

func (GreetMessage) Kind() EventKind { return EventMessageGreet }

func (m GreetMessage) Participants() (from, to *entity.Entity) { return m.From, m.To }

// RecordType tells whether a record is a dispatched trigger or a published event.
type RecordType string

const (
	RecordTrigger RecordType = "trigger"
	RecordEvent   RecordType = "event"
)

// Record is a point-in-time entry in the run history
type Record struct {
	Time    time.Duration
	Type    RecordType
	Kind    string
	From    string
	To      string
	Message string
}

// IsMessage reports whether the record is a published interaction event
func (r Record) IsMessage() bool {
	return r.Type == RecordEvent
}

func nameOf(e *entity.Entity) string {
	if e == nil {
		return ""
	}
	return e.Name
}
