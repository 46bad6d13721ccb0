package simulation

import "github.com/sherine-k/onboarding/pkg/entity"

// TriggerKind identifies an instruction for the dispatcher
type TriggerKind string

const (
	TriggerEntityInit      TriggerKind = "entity-init"
	TriggerEntityIntroduce TriggerKind = "entity-introduce"
	TriggerFriendsGreet    TriggerKind = "friends-greet"
)

// Trigger is a signal that makes the dispatcher schedule activities.
type Trigger interface {
	Kind() TriggerKind
}

// EntityInit announces that Entity has joined
type EntityInit struct {
	Entity *entity.Entity
}

func (EntityInit) Kind() TriggerKind { return TriggerEntityInit }

// EntityIntroduce asks Entity to introduce themselves to Initiator, who welcomed them.
type EntityIntroduce struct {
	Entity    *entity.Entity
	Initiator *entity.Entity
}

func (EntityIntroduce) Kind() TriggerKind { return TriggerEntityIntroduce }

// FriendsGreet asks every friend of Entity except Initiator to greet Entity.
type FriendsGreet struct {
	Entity    *entity.Entity
	Initiator *entity.Entity
}

func (FriendsGreet) Kind() TriggerKind { return TriggerFriendsGreet }

// Payload carries the entities of a trigger raised by kind name
type Payload struct {
	Entity    *entity.Entity
	Initiator *entity.Entity
}

// unrecognized is a trigger whose kind the dispatcher does not handle.
type unrecognized struct {
	kind TriggerKind
}

func (u unrecognized) Kind() TriggerKind { return u.kind }

// ParseTrigger builds a trigger from its kind name. Unknown kinds produce a
// trigger the dispatcher reports and ignores.
func ParseTrigger(kind string, payload Payload) Trigger {
	switch TriggerKind(kind) {
	case TriggerEntityInit:
		return EntityInit{Entity: payload.Entity}
	case TriggerEntityIntroduce:
		return EntityIntroduce{Entity: payload.Entity, Initiator: payload.Initiator}
	case TriggerFriendsGreet:
		return FriendsGreet{Entity: payload.Entity, Initiator: payload.Initiator}
	default:
		return unrecognized{kind: TriggerKind(kind)}
	}
}
