package simulation

import (
	"fmt"

	"github.com/sherine-k/onboarding/pkg/generator"
)

var greetings = []string{"Hey", "Hi", "Hello", "Servus"}

// Narrate is the observer that continues the onboarding chain: a welcome
// makes the newcomer introduce themselves, an introduction makes the
// newcomer's other friends greet them, and a greeting ends the chain.
// The responder of each message becomes the initiator of the next trigger.
func Narrate(sim *Simulation, event Event) {
	switch e := event.(type) {
	case WelcomeMessage:
		sim.Sink().Log(fmt.Sprintf("👋 [MESG] %s: Hello @%s! Welcome here!", e.From.Name, e.To.Name))
		sim.Trigger(EntityIntroduce{Entity: e.To, Initiator: e.From})

	case IntroduceMessage:
		sim.Sink().Log(fmt.Sprintf("👋 [MESG] %s: Oh thanks @%s! I am glad to be here with you! Let me introduce myself... My name is %s blah blah...",
			e.From.Name, e.To.Name, e.From.Name))
		sim.Trigger(FriendsGreet{Entity: e.From, Initiator: e.To})

	case GreetMessage:
		greeting := generator.PickRandomDistinct(sim.rng, greetings, 1)[0]
		sim.Sink().Log(fmt.Sprintf("👋 [MESG] %s: %s @%s!", e.From.Name, greeting, e.To.Name))

	default:
		kind := EventKind("<nil>")
		if event != nil {
			kind = event.Kind()
		}
		sim.Sink().Log(fmt.Sprintf("⚠️ [WARN] Ignoring event %q: unrecognized event kind", kind))
		sim.logger.Debug("event ignored", "kind", kind)
	}
}
