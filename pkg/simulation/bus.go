package simulation

// Observer receives every custom event published by a simulation
type Observer func(source *Simulation, event Event)

// Bus delivers custom events to observers in subscription order.
type Bus struct {
	next      int
	observers []subscription
}

type subscription struct {
	id       int
	observer Observer
}

// Subscribe registers an observer and returns a function that removes it.
func (b *Bus) Subscribe(o Observer) func() {
	b.next++
	id := b.next
	b.observers = append(b.observers, subscription{id: id, observer: o})
	return func() {
		for i, s := range b.observers {
			if s.id == id {
				b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

// Publish notifies every observer registered at the time of the call.
func (b *Bus) Publish(source *Simulation, event Event) {
	observers := append([]subscription(nil), b.observers...)
	for _, s := range observers {
		s.observer(source, event)
	}
}

// Len returns the number of registered observers
func (b *Bus) Len() int {
	return len(b.observers)
}
