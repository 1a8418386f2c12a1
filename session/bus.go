package session

import "sync"

// Bus broadcasts Session changes to any interested listener in the running
// process, decoupling publishers (login, logout, background token refresh)
// from subscribers. Delivery is synchronous and in subscription order.
type Bus struct {
	mu        sync.Mutex
	nextID    int
	listeners []busListener
}

type busListener struct {
	id int
	fn func(Session)
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener and returns its unsubscribe function.
// Subscribing or unsubscribing during a publish in progress does not affect
// the listener set used by that publish.
func (b *Bus) Subscribe(fn func(Session)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, busListener{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listeners {
			if l.id == id {
				// Copy so an in-flight publish keeps iterating its own snapshot.
				remaining := make([]busListener, 0, len(b.listeners)-1)
				remaining = append(remaining, b.listeners[:i]...)
				b.listeners = append(remaining, b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Publish notifies all current subscribers synchronously, in subscription
// order, passing the Session by value.
func (b *Bus) Publish(s Session) {
	b.mu.Lock()
	snapshot := make([]busListener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	for _, l := range snapshot {
		l.fn(s)
	}
}
