// Package bus is the in-process half of the message bus: per-booking
// fan-out of freshly published messages to live subscribers. The durable,
// ordered log lives in the messages table; the bus itself keeps no history,
// so a handler only ever sees messages published after it subscribed.
package bus

import (
	"sync"

	"github.com/Tellaman12/TaxiGo/internal/domain"
)

type Handler func(msg *domain.Message)

type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[int64]Handler
	next int64
}

func New() *Bus {
	return &Bus{subs: make(map[string]map[int64]Handler)}
}

// Subscribe registers a handler for one booking's messages and returns the
// matching unsubscribe func. Safe to call the returned func more than once.
func (b *Bus) Subscribe(bookingID string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[bookingID] == nil {
		b.subs[bookingID] = make(map[int64]Handler)
	}
	id := b.next
	b.next++
	b.subs[bookingID][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[bookingID], id)
		if len(b.subs[bookingID]) == 0 {
			delete(b.subs, bookingID)
		}
	}
}

// Publish synchronously invokes every handler currently subscribed to the
// message's booking. Handlers run outside the bus lock so they may
// subscribe or unsubscribe from within the callback.
func (b *Bus) Publish(msg *domain.Message) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[msg.BookingID]))
	for _, h := range b.subs[msg.BookingID] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(msg)
	}
}
