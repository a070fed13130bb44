package bus

import (
	"sync"
	"testing"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBus_PublishReachesSubscriber(t *testing.T) {
	b := New()

	var got []*domain.Message
	b.Subscribe("bk1", func(msg *domain.Message) {
		got = append(got, msg)
	})

	b.Publish(&domain.Message{ID: "m1", BookingID: "bk1"})

	assert.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}

func TestBus_NoReplay(t *testing.T) {
	b := New()

	b.Publish(&domain.Message{ID: "m1", BookingID: "bk1"})

	var got []*domain.Message
	b.Subscribe("bk1", func(msg *domain.Message) {
		got = append(got, msg)
	})

	// only messages published after subscription arrive
	b.Publish(&domain.Message{ID: "m2", BookingID: "bk1"})

	assert.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)
}

func TestBus_IsolatedPerBooking(t *testing.T) {
	b := New()

	var got []*domain.Message
	b.Subscribe("bk1", func(msg *domain.Message) {
		got = append(got, msg)
	})

	b.Publish(&domain.Message{ID: "m1", BookingID: "bk2"})

	assert.Empty(t, got)
}

func TestBus_MultipleSubscribers(t *testing.T) {
	b := New()

	var a, c int
	b.Subscribe("bk1", func(msg *domain.Message) { a++ })
	b.Subscribe("bk1", func(msg *domain.Message) { c++ })

	b.Publish(&domain.Message{ID: "m1", BookingID: "bk1"})

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, c)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()

	var got int
	unsub := b.Subscribe("bk1", func(msg *domain.Message) { got++ })

	b.Publish(&domain.Message{ID: "m1", BookingID: "bk1"})
	unsub()
	b.Publish(&domain.Message{ID: "m2", BookingID: "bk1"})

	assert.Equal(t, 1, got)
}

func TestBus_UnsubscribeTwice(t *testing.T) {
	b := New()

	unsub := b.Subscribe("bk1", func(msg *domain.Message) {})
	unsub()
	unsub()

	b.Publish(&domain.Message{ID: "m1", BookingID: "bk1"})
}

func TestBus_ConcurrentPublish(t *testing.T) {
	b := New()

	var mu sync.Mutex
	got := 0
	b.Subscribe("bk1", func(msg *domain.Message) {
		mu.Lock()
		got++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Publish(&domain.Message{BookingID: "bk1"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, got)
}
