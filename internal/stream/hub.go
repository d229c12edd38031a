package stream

import (
	"sync"

	"status_monitor/internal/models"
)

const subscriberBuffer = 16

// Hub fans incident notices out to live subscribers. Publish never blocks:
// a subscriber whose buffer is full misses the notice.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.IncidentNotice
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan models.IncidentNotice)}
}

// Subscribe returns a receive channel and a cancel func that closes it.
func (h *Hub) Subscribe() (<-chan models.IncidentNotice, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan models.IncidentNotice, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers n to every subscriber with room and returns how many got it.
func (h *Hub) Publish(n models.IncidentNotice) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, ch := range h.subs {
		select {
		case ch <- n:
			delivered++
		default:
		}
	}
	return delivered
}

// Len returns the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
