package stream

import (
	"testing"

	"status_monitor/internal/models"
)

func TestHub_PublishSubscribeCancel(t *testing.T) {
	h := NewHub()
	a, cancelA := h.Subscribe()
	b, cancelB := h.Subscribe()
	defer cancelB()

	if n := h.Publish(models.IncidentNotice{Product: "Batch API"}); n != 2 {
		t.Fatalf("delivered = %d; want 2", n)
	}
	if got := <-a; got.Product != "Batch API" {
		t.Fatalf("a got %+v", got)
	}
	if got := <-b; got.Product != "Batch API" {
		t.Fatalf("b got %+v", got)
	}

	cancelA()
	cancelA()
	if _, ok := <-a; ok {
		t.Fatalf("channel should be closed after cancel")
	}
	if h.Len() != 1 {
		t.Fatalf("len = %d; want 1", h.Len())
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer; i++ {
		if n := h.Publish(models.IncidentNotice{}); n != 1 {
			t.Fatalf("publish %d delivered %d", i, n)
		}
	}
	if n := h.Publish(models.IncidentNotice{}); n != 0 {
		t.Fatalf("full subscriber should be skipped, delivered %d", n)
	}
}
