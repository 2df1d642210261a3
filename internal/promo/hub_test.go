package promo

import (
	"context"
	"testing"
	"time"

	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
)

func TestHubBroadcastReachesAllClients(t *testing.T) {
	t.Parallel()

	hub := NewHub(logger.New(logger.Options{ServiceName: "test"}))
	a := hub.Register("a")
	b := hub.Register("b")

	event := Event{Kind: KindLightning, ProductID: "p1", ProductName: "Keyboard", NewPrice: 8000}
	hub.Broadcast(event)

	for _, c := range []*Client{a, b} {
		select {
		case got := <-c.Events:
			if got != event {
				t.Fatalf("client %s: unexpected event %+v", c.ID, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %s: no event", c.ID)
		}
	}
}

func TestHubUnregisterClosesChannel(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	c := hub.Register("a")
	hub.Unregister("a")

	if _, ok := <-c.Events; ok {
		t.Fatal("expected closed channel after unregister")
	}

	// broadcasting after unregister must not panic
	hub.Broadcast(Event{Kind: KindSuggested, ProductID: "p2"})
}

func TestHubDropsForSlowClient(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	c := hub.Register("slow")

	for i := 0; i < cap(c.Events)+5; i++ {
		hub.Broadcast(Event{Kind: KindLightning, ProductID: "p1"})
	}

	if got := len(c.Events); got != cap(c.Events) {
		t.Fatalf("expected full buffer, got %d", got)
	}
}

func TestHubRunForwardsUntilStreamCloses(t *testing.T) {
	t.Parallel()

	hub := NewHub(nil)
	c := hub.Register("a")

	events := make(chan Event, 1)
	done := make(chan struct{})
	go func() {
		hub.Run(context.Background(), events)
		close(done)
	}()

	events <- Event{Kind: KindSuggested, ProductID: "p3", NewPrice: 28500}
	select {
	case got := <-c.Events:
		if got.ProductID != "p3" {
			t.Fatalf("unexpected event %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no event forwarded")
	}

	close(events)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after stream close")
	}
}
