package promo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/minjaeyoo/shopcore-backend/pkg/config"
	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
)

type stubApplier struct {
	mu        sync.Mutex
	lightning []Event
	suggested []Event
}

func (s *stubApplier) ApplyLightningSale() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lightning) == 0 {
		return Event{}, false
	}
	event := s.lightning[0]
	s.lightning = s.lightning[1:]
	return event, true
}

func (s *stubApplier) ApplySuggestedSale() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.suggested) == 0 {
		return Event{}, false
	}
	event := s.suggested[0]
	s.suggested = s.suggested[1:]
	return event, true
}

func testConfig() config.PromoConfig {
	return config.PromoConfig{
		LightningStartDelayMax: time.Millisecond,
		LightningInterval:      5 * time.Millisecond,
		SuggestedStartDelayMax: time.Millisecond,
		SuggestedInterval:      time.Hour, // keep the suggested loop quiet
		EventBuffer:            8,
	}
}

func newTestScheduler(t *testing.T, applier SaleApplier, cfg config.PromoConfig) *Scheduler {
	t.Helper()

	s, err := NewScheduler(SchedulerParams{
		Logger:     logger.New(logger.Options{ServiceName: "test"}),
		Applier:    applier,
		Config:     cfg,
		StartDelay: func(max time.Duration) time.Duration { return 0 },
	})
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return s
}

func TestSchedulerEmitsEventsInTickOrder(t *testing.T) {
	t.Parallel()

	applier := &stubApplier{
		lightning: []Event{
			{Kind: KindLightning, ProductID: "p1", ProductName: "Keyboard", NewPrice: 8000},
			{Kind: KindLightning, ProductID: "p2", ProductName: "Mouse", NewPrice: 16000},
		},
	}
	s := newTestScheduler(t, applier, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var got []Event
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case event := <-s.Events():
			got = append(got, event)
		case <-deadline:
			t.Fatalf("timed out with %d events", len(got))
		}
	}
	cancel()
	<-done

	if got[0].ProductID != "p1" || got[1].ProductID != "p2" {
		t.Fatalf("events out of order: %+v", got)
	}
}

func TestSchedulerSkipsSilentlyWhenNothingApplies(t *testing.T) {
	t.Parallel()

	s := newTestScheduler(t, &stubApplier{}, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case event, ok := <-s.Events():
		if ok {
			t.Fatalf("unexpected event %+v", event)
		}
	case <-time.After(50 * time.Millisecond):
	}
	cancel()
	<-done
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	s := newTestScheduler(t, &stubApplier{}, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected context error from Run")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	// event channel is closed on teardown
	if _, ok := <-s.Events(); ok {
		t.Fatal("expected closed event channel")
	}
}

func TestNewSchedulerValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewScheduler(SchedulerParams{Applier: &stubApplier{}}); err == nil {
		t.Fatal("expected error when logger missing")
	}
	if _, err := NewScheduler(SchedulerParams{Logger: logger.New(logger.Options{ServiceName: "test"})}); err == nil {
		t.Fatal("expected error when applier missing")
	}
}
