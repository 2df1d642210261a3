package promo

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/minjaeyoo/shopcore-backend/pkg/config"
	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
	"github.com/minjaeyoo/shopcore-backend/pkg/metrics"
)

// SaleApplier runs one promotion tick against the session state. The
// boolean reports whether a product was flagged; a false return is a
// silent no-op, never an error.
type SaleApplier interface {
	ApplyLightningSale() (Event, bool)
	ApplySuggestedSale() (Event, bool)
}

// SchedulerParams configure the promotion scheduler.
type SchedulerParams struct {
	Logger  *logger.Logger
	Applier SaleApplier
	Metrics *metrics.PromoMetrics
	Config  config.PromoConfig

	// StartDelay overrides the random initial delay; tests use it to
	// remove jitter.
	StartDelay func(max time.Duration) time.Duration
}

// Scheduler drives the two independently-phased promotion processes and
// publishes one event per successful tick on a single channel.
type Scheduler struct {
	logg       *logger.Logger
	applier    SaleApplier
	metrics    *metrics.PromoMetrics
	cfg        config.PromoConfig
	startDelay func(max time.Duration) time.Duration

	events chan Event
}

// NewScheduler builds a promotion scheduler.
func NewScheduler(params SchedulerParams) (*Scheduler, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Applier == nil {
		return nil, fmt.Errorf("sale applier required")
	}
	buffer := params.Config.EventBuffer
	if buffer <= 0 {
		buffer = 16
	}
	startDelay := params.StartDelay
	if startDelay == nil {
		startDelay = randomDelay
	}
	return &Scheduler{
		logg:       params.Logger,
		applier:    params.Applier,
		metrics:    params.Metrics,
		cfg:        params.Config,
		startDelay: startDelay,
		events:     make(chan Event, buffer),
	}, nil
}

// Events is the notification stream consumed by the view layer. At most
// one event is delivered per successful tick, in tick order.
func (s *Scheduler) Events() <-chan Event {
	return s.events
}

// Run starts both promotion processes and blocks until the context is
// canceled. Stopping is whole-session teardown; there is no per-tick
// cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var runErr error

	loops := []struct {
		kind     Kind
		delayMax time.Duration
		interval time.Duration
		tick     func() (Event, bool)
	}{
		{KindLightning, s.cfg.LightningStartDelayMax, s.cfg.LightningInterval, s.applier.ApplyLightningSale},
		{KindSuggested, s.cfg.SuggestedStartDelayMax, s.cfg.SuggestedInterval, s.applier.ApplySuggestedSale},
	}

	for _, loop := range loops {
		loop := loop
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.runLoop(ctx, loop.kind, loop.delayMax, loop.interval, loop.tick)
			mu.Lock()
			runErr = multierr.Append(runErr, err)
			mu.Unlock()
		}()
	}

	wg.Wait()
	close(s.events)
	return runErr
}

func (s *Scheduler) runLoop(ctx context.Context, kind Kind, delayMax, interval time.Duration, tick func() (Event, bool)) error {
	loopCtx := s.logg.WithPromoKind(ctx, string(kind))

	delay := s.startDelay(delayMax)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	s.logg.Info(s.logg.WithField(loopCtx, "initial_delay_ms", delay.Milliseconds()), "promo loop started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logg.Info(loopCtx, "promo loop stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runTick(loopCtx, kind, tick)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context, kind Kind, tick func() (Event, bool)) {
	start := time.Now()
	event, applied := tick()
	s.metrics.ObserveTick(string(kind), time.Since(start))

	if !applied {
		s.metrics.IncSkipped(string(kind))
		return
	}
	s.metrics.IncApplied(string(kind))

	select {
	case s.events <- event:
	default:
		// a stalled consumer must not block the tick loop
		s.logg.Warn(s.logg.WithProductID(ctx, event.ProductID), "promo event dropped, buffer full")
		return
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"product_id": event.ProductID,
		"new_price":  event.NewPrice,
	})
	s.logg.Info(ctx, "promo applied")
}

func randomDelay(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}
