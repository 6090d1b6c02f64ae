package bookings

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
)

// completionLeaderLockKey is the fixed key used to ensure a single
// completion leader across instances.
const completionLeaderLockKey = "booking_completion:leader"

// CompletionWorker periodically flips elapsed confirmed bookings to
// completed. Completion is the one transition users never trigger.
type CompletionWorker struct {
	log            *zap.Logger
	cfg            *config.InternalConfig
	locker         contracts.LockerService
	bookingUsecase contracts.BookingUsecase
	stop           chan struct{}
	cron           *cron.Cron
	runCtx         context.Context
	cancel         context.CancelFunc
}

func NewCompletionWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, bookingUsecase contracts.BookingUsecase) *CompletionWorker {
	return &CompletionWorker{log: log, cfg: cfg, locker: lockerSvc, bookingUsecase: bookingUsecase, stop: make(chan struct{})}
}

// Start begins the periodic loop.
func (w *CompletionWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Booking.CompletionWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("booking.completion_worker: failed to schedule with provided cron spec; falling back to @every 5m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 5m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the worker cron and any in-flight refreshers.
func (w *CompletionWorker) Stop() {
	select {
	case <-w.stop:
		// already closed
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop() // wait for running jobs to finish
		<-ctx.Done()
	}
}

func (w *CompletionWorker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Booking.WorkerLockTTLInMinutes) * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, completionLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("booking.completion_worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("booking.completion_worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, completionLeaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		// refresh a bit before expiry (half TTL)
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, completionLeaderLockKey, token, ttl); err != nil {
					w.log.Warn("booking.completion_worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	// Drain elapsed bookings batch by batch until the backlog is empty or
	// a batch fails outright.
	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		completed, err := w.bookingUsecase.CompleteElapsedBookings(ctx)
		if err != nil {
			w.log.Warn("booking.completion_worker: completion batch failed", zap.Error(err))
			return
		}
		if completed < w.cfg.Booking.CompletionBatchSize {
			return
		}
	}
}
