package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ricirt/notification-pattern/internal/domain"
)

// DefaultDelay is the length of the simulated I/O step.
const DefaultDelay = time.Second

// Hooks carries the observation callbacks injected by main.
// Nil fields are treated as no-ops so the service stays metrics-agnostic.
type Hooks struct {
	OnOutcome   func(o domain.Outcome, elapsed time.Duration)
	OnCancelled func(elapsed time.Duration)
}

// OperationService runs the sample business rule over a date and a
// validity flag, reporting what it finds as an Outcome.
type OperationService struct {
	delay  time.Duration
	now    func() time.Time
	hooks  Hooks
	logger *zap.Logger
}

// Option configures an OperationService.
type Option func(*OperationService)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(s *OperationService) { s.delay = d }
}

// WithClock overrides time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *OperationService) { s.now = now }
}

// WithHooks installs observation callbacks, typically metrics.ServiceHooks.
func WithHooks(h Hooks) Option {
	return func(s *OperationService) { s.hooks = h }
}

// NewOperationService returns a service using DefaultDelay and time.Now
// unless overridden by opts.
func NewOperationService(logger *zap.Logger, opts ...Option) *OperationService {
	s := &OperationService{
		delay:  DefaultDelay,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hooks.OnOutcome == nil {
		s.hooks.OnOutcome = func(domain.Outcome, time.Duration) {}
	}
	if s.hooks.OnCancelled == nil {
		s.hooks.OnCancelled = func(time.Duration) {}
	}
	return s
}

// Operation evaluates date and valid against today:
//
//	date after today      → error Service.GreaterThanToday, no waiting
//	(simulated I/O step, cancellable)
//	valid == false        → error Service.InvalidOperation
//	date before today     → success with warning Service.DateLessThanToday
//	otherwise             → plain success
//
// Only the calendar date of the input is compared. If ctx is done before
// the I/O step completes, no Outcome is produced and the context error is
// returned instead.
func (s *OperationService) Operation(ctx context.Context, date time.Time, valid bool) (domain.Outcome, error) {
	start := time.Now()
	day := civilDate(date)
	today := civilDate(s.now())

	if day.After(today) {
		return s.finish(domain.Notify(DateGreaterThanToday), start), nil
	}

	if err := s.wait(ctx); err != nil {
		s.logger.Debug("operation cancelled",
			zap.String("date", day.Format(time.DateOnly)),
			zap.Error(err),
		)
		s.hooks.OnCancelled(time.Since(start))
		return domain.Outcome{}, fmt.Errorf("operation: %w", err)
	}

	if !valid {
		return s.finish(domain.Notify(InvalidOperation), start), nil
	}

	var notifications []domain.Notification
	if day.Before(today) {
		notifications = append(notifications, DateLessThanToday)
	}

	o, err := domain.SuccessWith(notifications...)
	if err != nil {
		// Only warnings are collected above.
		return domain.Outcome{}, fmt.Errorf("build success outcome: %w", err)
	}
	return s.finish(o, start), nil
}

func (s *OperationService) finish(o domain.Outcome, start time.Time) domain.Outcome {
	s.hooks.OnOutcome(o, time.Since(start))
	return o
}

// wait blocks for the configured delay or until ctx is done, whichever
// comes first. An already-cancelled ctx returns immediately.
func (s *OperationService) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// civilDate drops the time of day, keeping the date as written in t's
// own location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
