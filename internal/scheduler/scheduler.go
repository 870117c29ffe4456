package scheduler

import (
	"context"
	"errors"
	"fmt"
	"spa/config"
	"spa/infras/otel"
	"spa/internal/domains/assignment/service"
	"spa/shared/constant"
	"spa/shared/failure"
	"spa/shared/timezone"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler periodically reassigns rooms for today and the next DaysAhead days,
// so stored assignments follow provider changes without anyone opening the board.
type Scheduler struct {
	cron        *cron.Cron
	assignments service.Assignment
	cfg         *config.Config
	otel        otel.Otel

	mu      sync.Mutex
	started bool
}

func New(assignments service.Assignment, cfg *config.Config, otel otel.Otel) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		assignments: assignments,
		cfg:         cfg,
		otel:        otel,
	}
}

// Start registers the recompute job. It is a no-op when the scheduler is disabled.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Scheduler.Enable || s.started {
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Scheduler.Spec, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			log.Error().Err(err).Msg("Scheduled recompute failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule recompute %q: %w", s.cfg.Scheduler.Spec, err)
	}

	s.cron.Start()
	s.started = true

	log.Info().Str("spec", s.cfg.Scheduler.Spec).Int("daysAhead", s.cfg.Scheduler.DaysAhead).Msg("Assignment scheduler started")

	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	<-s.cron.Stop().Done()
	s.started = false

	log.Info().Msg("Assignment scheduler stopped")
}

// RunOnce recomputes every scheduled date. A failing date does not stop the others.
func (s *Scheduler) RunOnce(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".RunOnce")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var errs []error

	for _, date := range s.Dates() {
		err := s.assignments.Recompute(ctx, date)

		if errors.Is(err, failure.ProviderNotConfigured) {
			log.Debug().Msg("Booking provider not configured, skipping scheduled recompute")

			return nil
		}

		if err != nil {
			log.Error().Err(err).Str("date", date).Msg("failed to recompute assignments")
			errs = append(errs, fmt.Errorf("%s: %w", date, err))

			continue
		}

		log.Debug().Str("date", date).Msg("Recomputed assignments")
	}

	return errors.Join(errs...)
}

// Dates returns today and the following DaysAhead days in the application timezone.
func (s *Scheduler) Dates() []string {
	today := timezone.Now()
	days := max(0, s.cfg.Scheduler.DaysAhead)

	dates := make([]string, 0, days+1)
	for i := 0; i <= days; i++ {
		dates = append(dates, timezone.Format(today.AddDate(0, 0, i), constant.DayFormat))
	}

	return dates
}
