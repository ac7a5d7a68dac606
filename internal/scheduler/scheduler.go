package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"telegram-reminder-bot/internal/storage"
)

// DefaultInterval is the wake cadence and so the worst-case delivery lag.
const DefaultInterval = 30 * time.Second

// Config holds the collaborators of a Scheduler.
type Config struct {
	Store    storage.Repository
	Notifier Notifier
	Interval time.Duration
	Location *time.Location
	Clock    clockwork.Clock
	Logger   *slog.Logger
}

// Scheduler scans the store on a fixed cadence and dispatches every due,
// unsent reminder. There is one instance per store; MarkSent after delivery
// is what keeps a reminder from being sent twice.
type Scheduler struct {
	db       storage.Repository
	notifier Notifier
	interval time.Duration
	loc      *time.Location
	clock    clockwork.Clock
	log      *slog.Logger

	cron gocron.Scheduler
}

// CycleResult summarizes one scan.
type CycleResult struct {
	Due    int
	Sent   int
	Failed int
}

func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("scheduler interval must be positive, got %s", cfg.Interval)
	}

	s := &Scheduler{
		db:       cfg.Store,
		notifier: cfg.Notifier,
		interval: cfg.Interval,
		loc:      cfg.Location,
		clock:    cfg.Clock,
		log:      cfg.Logger,
	}
	if s.interval == 0 {
		s.interval = DefaultInterval
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s, nil
}

// Start registers the scan job and starts the underlying gocron scheduler.
// The first scan runs immediately. Overlapping scans are skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	// Создаём планировщик на общих часах и в зоне бота
	cron, err := gocron.NewScheduler(
		gocron.WithLocation(s.loc),
		gocron.WithClock(s.clock),
		gocron.WithLogger(s.log),
	)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	// Регистрируем задачу проверки, первая проверка сразу
	_, err = cron.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			s.RunCycle(ctx)
		}),
		gocron.WithName("deliver-due-reminders"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = cron.Shutdown()
		return fmt.Errorf("register scan job: %w", err)
	}

	cron.Start()
	s.cron = cron
	s.log.Info("scheduler started", "interval", s.interval)
	return nil
}

// Shutdown stops the cadence and waits for a running scan to finish.
func (s *Scheduler) Shutdown() error {
	if s.cron == nil {
		return nil
	}
	return s.cron.Shutdown()
}

// RunCycle performs one scan. A failed delivery is logged, left unsent for the
// next cycle and never stops the remaining reminders.
func (s *Scheduler) RunCycle(ctx context.Context) CycleResult {
	var res CycleResult

	now := s.clock.Now().In(s.loc)
	due, err := s.db.ListDueUnsent(ctx, now)
	if err != nil {
		s.log.Error("list due reminders failed", "error", err)
		return res
	}
	res.Due = len(due)

	// ошибка одного напоминания не мешает остальным
	for _, r := range due {
		if ctx.Err() != nil {
			break
		}
		if err := s.notifier.Dispatch(ctx, r); err != nil {
			res.Failed++
			s.log.Warn("reminder dispatch failed",
				"reminder_id", r.ID, "user_id", r.UserID, "due_at", r.DueAt, "error", err)
			continue
		}
		res.Sent++
		s.log.Info("reminder sent", "reminder_id", r.ID, "user_id", r.UserID,
			"lag", now.Sub(r.DueAt).Round(time.Second))
	}

	if res.Due > 0 {
		s.log.Debug("scan finished", "due", res.Due, "sent", res.Sent, "failed", res.Failed)
	}
	return res
}
