package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"telegram-reminder-bot/internal/config"
	"telegram-reminder-bot/internal/handlers"
	"telegram-reminder-bot/internal/messages"
	"telegram-reminder-bot/internal/scheduler"
	"telegram-reminder-bot/internal/session"
	"telegram-reminder-bot/internal/storage"
	"telegram-reminder-bot/internal/utils"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN, REMINDER_* etc.

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	utils.Must(err)
	utils.Must(cfg.Validate())

	log, err := utils.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	utils.Must(err)
	slog.SetDefault(log)

	loc, err := cfg.Location()
	utils.Must(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, loc, log); err != nil {
		log.Error("bot stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, loc *time.Location, log *slog.Logger) error {
	utils.Must(tgbotapi.SetLogger(slog.NewLogLogger(log.Handler(), slog.LevelDebug)))
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("connect to telegram: %w", err)
	}
	api.Debug = cfg.Telegram.Debug
	log.Info("authorized", "account", api.Self.UserName)

	clock := clockwork.NewRealClock()

	db, err := storage.New(cfg.DB.Path, loc, clock)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := newSessionStore(cfg, clock)
	if err != nil {
		return err
	}

	bot := messages.NewBot(api)

	h, err := handlers.New(&handlers.Config{
		Sender:   bot,
		Store:    db,
		Sessions: sessions,
		Location: loc,
		Clock:    clock,
		Logger:   log.With("component", "handlers"),
	})
	if err != nil {
		return err
	}

	sch, err := scheduler.New(&scheduler.Config{
		Store:    db,
		Notifier: scheduler.NewDispatcher(bot, db),
		Interval: cfg.Scheduler.Interval,
		Location: loc,
		Clock:    clock,
		Logger:   log.With("component", "scheduler"),
	})
	if err != nil {
		return err
	}
	if err := sch.Start(ctx); err != nil {
		return err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = cfg.Telegram.Timeout
	updates := api.GetUpdatesChan(updateConfig)

	router := handlers.NewRouter(h.HandleUpdate)
	// updates already taken in are finished after a shutdown signal
	work := context.WithoutCancel(ctx)

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case upd, ok := <-updates:
			if !ok {
				break loop
			}
			router.Dispatch(work, upd)
		}
	}

	log.Info("shutting down")
	api.StopReceivingUpdates()
	router.Wait()
	if err := sch.Shutdown(); err != nil {
		log.Warn("scheduler shutdown failed", "error", err)
	}
	return nil
}

func newSessionStore(cfg *config.Config, clock clockwork.Clock) (session.Store, error) {
	if cfg.Session.Backend != config.SessionRedis {
		return session.NewMemory(clock, cfg.Session.TTL), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return session.NewRedis(&session.RedisConfig{RedisClient: client, TTL: cfg.Session.TTL, Clock: clock})
}
