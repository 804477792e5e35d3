package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/prayer-times-bot/internal/config"
	"github.com/diegoclair/prayer-times-bot/internal/database"
	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/service"
	"github.com/diegoclair/prayer-times-bot/internal/handlers"
	"github.com/diegoclair/prayer-times-bot/internal/i18n"
	"github.com/diegoclair/prayer-times-bot/internal/logger"
	"github.com/diegoclair/prayer-times-bot/internal/timetable"
	"github.com/diegoclair/prayer-times-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	if envErr != nil {
		log.Warn().Msg(".env file not found, using the environment")
	}

	if err := cfg.Validate(true); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	loc, _ := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	store := timetable.NewStore(timetable.NewSource(cfg.TimetableSource))
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Str("source", cfg.TimetableSource).Msg("failed to load time table")
	}
	if stats := store.Stats(); !stats.Covers(time.Now().In(loc)) {
		log.Warn().
			Str("source", cfg.TimetableSource).
			Str("first", stats.First.Format(domain.DateLayout)).
			Str("last", stats.Last.Format(domain.DateLayout)).
			Msg("time table does not cover today, schedules will be reported as missing")
	}

	translator, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load translations")
	}

	slackClient := slack.New(cfg.SlackBotToken)

	botUserID := cfg.SlackBotUserID
	if botUserID == "" {
		auth, err := slackClient.AuthTestContext(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to resolve the bot user id, set SLACK_BOT_USER_ID")
		}
		botUserID = auth.UserID
	}

	svc := service.NewInstance(database.NewInstance(db), slackClient, store, translator, service.Options{
		Location:            loc,
		DefaultLocationName: cfg.DefaultLocation,
		DefaultLanguage:     cfg.DefaultLanguage,
		DispatchInterval:    cfg.DispatchInterval,
		DrainTimeout:        cfg.DrainTimeout,
	})

	if err := svc.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer svc.Scheduler.Stop()

	handler := handlers.New(svc.Settings, svc.Schedule, handlers.Options{
		SigningSecret: cfg.SlackSigningSecret,
		BotUserID:     botUserID,
		AdminUserIDs:  cfg.AdminUserIDs,
		CalendarDays:  cfg.CalendarDays,
		FeedSecret:    cfg.FeedSecret,
		PublicURL:     cfg.PublicURL,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("timezone", cfg.Timezone).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
