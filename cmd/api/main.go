// @title Event Planner API
// @version 1.0
// @description Event authoring (drafts, agenda, speakers, tickets, sponsors), published events, simulated ticket purchases and the public catalog.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventplanner/config"
	"eventplanner/internal/adapters/agenda"
	"eventplanner/internal/adapters/auth"
	"eventplanner/internal/adapters/calendar"
	"eventplanner/internal/adapters/catalog"
	"eventplanner/internal/adapters/email"
	"eventplanner/internal/adapters/publisher"
	"eventplanner/internal/adapters/session"
	"eventplanner/internal/adapters/sessionize"
	"eventplanner/internal/clock"
	deliveryhttp "eventplanner/internal/delivery/http"
	"eventplanner/internal/delivery/http/controllers"
	"eventplanner/internal/domain"
	"eventplanner/internal/repository/postgres"
	"eventplanner/internal/services"
	"eventplanner/migrations"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(startupCtx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	if err := migrations.Apply(startupCtx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	clk := clock.NewSystem()
	store := session.NewMemoryStore(clk)
	eventRepo := postgres.NewEventRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.AWSSESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	var eventPublisher domain.EventPublisher = publisher.NewNoopPublisher(logger)
	if cfg.AMQPURL != "" {
		amqpPublisher, err := publisher.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, logger)
		if err != nil {
			return fmt.Errorf("connect amqp: %w", err)
		}
		defer amqpPublisher.Close()
		eventPublisher = amqpPublisher
	}

	catalogSource, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	agendaRenderer := agenda.NewTextRenderer()
	fetcher := sessionize.NewHTTPFetcher(&http.Client{Timeout: cfg.RequestTimeout}, cfg.SessionizeBaseURL)

	draftService := services.NewDraftService(session.NewDraftStore(store), eventRepo, emailService, eventPublisher,
		fetcher, agendaRenderer, clk, logger, cfg.RequestTimeout)
	eventService := services.NewEventService(eventRepo, calendar.NewICSEncoder(cfg.CalendarUIDDomain, clk), agendaRenderer, cfg.RequestTimeout)
	ticketService := services.NewTicketService(eventRepo, store, clk, cfg.RequestTimeout)
	catalogService := services.NewCatalogService(catalogSource, cfg.RequestTimeout)

	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.DraftSweepSchedule, func() {
		if n := store.Sweep(session.DraftKeyPrefix, cfg.DraftIdleTTL); n > 0 {
			logger.Info("swept idle drafts", "count", n, "idle_ttl", cfg.DraftIdleTTL.String())
		}
	}); err != nil {
		return fmt.Errorf("schedule draft sweep: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	handler := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Logger:         logger,
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Drafts:         controllers.NewDraftController(logger, draftService),
		Events:         controllers.NewEventController(logger, eventService),
		Tickets:        controllers.NewTicketController(logger, ticketService),
		Catalog:        controllers.NewCatalogController(logger, catalogService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("api listening", "port", cfg.Port, "env", cfg.Environment)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
	return nil
}
