package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/evangelism-crm/config"
	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/factory"
	"github.com/xavierca1/evangelism-crm/internal/infra/auth"
	"github.com/xavierca1/evangelism-crm/internal/infra/database"
	"github.com/xavierca1/evangelism-crm/internal/infra/http/handlers"
	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
	"github.com/xavierca1/evangelism-crm/internal/infra/integration/whatsapp"
	"github.com/xavierca1/evangelism-crm/internal/infra/mail"
	"github.com/xavierca1/evangelism-crm/internal/infra/queue"
	"github.com/xavierca1/evangelism-crm/internal/infra/worker"
	"github.com/xavierca1/evangelism-crm/internal/random"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLoggerWithLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Store
	store, closeStore, err := database.Open(ctx, database.Options{
		Driver:        cfg.Store.Driver,
		DatabaseURL:   cfg.Store.DatabaseURL,
		Table:         cfg.Store.Table,
		MongoURL:      cfg.Store.MongoURL,
		MongoDatabase: cfg.Store.MongoDatabase,
	})
	if err != nil {
		log.WithField("error", err.Error()).Fatal("failed to open store")
	}
	defer closeStore(context.Background())
	log.WithField("driver", cfg.Store.Driver).Info("store ready")

	// 2. Security and the record factory
	hasher := auth.NewBcryptHasher(cfg.Security.BcryptCost)
	tokens := auth.NewJWTIssuer(cfg.Security.JWTSecret, cfg.Security.JWTTTL)
	f := factory.New(random.NewSource(0), cfg.Demo.ClientID, time.Now)

	// 3. Use cases
	seeder := usecase.NewSeedDemoUseCase(store, hasher, log)
	resetUC := usecase.NewResetDemoUseCase(store, seeder, log)
	authUC := usecase.NewAuthUseCase(store, hasher, tokens, cfg.Demo.ClientID)
	statsUC := usecase.NewStatsUseCase(store, cfg.Demo.ClientID)
	healthUC := usecase.NewHealthScoreUseCase(store, f)
	alertUC := usecase.NewAlertUseCase(store, cfg.Demo.ClientID)

	convertUC := usecase.NewConvertUseCase(store, f, cfg.Demo.ChurchName, log)
	if cfg.Mail.Enabled() {
		convertUC.Email = mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	}
	if cfg.WhatsApp.Enabled() {
		convertUC.Messages = whatsapp.NewClient(cfg.WhatsApp.AccessToken, cfg.WhatsApp.PhoneID)
	}

	// 4. Voice calls go through RabbitMQ when configured, otherwise in-process
	voiceUC := usecase.NewVoiceAgentUseCase(store, f, nil, log)
	var rabbitConn *amqp.Connection
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to connect to RabbitMQ")
		}
		defer rabbitMQ.Close()
		rabbitConn = rabbitMQ.Conn

		voiceUC.Dispatcher = queue.NewProducer(rabbitMQ.Ch)

		consumerCh, err := rabbitMQ.Conn.Channel()
		if err != nil {
			log.WithField("error", err.Error()).Fatal("failed to open consumer channel")
		}
		callWorker := queue.NewWorker(consumerCh, voiceUC, log)
		go func() {
			if err := callWorker.Start(ctx, queue.QueueName); err != nil {
				log.WithField("error", err.Error()).Error("voice call worker stopped")
			}
		}()
	} else {
		inline := queue.NewInlineDispatcher(voiceUC, log)
		defer inline.Wait()
		voiceUC.Dispatcher = inline
	}

	// 5. Seed an empty store so the demo is usable right away
	input := cfg.Demo.SeedInput()
	if n, err := store.Count(ctx, entity.CollectionClients, entity.Where(entity.Eq("id", input.ClientID))); err == nil && n == 0 {
		out, err := seeder.Execute(ctx, input)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("initial seed failed")
		}
		middleware.RecordSeededRecords(out.Counts)
	}

	// 6. Scheduled reset
	if cfg.Demo.ResetSchedule != "" {
		resetWorker, err := worker.NewResetWorker(resetUC, input, cfg.Demo.ResetSchedule, log)
		if err != nil {
			log.WithField("error", err.Error()).Fatal("invalid reset schedule")
		}
		go resetWorker.Start(ctx)
	}

	// 7. Router
	limiter := middleware.NewRateLimiter(cfg.RateLimit.ResetPerMinute, time.Minute)
	go limiter.Cleanup(10*time.Minute, ctx.Done())

	health := handlers.NewHealthHandler(store, cfg.Store.Driver, rabbitConn)
	health.Mail = cfg.Mail.Enabled()
	health.WhatsApp = cfg.WhatsApp.Enabled()

	router := &handlers.Router{
		Auth:           handlers.NewAuthHandler(authUC, log),
		Converts:       handlers.NewConvertHandler(convertUC, log),
		Dashboard:      handlers.NewDashboardHandler(statsUC, log),
		Care:           handlers.NewCareHandler(healthUC, alertUC, log),
		Voice:          handlers.NewVoiceHandler(voiceUC, log),
		Demo:           handlers.NewDemoHandler(resetUC, statsUC, input, log),
		Health:         health,
		Authenticator:  authUC,
		ResetLimiter:   limiter,
		AllowedOrigins: []string{"http://localhost:5173", "*"},
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.WithField("port", cfg.Server.Port).Info("evangelism CRM demo API listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithField("error", err.Error()).Error("server stopped")
	}
}
