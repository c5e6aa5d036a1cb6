package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-relay/config"
	httpHandler "event-relay/internal/adapter/http/handler"
	pgStorage "event-relay/internal/adapter/storage/postgres"
	redisStorage "event-relay/internal/adapter/storage/redis"
	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/internal/service"
	"event-relay/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Event Relay")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	subRepo := pgStorage.NewSubscriptionRepo(pool)
	jobRepo := pgStorage.NewDeliveryJobRepo(pool)
	dlqRepo := pgStorage.NewDeadLetterRepo(pool)
	ledgerRepo := pgStorage.NewInboundLedgerRepo(pool)

	// Initialize Redis stores
	dedupCache := redisStorage.NewDedupCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.Operator.JWTSecret, cfg.Operator.JWTExpiry, cfg.Operator.Issuer)

	// Initialize the delivery pipeline
	dispatcher := service.NewDispatcherService(subRepo, jobRepo, log)
	executor := service.NewExecutorService(
		jobRepo,
		encSvc,
		sigSvc,
		&http.Client{},
		cfg.Delivery.HTTPTimeout,
		log,
	)
	retryPolicy := service.NewRetryPolicy(cfg.Delivery.MaxAttempts, cfg.Delivery.BaseDelay, cfg.Delivery.CapDelay)
	workerPool := service.NewWorkerPool(jobRepo, subRepo, dlqRepo, executor, retryPolicy, service.WorkerPoolConfig{
		Workers:      cfg.Delivery.Workers,
		BatchSize:    cfg.Delivery.BatchSize,
		PollInterval: cfg.Delivery.PollInterval,
		LeaseTimeout: cfg.Delivery.LeaseTimeout,
	}, log)

	// Inbound ingestion and operator surfaces
	ingestionGate := service.NewIngestionService(ledgerRepo, dedupCache, cfg.Inbound.DedupTTL, log)
	dlqSvc := service.NewDeadLetterOpsService(dlqRepo, jobRepo, subRepo, log)
	reportingSvc := service.NewDeliveryHistoryService(jobRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Dispatcher:    dispatcher,
		ReportingSvc:  reportingSvc,
		DeadLetterSvc: dlqSvc,
		IngestionGate: ingestionGate,
		InboundHandlers: map[string]ports.InboundHandler{
			"relay": relayInboundHandler(dispatcher, log),
		},
		SigSvc:         sigSvc,
		TokenSvc:       tokenSvc,
		ProviderSecret: cfg.Inbound.ProviderSecret,
		MaxDrift:       cfg.Inbound.MaxDrift,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Start the delivery workers
	workerCtx, stopWorkers := context.WithCancel(ctx)
	workerPool.Start(workerCtx)
	log.Info().Int("workers", cfg.Delivery.Workers).Msg("Delivery worker pool started")

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop accepting requests first, then drain the workers. In-flight
	// jobs finish their current attempt; anything still leased when the
	// process dies is reclaimed by lease expiry after restart.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	stopWorkers()
	workerPool.Stop()

	log.Info().Msg("Server exited")
}

// relayInboundHandler turns a provider push into an internal event and
// fans it out to that tenant's subscriptions. The tenant is carried in
// the event data under "tenant_id".
func relayInboundHandler(dispatcher ports.Dispatcher, log zerolog.Logger) ports.InboundHandler {
	return func(ctx context.Context, event domain.InboundEvent) error {
		var envelope struct {
			TenantID string `json:"tenant_id"`
		}
		if err := json.Unmarshal(event.Data, &envelope); err != nil {
			return fmt.Errorf("decoding inbound event %s: %w", event.ProviderEventID, err)
		}
		tenantID, err := uuid.Parse(envelope.TenantID)
		if err != nil {
			return fmt.Errorf("inbound event %s has no usable tenant_id: %w", event.ProviderEventID, err)
		}

		enqueued, err := dispatcher.Dispatch(ctx, domain.NewEvent(event.Type, tenantID, event.Data))
		if err != nil {
			return err
		}
		log.Debug().
			Str("provider_event_id", event.ProviderEventID).
			Int("jobs_enqueued", enqueued).
			Msg("inbound event relayed")
		return nil
	}
}
