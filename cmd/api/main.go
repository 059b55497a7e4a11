package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pooled-trading-vault/config"
	"pooled-trading-vault/internal/adapter/collab"
	httpHandler "pooled-trading-vault/internal/adapter/http/handler"
	pgStorage "pooled-trading-vault/internal/adapter/storage/postgres"
	redisStorage "pooled-trading-vault/internal/adapter/storage/redis"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/internal/service"
	"pooled-trading-vault/pkg/logger"
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
		Msg("Starting Pooled Trading Vault")

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
	vaultRepo := pgStorage.NewVaultRepo(pool)
	feeRepo := pgStorage.NewFeeLedgerRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize external module clients
	collabHTTP := &http.Client{Timeout: cfg.Collab.Timeout}
	venueHTTP := &http.Client{Timeout: cfg.Venue.Timeout}
	shareToken := collab.NewShareTokenClient(cfg.Collab, collabHTTP, log)
	bank := collab.NewBankClient(cfg.Collab, collabHTTP, log)
	oracle := collab.NewOracleClient(cfg.Collab, collabHTTP, log)
	venue := collab.NewVenueClient(cfg.Venue, venueHTTP, log)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(cfg.Operator.Username, cfg.Operator.PasswordHash, cfg.Operator.Address, hashSvc, tokenSvc)
	vaultSvc := service.NewVaultService(vaultRepo, feeRepo, venue, shareToken, log)
	depositSvc := service.NewDepositService(vaultRepo, feeRepo, shareToken, bank, oracle, log)
	withdrawalSvc := service.NewWithdrawalService(vaultRepo, feeRepo, shareToken, bank, log)
	orderSvc := service.NewOrderService(vaultRepo, feeRepo, bank, venue, log)
	feeSvc := service.NewFeeService(vaultRepo, feeRepo, bank, transactor, log)
	replySvc := service.NewReplyService(vaultRepo, log)
	querySvc := service.NewQueryService(vaultRepo, feeRepo, shareToken, bank, oracle, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		VaultSvc:       vaultSvc,
		DepositSvc:     depositSvc,
		WithdrawalSvc:  withdrawalSvc,
		OrderSvc:       orderSvc,
		FeeSvc:         feeSvc,
		ReplySvc:       replySvc,
		QuerySvc:       querySvc,
		FeeLedger:      feeRepo,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		CallbackSecret: cfg.Venue.CallbackSecret,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

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
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
