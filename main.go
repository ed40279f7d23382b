package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"loan-prepay/config"
	httpLayer "loan-prepay/http"
	"loan-prepay/logging"
	"loan-prepay/metrics"
	"loan-prepay/repository"
	"loan-prepay/service"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $CONFIG_FILE)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "loan-prepay: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New("loan_prepay")

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		redisCache := repository.NewRedisCache(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.TTL)
		defer redisCache.Close()
		cache = redisCache
		logger.Info("using redis cache", zap.String("addr", cfg.Redis.Addr))
	} else {
		memoryCache := repository.NewMemoryCache(cfg.Redis.TTL)
		defer memoryCache.Stop()
		cache = memoryCache
		logger.Info("using in-memory cache")
	}

	var loanRepo repository.LoanRepository
	if cfg.Postgres.DSN != "" {
		pgRepo, err := repository.NewLoanRepositoryPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer pgRepo.Close()
		loanRepo = pgRepo
		logger.Info("using postgres history")
	} else {
		loanRepo = repository.NewLoanRepositoryMemory(cfg.Postgres.HistoryCapacity)
		logger.Info("using in-memory history", zap.Int("capacity", cfg.Postgres.HistoryCapacity))
	}

	advisor := service.NewAdvisorService(cfg.Advisor, logger.Named("advisor"))
	loanService := service.NewLoanService(loanRepo, cache, advisor, m, logger.Named("loan"))
	cashflowService := service.NewCashflowService(cfg.Cashflow, logger.Named("cashflow"))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.RouterConfig{
		Loan:          httpLayer.NewLoanHandler(loanService, logger),
		Cashflow:      httpLayer.NewCashflowHandler(cashflowService, logger),
		Health:        httpLayer.NewHealthHandler(cfg.ServiceName, cfg.Version, loanService, logger),
		Limiter:       rateLimiter,
		Metrics:       m,
		Logger:        logger.Named("http"),
		AllowedOrigin: cfg.Server.AllowedOrigin,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("version", cfg.Version),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}
