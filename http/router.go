package http

import (
	"net/http"

	"go.uber.org/zap"

	"loan-prepay/metrics"
)

type RouterConfig struct {
	Loan          *LoanHandler
	Cashflow      *CashflowHandler
	Health        *HealthHandler
	Limiter       *RateLimiter
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
	AllowedOrigin string
}

// NewRouter registers every endpoint. Calculation endpoints are rate limited;
// probes and /metrics are not.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	limited := func(route string, h http.HandlerFunc) {
		mux.Handle(route, ObserveMiddleware(route, logger, cfg.Metrics, RateLimitMiddleware(cfg.Limiter, h)))
	}
	open := func(route string, h http.Handler) {
		mux.Handle(route, ObserveMiddleware(route, logger, cfg.Metrics, h))
	}

	limited("/loan/calculate", cfg.Loan.CalculateLoan)
	limited("/loan/prepayment/reduce-tenure", cfg.Loan.ReduceTenure)
	limited("/loan/prepayment/reduce-emi", cfg.Loan.ReduceEMI)
	limited("/loan/extra-payment", cfg.Loan.ExtraPayment)
	limited("/loan/refinance/compare", cfg.Loan.CompareRefinance)
	limited("/loan/history", cfg.Loan.History)
	limited("/analyze", cfg.Cashflow.Analyze)
	limited("/predict", cfg.Cashflow.Predict)

	open("/health", http.HandlerFunc(cfg.Health.Health))
	open("/ready", http.HandlerFunc(cfg.Health.Ready))
	if cfg.Metrics != nil {
		mux.Handle("/metrics", cfg.Metrics.Handler())
	}

	origin := cfg.AllowedOrigin
	if origin == "" {
		origin = "*"
	}
	return RequestIDMiddleware(CORSMiddleware(origin, mux))
}
