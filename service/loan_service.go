package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"loan-prepay/amortization"
	"loan-prepay/domain"
	"loan-prepay/metrics"
	"loan-prepay/repository"
)

type LoanService struct {
	repo    repository.LoanRepository
	cache   repository.CacheRepository
	advisor *AdvisorService
	metrics *metrics.Metrics
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(
	repo repository.LoanRepository,
	cache repository.CacheRepository,
	advisor *AdvisorService,
	m *metrics.Metrics,
	logger *zap.Logger,
) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanService{
		repo:    repo,
		cache:   cache,
		advisor: advisor,
		metrics: m,
		logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {
	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, err
	}

	return run(ctx, s, ScenarioLoan, input, func() (domain.LoanResult, string, error) {
		cuota := amortization.EMI(toDecimal(input.Amount), toDecimal(input.InterestRate), input.TermMonths)
		total := cuota.Mul(decimal.NewFromInt(int64(input.TermMonths)))
		intereses := total.Sub(toDecimal(input.Amount))

		return domain.LoanResult{
			MonthlyPayment: roundTo2Decimals(cuota),
			TotalPayment:   roundTo2Decimals(total),
			TotalInterest:  roundTo2Decimals(intereses),
		}, string(amortization.StatusOK), nil
	})
}

// History returns the most recent calculations, newest first.
func (s *LoanService) History(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: load history: %v", ErrUnavailable, err)
	}
	return records, nil
}

// Ready checks that the cache and the repository are reachable.
func (s *LoanService) Ready(ctx context.Context) error {
	var errs []error
	if err := s.cache.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("cache: %w", err))
	}
	if err := s.repo.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("repository: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
	}
	return nil
}

// run serves a scenario from the cache when it can, otherwise computes it,
// then caches and records the result. Cache and history failures are logged
// and never fail the request.
func run[I any, R any](
	ctx context.Context,
	s *LoanService,
	scenario string,
	input I,
	compute func() (R, string, error),
) (R, error) {
	var zero R

	rawInput, err := json.Marshal(input)
	if err != nil {
		return zero, fmt.Errorf("encode %s input: %w", scenario, err)
	}
	key := cacheKey(scenario, rawInput)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result R
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.metrics.ObserveCache(true)
			return result, nil
		}
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	}
	s.metrics.ObserveCache(false)

	start := s.now()
	result, status, err := compute()
	if err != nil {
		return zero, err
	}
	s.metrics.ObserveCalculation(scenario, status, s.now().Sub(start))

	rawResult, err := json.Marshal(result)
	if err != nil {
		return zero, fmt.Errorf("encode %s result: %w", scenario, err)
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.cache.Set(ctx, key, string(rawResult)); err != nil {
		s.logger.Warn("failed to cache calculation", zap.String("scenario", scenario), zap.Error(err))
	}
	record := domain.CalculationRecord{
		ID:        s.newID(),
		Scenario:  scenario,
		Input:     rawInput,
		Result:    rawResult,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Warn("failed to save calculation", zap.String("scenario", scenario), zap.Error(err))
	}

	s.logger.Debug("calculated scenario",
		zap.String("scenario", scenario),
		zap.String("status", status),
		zap.String("id", record.ID),
	)
	return result, nil
}

func cacheKey(scenario string, rawInput []byte) string {
	return fmt.Sprintf("%s:%016x", scenario, xxhash.Sum64(rawInput))
}
