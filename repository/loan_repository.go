package repository

import (
	"context"

	"loan-prepay/domain"
)

// LoanRepository stores scenario calculations for later review.
type LoanRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error)
	Ping(ctx context.Context) error
}
