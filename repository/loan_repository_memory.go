package repository

import (
	"context"
	"sync"

	"loan-prepay/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
// It keeps at most capacity records and drops the oldest first.
type LoanRepositoryMemory struct {
	mu       sync.RWMutex
	data     []domain.CalculationRecord
	capacity int
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory(capacity int) *LoanRepositoryMemory {
	if capacity <= 0 {
		capacity = 1000
	}
	return &LoanRepositoryMemory{
		data:     []domain.CalculationRecord{},
		capacity: capacity,
	}
}

// Save stores the calculation in memory.
func (r *LoanRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if over := len(r.data) - r.capacity; over > 0 {
		r.data = append([]domain.CalculationRecord(nil), r.data[over:]...)
	}
	return nil
}

func (r *LoanRepositoryMemory) Recent(
	_ context.Context,
	limit int,
) ([]domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}

func (r *LoanRepositoryMemory) Ping(context.Context) error {
	return nil
}
