package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"loan-prepay/domain"
)

const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id         TEXT PRIMARY KEY,
	scenario   TEXT NOT NULL,
	input      JSONB NOT NULL,
	result     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// LoanRepositoryPostgres keeps calculation history in PostgreSQL.
type LoanRepositoryPostgres struct {
	pool *pgxpool.Pool
}

// NewLoanRepositoryPostgres connects to dsn and makes sure the history table
// exists.
func NewLoanRepositoryPostgres(ctx context.Context, dsn string) (*LoanRepositoryPostgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createCalculationsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create calculations table: %w", err)
	}
	return &LoanRepositoryPostgres{pool: pool}, nil
}

func (r *LoanRepositoryPostgres) Save(ctx context.Context, record domain.CalculationRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO calculations (id, scenario, input, result, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.Scenario, []byte(record.Input), []byte(record.Result), record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert calculation %s: %w", record.ID, err)
	}
	return nil
}

func (r *LoanRepositoryPostgres) Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, scenario, input, result, created_at
		 FROM calculations
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var (
			rec           domain.CalculationRecord
			input, result []byte
		)
		if err := rows.Scan(&rec.ID, &rec.Scenario, &input, &result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		rec.Input = input
		rec.Result = result
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}
	return records, nil
}

func (r *LoanRepositoryPostgres) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *LoanRepositoryPostgres) Close() {
	r.pool.Close()
}
