package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-prepay/domain"
)

// Runs against a real database when DATABASE_URL is set.
func newPostgresRepository(t *testing.T) *LoanRepositoryPostgres {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := NewLoanRepositoryPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func TestLoanRepositoryPostgres_Ping(t *testing.T) {
	repo := newPostgresRepository(t)

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestLoanRepositoryPostgres_SaveAndRecent(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	// Far-future timestamps keep these rows ahead of anything already stored.
	base := time.Now().UTC().Add(24 * 365 * time.Hour).Truncate(time.Microsecond)
	ids := []string{uuid.NewString(), uuid.NewString()}
	for i, id := range ids {
		require.NoError(t, repo.Save(ctx, domain.CalculationRecord{
			ID:        id,
			Scenario:  "reduce_tenure",
			Input:     []byte(`{"principal":5000000,"prepayment":500000}`),
			Result:    []byte(`{"new_tenure_after_prepay":143}`),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	t.Cleanup(func() {
		_, _ = repo.pool.Exec(context.Background(), `DELETE FROM calculations WHERE id = ANY($1)`, ids)
	})

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[1], got[0].ID)
	assert.Equal(t, ids[0], got[1].ID)
	assert.Equal(t, "reduce_tenure", got[0].Scenario)
	assert.JSONEq(t, `{"principal":5000000,"prepayment":500000}`, string(got[1].Input))
	assert.JSONEq(t, `{"new_tenure_after_prepay":143}`, string(got[1].Result))
	assert.True(t, base.Equal(got[1].CreatedAt), "created_at %s", got[1].CreatedAt)
}

func TestLoanRepositoryPostgres_DuplicateID(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	record := domain.CalculationRecord{
		ID:        uuid.NewString(),
		Scenario:  "loan",
		Input:     []byte(`{}`),
		Result:    []byte(`{}`),
		CreatedAt: time.Now().UTC(),
	}
	t.Cleanup(func() {
		_, _ = repo.pool.Exec(context.Background(), `DELETE FROM calculations WHERE id = $1`, record.ID)
	})

	require.NoError(t, repo.Save(ctx, record))
	assert.Error(t, repo.Save(ctx, record))
}
