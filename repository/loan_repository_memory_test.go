package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-prepay/domain"
)

func record(id string) domain.CalculationRecord {
	return domain.CalculationRecord{ID: id, Scenario: "reduce_tenure"}
}

func TestLoanRepositoryMemory_RecentNewestFirst(t *testing.T) {
	repo := NewLoanRepositoryMemory(10)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, record(id)))
	}

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLoanRepositoryMemory_DropsOldest(t *testing.T) {
	repo := NewLoanRepositoryMemory(2)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, record(id)))
	}

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestLoanRepositoryMemory_ConcurrentSave(t *testing.T) {
	repo := NewLoanRepositoryMemory(1000)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Save(ctx, record(fmt.Sprintf("r%d", i)))
		}(i)
	}
	wg.Wait()

	got, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
