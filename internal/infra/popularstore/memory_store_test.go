package popularstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-dates/internal/domain/advisor"
)

func TestMemoryStoreTopDates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementView(ctx, "July 25, 2025"))
	}
	require.NoError(t, store.IncrementView(ctx, "August 9, 2025"))
	require.NoError(t, store.IncrementView(ctx, ""))

	top, err := store.TopDates(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []advisor.PopularDate{
		{Date: "July 25, 2025", Count: 3},
		{Date: "August 9, 2025", Count: 1},
	}, top)
}

func TestMemoryStoreLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.IncrementView(ctx, "a"))
	require.NoError(t, store.IncrementView(ctx, "b"))
	require.NoError(t, store.IncrementView(ctx, "c"))

	top, err := store.TopDates(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
}
