package wardroberepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
)

func TestMemoryRepositoryScopesByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, wardrobe.Item{ID: "a", UserID: 1, Name: "Denim jacket", CreatedAt: created}))
	require.NoError(t, repo.Create(ctx, wardrobe.Item{ID: "b", UserID: 1, Name: "Boots", CreatedAt: created.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, wardrobe.Item{ID: "c", UserID: 2, Name: "Scarf", CreatedAt: created}))

	items, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	_, found, err := repo.Get(ctx, 2, "a")
	require.NoError(t, err)
	require.False(t, found)

	n, err := repo.Count(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMemoryRepositoryDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, wardrobe.Item{ID: id, UserID: 1, ImageRef: "wardrobe/1/" + id + ".png"}))
	}

	ok, err := repo.Delete(ctx, 1, "b")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = repo.Delete(ctx, 1, "b")
	require.NoError(t, err)
	require.False(t, ok)

	items, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "a", items[0].ID)
	require.Equal(t, "c", items[1].ID)

	removed, err := repo.Clear(ctx, 1)
	require.NoError(t, err)
	require.Len(t, removed, 2)

	n, err := repo.Count(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMemoryRepositoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, wardrobe.Item{ID: "a", UserID: 1, Name: "Tee"}))

	items, err := repo.List(ctx, 1)
	require.NoError(t, err)
	items[0].Name = "changed"

	got, found, err := repo.Get(ctx, 1, "a")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Tee", got.Name)
}
