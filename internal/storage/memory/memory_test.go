package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_syncer/internal/domain"
)

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := New()

	entry := domain.Entry{
		ID:         "frontend/react/hooks-intro",
		Collection: domain.CollectionPosts,
		Data:       domain.PostData{Title: "Hooks Intro", Slug: "hooks-intro"},
	}
	require.NoError(t, store.Set(ctx, entry))

	got, ok := store.Get("frontend/react/hooks-intro")
	require.True(t, ok)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, domain.Entry{
		ID:         "a",
		Collection: domain.CollectionPosts,
		Data:       domain.PostData{Title: "First", Slug: "a"},
	}))
	require.NoError(t, store.Set(ctx, domain.Entry{
		ID:         "a",
		Collection: domain.CollectionPosts,
		Data:       domain.PostData{Title: "Second", Slug: "a"},
	}))

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Second", got.Data.(domain.PostData).Title)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, domain.Entry{ID: "a", Collection: domain.CollectionPosts}))
	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, 0, store.Len())
	_, ok := store.Get("a")
	assert.False(t, ok)
}

func TestStore_ListByCollection(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, domain.Entry{ID: "p1", Collection: domain.CollectionPosts}))
	require.NoError(t, store.Set(ctx, domain.Entry{ID: "p2", Collection: domain.CollectionPosts}))
	require.NoError(t, store.Set(ctx, domain.Entry{ID: "/images/a.jpg", Collection: domain.CollectionMedia}))

	assert.Len(t, store.List(domain.CollectionPosts), 2)
	assert.Len(t, store.List(domain.CollectionMedia), 1)
}
