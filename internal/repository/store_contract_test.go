package repository

import (
	"context"
	"testing"

	"github.com/ghostwriterhq/scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(owner, platform, dateTime string) *models.ScheduledPost {
	return &models.ScheduledPost{
		OwnerID:  owner,
		Platform: platform,
		Content:  "hello",
		DateTime: dateTime,
	}
}

// runPostStoreContract exercises the behavior every PostStore backend must
// share, so the variants stay interchangeable behind the interface. Each
// subtest gets a fresh store.
func runPostStoreContract(t *testing.T, newStore func(t *testing.T) PostStore) {
	t.Run("create assigns fields", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		post := newPost("owner-1", models.PlatformFacebook, "2025-03-15T09:00:00")
		id, err := store.Create(ctx, post)
		require.NoError(t, err)

		assert.NotEmpty(t, id)
		assert.Equal(t, id, post.ID)
		assert.Equal(t, models.PostStatusScheduled, post.Status)
		assert.False(t, post.CreatedAt.IsZero())

		got, err := store.GetByID(ctx, "owner-1", id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "hello", got.Content)
	})

	t.Run("get absent returns nil", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		got, err := store.GetByID(ctx, "owner-1", "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list sorted by dateTime", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		for _, dt := range []string{
			"2025-03-20T09:00:00",
			"2025-03-12T17:30:00",
			"2025-03-12T08:00:00",
		} {
			_, err := store.Create(ctx, newPost("owner-1", models.PlatformFacebook, dt))
			require.NoError(t, err)
		}

		posts, err := store.ListByOwner(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "2025-03-12T08:00:00", posts[0].DateTime)
		assert.Equal(t, "2025-03-12T17:30:00", posts[1].DateTime)
		assert.Equal(t, "2025-03-20T09:00:00", posts[2].DateTime)
	})

	t.Run("set published", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		post := newPost("owner-1", models.PlatformThreads, "2025-03-15T09:00:00")
		id, err := store.Create(ctx, post)
		require.NoError(t, err)

		err = store.SetPublished(ctx, "owner-1", id, models.PlatformThreads, "https://www.threads.net/t/abc")
		require.NoError(t, err)

		got, err := store.GetByID(ctx, "owner-1", id)
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPublished, got.Status)
		assert.Equal(t, "https://www.threads.net/t/abc", got.ThreadsURL)
		assert.Empty(t, got.WordpressURL)

		assert.ErrorIs(t, store.SetPublished(ctx, "owner-1", "nope", models.PlatformThreads, "x"), ErrNotFound)
		assert.ErrorIs(t, store.SetPublished(ctx, "owner-2", id, models.PlatformThreads, "x"), ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		post := newPost("owner-1", models.PlatformFacebook, "2025-03-15T09:00:00")
		id, err := store.Create(ctx, post)
		require.NoError(t, err)

		assert.ErrorIs(t, store.Remove(ctx, "owner-1", "nope"), ErrNotFound)
		assert.ErrorIs(t, store.Remove(ctx, "owner-2", id), ErrNotFound)

		require.NoError(t, store.Remove(ctx, "owner-1", id))
		assert.ErrorIs(t, store.Remove(ctx, "owner-1", id), ErrNotFound)

		posts, err := store.ListByOwner(ctx, "owner-1")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("list due wordpress", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		due := newPost("owner-1", models.PlatformWordpress, "2025-03-10T09:00:00")
		_, err := store.Create(ctx, due)
		require.NoError(t, err)

		notDue := newPost("owner-1", models.PlatformWordpress, "2025-03-20T09:00:00")
		_, err = store.Create(ctx, notDue)
		require.NoError(t, err)

		otherPlatform := newPost("owner-2", models.PlatformFacebook, "2025-03-01T09:00:00")
		_, err = store.Create(ctx, otherPlatform)
		require.NoError(t, err)

		published := newPost("owner-2", models.PlatformWordpress, "2025-03-01T09:00:00")
		publishedID, err := store.Create(ctx, published)
		require.NoError(t, err)
		require.NoError(t, store.SetPublished(ctx, "owner-2", publishedID, models.PlatformWordpress, "https://example.com/p"))

		posts, err := store.ListDueWordpress(ctx, "2025-03-10T12:00:00")
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, due.ID, posts[0].ID)
	})

	t.Run("reads are isolated", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		post := newPost("owner-1", models.PlatformFacebook, "2025-03-15T09:00:00")
		id, err := store.Create(ctx, post)
		require.NoError(t, err)

		got, err := store.GetByID(ctx, "owner-1", id)
		require.NoError(t, err)
		got.Content = "mutated"

		again, err := store.GetByID(ctx, "owner-1", id)
		require.NoError(t, err)
		assert.Equal(t, "hello", again.Content)
	})
}
