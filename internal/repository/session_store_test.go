package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-loyalty-admin/internal/model"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip within the TTL", func(t *testing.T) {
		store := NewMemorySessionStore()
		session := model.Session{ID: "sess-1", Role: model.RoleAdmin, Name: "James Wilson", CreatedAt: time.Now()}
		require.NoError(t, store.Save(ctx, &session, time.Hour))

		found, err := store.Find(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "James Wilson", found.Name)
	})

	t.Run("Expired session is gone", func(t *testing.T) {
		store := NewMemorySessionStore()
		session := model.Session{ID: "sess-2", Role: model.RoleMember, CreatedAt: time.Now()}
		require.NoError(t, store.Save(ctx, &session, -time.Second))

		_, err := store.Find(ctx, "sess-2")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Re-saving refreshes the TTL", func(t *testing.T) {
		store := NewMemorySessionStore()
		session := model.Session{ID: "sess-3", Role: model.RoleMerchant, CreatedAt: time.Now()}
		require.NoError(t, store.Save(ctx, &session, -time.Second))
		require.NoError(t, store.Save(ctx, &session, time.Hour))

		_, err := store.Find(ctx, "sess-3")
		assert.NoError(t, err)
	})

	t.Run("Delete removes the session", func(t *testing.T) {
		store := NewMemorySessionStore()
		session := model.Session{ID: "sess-4", Role: model.RoleMember, CreatedAt: time.Now()}
		require.NoError(t, store.Save(ctx, &session, time.Hour))
		require.NoError(t, store.Delete(ctx, "sess-4"))

		_, err := store.Find(ctx, "sess-4")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
