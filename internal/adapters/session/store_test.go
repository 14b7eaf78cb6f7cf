package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/adapters/session"
	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newSession(id string, expires time.Time) *domain.Session {
	return &domain.Session{
		ID:           id,
		User:         domain.User{ID: "7", Role: domain.RoleManager},
		BackendToken: "tok-" + id,
		ExpiresAt:    expires,
	}
}

func TestMemoryStore_SaveFindDelete(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)}
	store := session.NewMemoryStore(session.WithClock(clock.Now))

	require.NoError(t, store.Save(ctx, newSession("s1", clock.Now().Add(time.Hour))))

	got, err := store.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-s1", got.BackendToken)

	// the returned session is a copy
	got.BackendToken = "changed"
	again, err := store.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-s1", again.BackendToken)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Find(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "unknown"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)}
	store := session.NewMemoryStore(session.WithClock(clock.Now))

	require.NoError(t, store.Save(ctx, newSession("short", clock.Now().Add(time.Minute))))
	require.NoError(t, store.Save(ctx, newSession("long", clock.Now().Add(time.Hour))))

	clock.Advance(2 * time.Minute)

	_, err := store.Find(ctx, "short")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = store.Find(ctx, "long")
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	clock.Advance(2 * time.Hour)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_RejectsEmptyID(t *testing.T) {
	store := session.NewMemoryStore()
	assert.ErrorIs(t, store.Save(context.Background(), &domain.Session{}), apperrors.ErrValidation)
	assert.ErrorIs(t, store.Save(context.Background(), nil), apperrors.ErrValidation)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	expires := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			_ = store.Save(ctx, newSession(id, expires))
			_, _ = store.Find(ctx, id)
			if i%5 == 0 {
				_ = store.Delete(ctx, id)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, store.Len(), 26)
}
