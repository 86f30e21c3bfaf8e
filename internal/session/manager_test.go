package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuarez/clinic-manager/internal/model"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(NewMemoryStore(), Config{
		CookieName: "clinic_session",
		Secret:     "test-secret",
		TTL:        ttl,
		CacheTTL:   time.Minute,
	})
}

func testUser() *model.User {
	return &model.User{
		Base:  model.Base{ID: uuid.New()},
		Email: "a@example.com",
	}
}

func TestManagerCreateAndGet(t *testing.T) {
	m := newTestManager(time.Hour)
	user := testUser()

	token, err := m.Create(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := m.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, user.Email, sess.Email)
}

func TestManagerDestroy(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.Create(context.Background(), testUser())
	require.NoError(t, err)

	require.NoError(t, m.Destroy(context.Background(), token))

	_, err = m.Get(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerDestroyUnconditional(t *testing.T) {
	m := newTestManager(time.Hour)

	// Garbage tokens and never-issued sessions are not errors.
	assert.NoError(t, m.Destroy(context.Background(), "not-a-token"))
}

func TestManagerRejectsTamperedToken(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.Create(context.Background(), testUser())
	require.NoError(t, err)

	_, err = m.Get(context.Background(), token+"x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A token signed under a different secret is rejected too.
	stranger := NewManager(NewMemoryStore(), Config{
		CookieName: "clinic_session",
		Secret:     "other-secret",
		TTL:        time.Hour,
	})
	strangerToken, err := stranger.Create(context.Background(), testUser())
	require.NoError(t, err)

	_, err = m.Get(context.Background(), strangerToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManagerExpiredToken(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.Create(context.Background(), testUser())
	require.NoError(t, err)

	_, err = m.Get(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	sess := &model.Session{ID: uuid.New(), UserID: uuid.New(), CreatedAt: time.Now()}

	require.NoError(t, store.Save(context.Background(), sess, -time.Second))

	_, err := store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
