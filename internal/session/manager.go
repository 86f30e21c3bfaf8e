package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/osuarez/clinic-manager/internal/model"
)

var ErrInvalidToken = errors.New("invalid session token")

// Config holds session manager configuration.
type Config struct {
	CookieName string
	Secret     string
	TTL        time.Duration
	CacheTTL   time.Duration
}

// Manager issues and resolves browser sessions. The cookie carries a
// signed token naming the session id; the record itself lives in the
// store with a TTL. A small in-process cache fronts the store so the
// guard does not pay a round trip on every request. Destroy evicts both,
// so logout takes effect immediately.
type Manager struct {
	store      Store
	secret     []byte
	ttl        time.Duration
	cookieName string
	cache      *gocache.Cache
}

func NewManager(store Store, cfg Config) *Manager {
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &Manager{
		store:      store,
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create establishes a session for the user and returns the cookie token.
func (m *Manager) Create(ctx context.Context, user *model.User) (string, error) {
	session := &model.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: time.Now(),
	}

	if err := m.store.Save(ctx, session, m.ttl); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID.String(),
		Subject:   session.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.CreatedAt.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	m.cache.SetDefault(session.ID.String(), session)

	return token, nil
}

// Get resolves a cookie token to a live session. An expired or tampered
// token, or a session already destroyed server-side, yields an error.
func (m *Manager) Get(ctx context.Context, token string) (*model.Session, error) {
	id, err := m.parseToken(token)
	if err != nil {
		return nil, err
	}

	if cached, ok := m.cache.Get(id.String()); ok {
		return cached.(*model.Session), nil
	}

	session, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m.cache.SetDefault(id.String(), session)
	return session, nil
}

// Destroy removes the session behind the token. Unconditional: a missing
// or already-expired session is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	id, err := m.parseToken(token)
	if err != nil {
		return nil
	}

	m.cache.Delete(id.String())
	return m.store.Delete(ctx, id)
}

func (m *Manager) parseToken(token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}
