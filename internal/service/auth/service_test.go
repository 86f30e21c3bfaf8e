package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/repository"
	"github.com/osuarez/clinic-manager/internal/session"
	"github.com/osuarez/clinic-manager/pkg/security"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.CI == user.CI {
			return repository.ErrDuplicate
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func newTestService(repo repository.UserRepository) (*Service, *session.Manager) {
	sessions := session.NewManager(session.NewMemoryStore(), session.Config{
		CookieName: "clinic_session",
		Secret:     "test-secret",
		TTL:        time.Hour,
	})
	return NewService(repo, sessions, security.NewBcryptHasher(4)), sessions
}

func registerForm() *model.RegisterForm {
	return &model.RegisterForm{
		Email:           "a@example.com",
		Password:        "pw123",
		PasswordConfirm: "pw123",
		Role:            model.RoleDoctor,
		Name:            "Ana",
		Lastname:        "Suarez",
		CI:              "12345678",
		Phone:           "555-0100",
	}
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	user, err := svc.Register(context.Background(), registerForm())
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", user.PasswordHash)

	hasher := security.NewBcryptHasher(4)
	assert.NoError(t, hasher.Compare(user.PasswordHash, "pw123"))
	assert.Error(t, hasher.Compare(user.PasswordHash, "wrong"))
}

func TestRegisterDuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), registerForm())
	require.NoError(t, err)

	form := registerForm()
	form.CI = "87654321"
	_, err = svc.Register(context.Background(), form)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc, sessions := newTestService(repo)

	_, err := svc.Register(context.Background(), registerForm())
	require.NoError(t, err)

	t.Run("correct credentials establish a session", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "a@example.com", "pw123")
		require.NoError(t, err)

		sess, err := sessions.Get(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", sess.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "a@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "pw123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestLogoutDestroysSession(t *testing.T) {
	repo := newFakeUserRepo()
	svc, sessions := newTestService(repo)

	_, err := svc.Register(context.Background(), registerForm())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "a@example.com", "pw123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	_, err = sessions.Get(context.Background(), token)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
