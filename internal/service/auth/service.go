package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/repository"
	"github.com/osuarez/clinic-manager/internal/session"
	"github.com/osuarez/clinic-manager/pkg/security"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	users    repository.UserRepository
	sessions *session.Manager
	hasher   security.PasswordHasher
}

func NewService(users repository.UserRepository, sessions *session.Manager, hasher security.PasswordHasher) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Register creates an account from an already-validated form. A reused
// email is reported as ErrEmailTaken; no second account is ever created.
func (s *Service) Register(ctx context.Context, form *model.RegisterForm) (*model.User, error) {
	existing, err := s.users.GetByEmail(ctx, form.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(form.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        form.Email,
		PasswordHash: hash,
		Role:         form.Role,
		Name:         form.Name,
		Lastname:     form.Lastname,
		CI:           form.CI,
		Phone:        form.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and establishes a session, returning the
// cookie token. The two failure modes are distinguished on purpose: an
// unknown email reports "user does not exist", a wrong password reports
// invalid credentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Logout destroys the session behind the token, whether or not one exists.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
