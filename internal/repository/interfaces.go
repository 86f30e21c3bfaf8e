package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/osuarez/clinic-manager/internal/model"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository persists registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.User, error)
}

// HistoryRepository persists medical histories. Deliberately independent
// of UserRepository; the two tables share no foreign key.
type HistoryRepository interface {
	Create(ctx context.Context, history *model.MedicalHistory) error
	Get(ctx context.Context, id uuid.UUID) (*model.MedicalHistory, error)
	Update(ctx context.Context, history *model.MedicalHistory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.MedicalHistory, error)
}
