package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/repository"
	apperrors "github.com/osuarez/clinic-manager/pkg/errors"
)

type Service struct {
	repo repository.HistoryRepository
}

func NewService(repo repository.HistoryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, form *model.HistoryForm) (*model.MedicalHistory, error) {
	history := form.Record()
	if err := s.repo.Create(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to create medical history: %w", err)
	}
	return history, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.MedicalHistory, error) {
	history, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("medical history", err)
		}
		return nil, fmt.Errorf("failed to get medical history: %w", err)
	}
	return history, nil
}

func (s *Service) List(ctx context.Context) ([]*model.MedicalHistory, error) {
	histories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical histories: %w", err)
	}
	return histories, nil
}

// Update overwrites every field of the record from the submitted form.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form *model.HistoryForm) (*model.MedicalHistory, error) {
	history, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := form.Record()
	updated.Base = history.Base

	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("medical history", err)
		}
		return nil, fmt.Errorf("failed to update medical history: %w", err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("medical history", err)
		}
		return fmt.Errorf("failed to delete medical history: %w", err)
	}
	return nil
}
