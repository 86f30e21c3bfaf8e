package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/repository"
)

type historyRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, history *model.MedicalHistory) error {
	query := `
		INSERT INTO medical_histories (
			id, name, lastname, age, ci, email, phone, address,
			motive, diseases, background, f_exam, diagnostic, therapy,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	history.ID = uuid.New()
	history.CreatedAt = time.Now()
	history.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		history.ID,
		history.Name,
		history.Lastname,
		history.Age,
		history.CI,
		history.Email,
		history.Phone,
		history.Address,
		history.Motive,
		history.Diseases,
		history.Background,
		history.FExam,
		history.Diagnostic,
		history.Therapy,
		history.CreatedAt,
		history.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical history: %w", err)
	}

	return nil
}

func (r *historyRepository) Get(ctx context.Context, id uuid.UUID) (*model.MedicalHistory, error) {
	query := `
		SELECT * FROM medical_histories
		WHERE id = $1
	`

	var history model.MedicalHistory
	if err := r.db.GetContext(ctx, &history, query, id); err != nil {
		if mapped := mapError(err); mapped == repository.ErrNotFound {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to get medical history: %w", err)
	}

	return &history, nil
}

func (r *historyRepository) Update(ctx context.Context, history *model.MedicalHistory) error {
	query := `
		UPDATE medical_histories SET
			name = $1,
			lastname = $2,
			age = $3,
			ci = $4,
			email = $5,
			phone = $6,
			address = $7,
			motive = $8,
			diseases = $9,
			background = $10,
			f_exam = $11,
			diagnostic = $12,
			therapy = $13,
			updated_at = $14
		WHERE id = $15
	`

	result, err := r.db.ExecContext(ctx, query,
		history.Name,
		history.Lastname,
		history.Age,
		history.CI,
		history.Email,
		history.Phone,
		history.Address,
		history.Motive,
		history.Diseases,
		history.Background,
		history.FExam,
		history.Diagnostic,
		history.Therapy,
		time.Now(),
		history.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medical history: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *historyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM medical_histories
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete medical history: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *historyRepository) List(ctx context.Context) ([]*model.MedicalHistory, error) {
	query := `
		SELECT * FROM medical_histories
	`

	var histories []*model.MedicalHistory
	if err := r.db.SelectContext(ctx, &histories, query); err != nil {
		return nil, fmt.Errorf("failed to list medical histories: %w", err)
	}

	return histories, nil
}
