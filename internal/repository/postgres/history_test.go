package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuarez/clinic-manager/internal/model"
	"github.com/osuarez/clinic-manager/internal/repository"
)

var historyColumns = []string{
	"id", "created_at", "updated_at",
	"name", "lastname", "age", "ci", "email", "phone", "address",
	"motive", "diseases", "background", "f_exam", "diagnostic", "therapy",
}

func historyRow(id uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(historyColumns).AddRow(
		id.String(), now, now,
		"Juan", "Perez", 40, "12345678", "juan@example.com", "555-0100", "Av. Principal 1",
		"checkup", "none", "none", "normal", "healthy", "none",
	)
}

func testHistory() *model.MedicalHistory {
	return &model.MedicalHistory{
		Name:       "Juan",
		Lastname:   "Perez",
		Age:        40,
		CI:         "12345678",
		Email:      "juan@example.com",
		Phone:      "555-0100",
		Address:    "Av. Principal 1",
		Motive:     "checkup",
		Diseases:   "none",
		Background: "none",
		FExam:      "normal",
		Diagnostic: "healthy",
		Therapy:    "none",
	}
}

func TestHistoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectExec("INSERT INTO medical_histories").
		WithArgs(
			sqlmock.AnyArg(), "Juan", "Perez", 40, "12345678", "juan@example.com",
			"555-0100", "Av. Principal 1", "checkup", "none", "none", "normal",
			"healthy", "none", sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	history := testHistory()
	require.NoError(t, repo.Create(context.Background(), history))
	assert.NotEqual(t, uuid.Nil, history.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM medical_histories").
		WithArgs(id).
		WillReturnRows(historyRow(id))

	history, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, history.ID)
	assert.Equal(t, 40, history.Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM medical_histories").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectExec("UPDATE medical_histories").
		WillReturnResult(sqlmock.NewResult(0, 0))

	history := testHistory()
	history.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(context.Background(), history), repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM medical_histories").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec("DELETE FROM medical_histories").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM medical_histories").
		WillReturnRows(historyRow(uuid.New()))

	histories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, histories, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
