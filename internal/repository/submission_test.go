package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid-4215/marketbloom-backend/internal/model"
)

func newMockRepo(t *testing.T) (*PgSubmissionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPgSubmissionRepository(db), mock
}

func TestInsert_PopulatesGeneratedColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO submissions`).
		WithArgs("A", "B", "C", "D", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp", "status"}).
			AddRow(int64(3), now, "new"))

	sub := &model.Submission{Name: "A", Business: "B", Service: "C", Phone: "D"}
	require.NoError(t, repo.Insert(context.Background(), sub))

	assert.Equal(t, int64(3), sub.ID)
	assert.Equal(t, now, sub.Timestamp)
	assert.Equal(t, "new", sub.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_StoreError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO submissions`).
		WillReturnError(errors.New("disk full"))

	sub := &model.Submission{Name: "A", Business: "B", Service: "C", Phone: "D"}
	assert.Error(t, repo.Insert(context.Background(), sub))
}

func TestList_ScansAllColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	mock.ExpectQuery(`SELECT id, name, business, service, phone, message, "timestamp", status\s+FROM submissions\s+ORDER BY "timestamp" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "business", "service", "phone", "message", "timestamp", "status"}).
			AddRow(int64(2), "N2", "B2", "S2", "P2", "", t2, "new").
			AddRow(int64(1), "N1", "B1", "S1", "P1", "hi", t1, "new"))

	subs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, int64(2), subs[0].ID)
	assert.True(t, subs[0].Timestamp.After(subs[1].Timestamp))
	assert.Equal(t, "hi", subs[1].Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestDelete_RowRemoved(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM submissions WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM submissions WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_StoreErrorIsNotNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM submissions WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Delete(context.Background(), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
