package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sid-4215/marketbloom-backend/internal/model"
)

// ErrNotFound is returned by Delete when no row matched the id. Callers must
// be able to tell this apart from a store failure.
var ErrNotFound = errors.New("submission not found")

// SubmissionRepository defines the persistence contract for submissions:
// insert-and-return-id, select-all newest-first, delete-by-id.
type SubmissionRepository interface {
	Insert(ctx context.Context, sub *model.Submission) error
	List(ctx context.Context) ([]*model.Submission, error)
	Delete(ctx context.Context, id int64) error
}

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) *PgSubmissionRepository {
	return &PgSubmissionRepository{db: db}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Insert stores a new submission and populates sub.ID, sub.Timestamp and
// sub.Status from the RETURNING clause; timestamp and status come from the
// store's defaults.
func (r *PgSubmissionRepository) Insert(ctx context.Context, sub *model.Submission) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO submissions (name, business, service, phone, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, "timestamp", status`,
		sub.Name, sub.Business, sub.Service, sub.Phone, sub.Message,
	).Scan(&sub.ID, &sub.Timestamp, &sub.Status)
}

// List returns all submissions ordered by timestamp descending.
func (r *PgSubmissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, business, service, phone, message, "timestamp", status
		 FROM submissions
		 ORDER BY "timestamp" DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Business, &s.Service, &s.Phone, &s.Message, &s.Timestamp, &s.Status); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Delete removes the submission with the given id. ErrNotFound means the row
// did not exist; any other error is a store failure.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
