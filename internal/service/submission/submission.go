package submission

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Sid-4215/marketbloom-backend/internal/model"
	"github.com/Sid-4215/marketbloom-backend/internal/repository"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name     string
	Business string
	Service  string
	Phone    string
	Message  string
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

// Notifier sends the best-effort notification for a stored submission.
// Failures are the notifier's own problem to report; the service only logs.
type Notifier interface {
	NotifySubmission(ctx context.Context, sub *model.Submission) error
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*model.Submission, error)
	List(ctx context.Context) ([]*model.Submission, error)
	Delete(ctx context.Context, id int64) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type submissionService struct {
	repo          repository.SubmissionRepository
	notifier      Notifier
	storeTimeout  time.Duration
	notifyTimeout time.Duration
}

// New builds the submission service. Store calls are bounded by storeTimeout
// so a slow database cannot hang a request; notifyTimeout bounds the detached
// notification send.
func New(repo repository.SubmissionRepository, notifier Notifier, storeTimeout, notifyTimeout time.Duration) Service {
	if storeTimeout <= 0 {
		storeTimeout = 15 * time.Second
	}
	if notifyTimeout <= 0 {
		notifyTimeout = 30 * time.Second
	}
	return &submissionService{
		repo:          repo,
		notifier:      notifier,
		storeTimeout:  storeTimeout,
		notifyTimeout: notifyTimeout,
	}
}

// Create validates required fields, inserts the submission, and dispatches the
// email notification without waiting for it. The returned submission carries
// the store-generated id, timestamp, and status.
func (s *submissionService) Create(ctx context.Context, req CreateRequest) (*model.Submission, error) {
	if req.Name == "" || req.Business == "" || req.Service == "" || req.Phone == "" {
		return nil, ErrValidation
	}

	sub := &model.Submission{
		Name:     req.Name,
		Business: req.Business,
		Service:  req.Service,
		Phone:    req.Phone,
		Message:  req.Message,
	}

	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Insert(sctx, sub); err != nil {
		slog.Error("submission insert failed", "error", err)
		return nil, ErrInternal
	}

	// Fire-and-forget: the response path never waits on the notifier, so the
	// send runs under its own detached, bounded context.
	go func(sub model.Submission) {
		nctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifySubmission(nctx, &sub); err != nil {
			slog.Error("submission notification failed", "submission_id", sub.ID, "error", err)
		}
	}(*sub)

	return sub, nil
}

// List returns all submissions, newest first. Never returns a nil slice.
func (s *submissionService) List(ctx context.Context) ([]*model.Submission, error) {
	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	subs, err := s.repo.List(sctx)
	if err != nil {
		slog.Error("submission list failed", "error", err)
		return nil, ErrInternal
	}
	if subs == nil {
		subs = []*model.Submission{}
	}
	return subs, nil
}

func (s *submissionService) Delete(ctx context.Context, id int64) error {
	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	err := s.repo.Delete(sctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	default:
		slog.Error("submission delete failed", "submission_id", id, "error", err)
		return ErrInternal
	}
}
