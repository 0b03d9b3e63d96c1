package handler

import (
	"context"

	"github.com/Sid-4215/marketbloom-backend/internal/model"
	"github.com/Sid-4215/marketbloom-backend/internal/repository"
)

// mockRepo lets each test script the store's behavior.
type mockRepo struct {
	insertFunc func(ctx context.Context, sub *model.Submission) error
	listFunc   func(ctx context.Context) ([]*model.Submission, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockRepo) Insert(ctx context.Context, sub *model.Submission) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, sub)
	}
	sub.ID = 1
	sub.Status = model.StatusNew
	return nil
}

func (m *mockRepo) List(ctx context.Context) ([]*model.Submission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

var _ repository.SubmissionRepository = (*mockRepo)(nil)

// noopNotifier records nothing and never fails.
type noopNotifier struct{}

func (noopNotifier) NotifySubmission(ctx context.Context, sub *model.Submission) error {
	return nil
}
