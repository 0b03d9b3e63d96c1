package submission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Sid-4215/marketbloom-backend/internal/model"
	"github.com/Sid-4215/marketbloom-backend/pkg/email"
)

// EmailNotifier sends the internal notification email for new submissions.
type EmailNotifier struct {
	client *email.Client
}

func NewEmailNotifier(client *email.Client) *EmailNotifier {
	return &EmailNotifier{client: client}
}

var _ Notifier = (*EmailNotifier)(nil)

func (n *EmailNotifier) NotifySubmission(ctx context.Context, sub *model.Submission) error {
	msg := email.BuildSubmissionNotificationEmail(n.client.NotifyTo(), email.SubmissionEmailData{
		ID:         sub.ID,
		Name:       sub.Name,
		Business:   sub.Business,
		Service:    sub.Service,
		Phone:      sub.Phone,
		Message:    sub.Message,
		ReceivedAt: sub.Timestamp,
	})

	err := n.client.Send(ctx, msg)
	var disabled email.ErrDisabled
	if errors.As(err, &disabled) {
		slog.Debug("email disabled, skipping submission notification", "submission_id", sub.ID)
		return nil
	}
	return err
}
