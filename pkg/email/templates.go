package email

import (
	"fmt"
	"time"
)

// SubmissionEmailData carries the fields of a new contact-form submission.
type SubmissionEmailData struct {
	ID         int64
	Name       string
	Business   string
	Service    string
	Phone      string
	Message    string
	ReceivedAt time.Time
}

// BuildSubmissionNotificationEmail creates the internal notification sent when
// a new submission lands.
func BuildSubmissionNotificationEmail(to string, data SubmissionEmailData) Message {
	subject := fmt.Sprintf("New contact submission #%d from %s", data.ID, data.Name)

	message := data.Message
	if message == "" {
		message = "(none)"
	}

	received := data.ReceivedAt.Format(time.RFC1123)

	textBody := fmt.Sprintf(`New contact form submission #%d

Name:     %s
Business: %s
Service:  %s
Phone:    %s
Message:  %s

Received: %s`,
		data.ID, data.Name, data.Business, data.Service, data.Phone, message, received)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">New contact submission #%d</h2>
    <table style="border-collapse: collapse; width: 100%%;">
        <tr><td style="padding: 6px 12px; font-weight: bold;">Name</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; font-weight: bold;">Business</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; font-weight: bold;">Service</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; font-weight: bold;">Phone</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; font-weight: bold;">Message</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Received %s</p>
</body>
</html>`,
		data.ID, data.Name, data.Business, data.Service, data.Phone, message, received)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
