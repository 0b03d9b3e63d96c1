package email

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSend_Disabled(t *testing.T) {
	c, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = c.Send(context.Background(), Message{
		To:       []string{"ops@example.com"},
		Subject:  "hi",
		TextBody: "hello",
	})
	if _, ok := err.(ErrDisabled); !ok {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestBuildMessage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		msg     Message
		wantErr bool
	}{
		{
			name:    "missing from",
			from:    "",
			msg:     Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"},
			wantErr: true,
		},
		{
			name:    "missing subject",
			from:    "noreply@example.com",
			msg:     Message{To: []string{"a@b.c"}, TextBody: "t"},
			wantErr: true,
		},
		{
			name:    "missing body",
			from:    "noreply@example.com",
			msg:     Message{To: []string{"a@b.c"}, Subject: "s"},
			wantErr: true,
		},
		{
			name:    "text only",
			from:    "noreply@example.com",
			msg:     Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"},
			wantErr: false,
		},
		{
			name:    "html only",
			from:    "noreply@example.com",
			msg:     Message{To: []string{"a@b.c"}, Subject: "s", HTMLBody: "<p>t</p>"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildSubmissionNotificationEmail(t *testing.T) {
	data := SubmissionEmailData{
		ID:         12,
		Name:       "Ada",
		Business:   "Analytical Engines",
		Service:    "Consulting",
		Phone:      "+1-555-0100",
		Message:    "Call me back",
		ReceivedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	msg := BuildSubmissionNotificationEmail("leads@example.com", data)

	if len(msg.To) != 1 || msg.To[0] != "leads@example.com" {
		t.Errorf("unexpected recipients: %v", msg.To)
	}
	for _, want := range []string{"#12", "Ada", "Analytical Engines", "Consulting", "+1-555-0100", "Call me back"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestBuildSubmissionNotificationEmail_EmptyMessage(t *testing.T) {
	msg := BuildSubmissionNotificationEmail("leads@example.com", SubmissionEmailData{
		ID: 1, Name: "A", Business: "B", Service: "C", Phone: "D",
		ReceivedAt: time.Now(),
	})
	if !strings.Contains(msg.TextBody, "(none)") {
		t.Error("empty message should render as (none)")
	}
}
