package invite

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matt-dz/recipecenter/internal/email"
)

type recordingSender struct {
	messages []email.Message
	err      error
}

func (r *recordingSender) Send(_ context.Context, msg email.Message) error {
	r.messages = append(r.messages, msg)
	return r.err
}

func TestSendInviteEmail(t *testing.T) {
	sender := &recordingSender{}
	mailer := NewMailer(sender, "https://cook.example.com/register")
	mailer.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	if err := mailer.SendInviteEmail(context.Background(), " friend@example.com ", "Grandma  Jo"); err != nil {
		t.Fatalf("SendInviteEmail() error = %v", err)
	}

	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}
	msg := sender.messages[0]

	if len(msg.To) != 1 || msg.To[0] != "friend@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	if msg.Subject != "Grandma Jo invited you to join Do More Cook More" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	for _, body := range []string{msg.HTML, msg.Text} {
		for _, want := range []string{"Grandma Jo", "https://cook.example.com/register", "2025"} {
			if !strings.Contains(body, want) {
				t.Errorf("expected %q in body:\n%s", want, body)
			}
		}
	}
}

func TestSendInviteEmail_EscapesHTML(t *testing.T) {
	sender := &recordingSender{}
	mailer := NewMailer(sender, "https://cook.example.com")

	if err := mailer.SendInviteEmail(context.Background(), "friend@example.com", "<b>Eve</b>"); err != nil {
		t.Fatalf("SendInviteEmail() error = %v", err)
	}

	html := sender.messages[0].HTML
	if strings.Contains(html, "<b>Eve</b>") {
		t.Error("inviter name must be escaped in the HTML body")
	}
	if !strings.Contains(html, "&lt;b&gt;Eve&lt;/b&gt;") {
		t.Error("expected escaped inviter name in the HTML body")
	}
	if !strings.Contains(sender.messages[0].Text, "<b>Eve</b>") {
		t.Error("plaintext body keeps the name as typed")
	}
}

func TestSendInviteEmail_Validation(t *testing.T) {
	tests := []struct {
		name    string
		to      string
		inviter string
		want    error
	}{
		{"bad email", "not-an-email", "Grandma", ErrInvalidEmail},
		{"empty email", "", "Grandma", ErrInvalidEmail},
		{"short name", "a@example.com", "Jo", ErrInvalidInviterName},
		{"long name", "a@example.com", strings.Repeat("x", 61), ErrInvalidInviterName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			err := NewMailer(sender, "").SendInviteEmail(context.Background(), tt.to, tt.inviter)
			if !errors.Is(err, tt.want) {
				t.Fatalf("SendInviteEmail() error = %v, want %v", err, tt.want)
			}
			if len(sender.messages) != 0 {
				t.Error("invalid invites must not be sent")
			}
		})
	}
}

func TestSendInviteEmail_SenderError(t *testing.T) {
	sender := &recordingSender{err: email.ErrNotConfigured}

	err := NewMailer(sender, "").SendInviteEmail(context.Background(), "a@example.com", "Grandma")
	if !errors.Is(err, email.ErrNotConfigured) {
		t.Fatalf("SendInviteEmail() error = %v, want %v", err, email.ErrNotConfigured)
	}
}
