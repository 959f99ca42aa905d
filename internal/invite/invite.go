// Package invite emails invitations to join the site.
package invite

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/matt-dz/recipecenter/internal/email"
)

// AppName is the site name used in invitation emails.
const AppName = "Do More Cook More"

const (
	minInviterName = 3
	maxInviterName = 60
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidInviterName = errors.New("inviter name must be between 3 and 60 characters")
)

//go:embed templates/*.tmpl
var templates embed.FS

var (
	htmlTemplate = htmltemplate.Must(htmltemplate.ParseFS(templates, "templates/invite.html.tmpl"))
	textTemplate = texttemplate.Must(texttemplate.ParseFS(templates, "templates/invite.txt.tmpl"))
)

// Mailer sends invitation emails.
type Mailer interface {
	SendInviteEmail(ctx context.Context, toEmail, inviterName string) error
}

type inviteData struct {
	InviterName string
	AppName     string
	JoinURL     string
	Year        int
}

type SMTPMailer struct {
	sender   email.Sender
	joinURL  string
	validate *validator.Validate
	now      func() time.Time
}

// NewMailer returns a Mailer whose invitations link to joinURL.
func NewMailer(sender email.Sender, joinURL string) *SMTPMailer {
	return &SMTPMailer{
		sender:   sender,
		joinURL:  joinURL,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Subject returns the subject line of an invitation from inviterName.
func Subject(inviterName string) string {
	return inviterName + " invited you to join " + AppName
}

func (m *SMTPMailer) SendInviteEmail(ctx context.Context, toEmail, inviterName string) error {
	toEmail = strings.TrimSpace(toEmail)
	inviterName = strings.Join(strings.Fields(inviterName), " ")

	if err := m.validate.Var(toEmail, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, toEmail)
	}
	if n := utf8.RuneCountInString(inviterName); n < minInviterName || n > maxInviterName {
		return ErrInvalidInviterName
	}

	msg, err := m.message(toEmail, inviterName)
	if err != nil {
		return err
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending invite: %w", err)
	}
	return nil
}

func (m *SMTPMailer) message(toEmail, inviterName string) (email.Message, error) {
	data := inviteData{
		InviterName: inviterName,
		AppName:     AppName,
		JoinURL:     m.joinURL,
		Year:        m.now().Year(),
	}

	var html, text bytes.Buffer
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return email.Message{}, fmt.Errorf("rendering html body: %w", err)
	}
	if err := textTemplate.Execute(&text, data); err != nil {
		return email.Message{}, fmt.Errorf("rendering text body: %w", err)
	}

	return email.Message{
		To:      []string{toEmail},
		Subject: Subject(inviterName),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
