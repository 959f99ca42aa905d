// Package email provides functionality for sending emails via SMTP.
package email

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoRecipients  = errors.New("no recipients specified")
	ErrNotConfigured = errors.New("email sending is not configured")
)

// Message is a multipart/alternative email with a plaintext and an HTML
// body.
type Message struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

// Sender defines the interface for sending emails.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type TLSMode string

const (
	TLSModeAuto     TLSMode = "auto"
	TLSModeStartTLS TLSMode = "starttls"
	TLSModeImplicit TLSMode = "implicit"
	TLSModeNone     TLSMode = "none"
)

// Config holds the SMTP configuration.
// With TLSModeAuto the mode is inferred from the port:
// - Port 465: implicit TLS.
// - Port 587: STARTTLS.
// - Other ports: TLS disabled.
type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	TLSMode       TLSMode
	TLSSkipVerify bool
}

func (c Config) tlsMode() TLSMode {
	if c.TLSMode != "" && c.TLSMode != TLSModeAuto {
		return c.TLSMode
	}
	switch c.Port {
	case 465:
		return TLSModeImplicit
	case 587:
		return TLSModeStartTLS
	default:
		return TLSModeNone
	}
}

// SMTPSender implements the Sender interface using SMTP.
type SMTPSender struct {
	config Config
	now    func() time.Time
}

// NewSMTPSender creates a new SMTP email sender.
func NewSMTPSender(config Config) *SMTPSender {
	return &SMTPSender{
		config: config,
		now:    time.Now,
	}
}

// Send sends msg to its recipients.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}

	body, err := s.buildMessage(msg)
	if err != nil {
		return fmt.Errorf("building message: %w", err)
	}

	client, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if s.config.Username != "" {
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range msg.To {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := writer.Write(body); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

func (s *SMTPSender) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName:         s.config.Host,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: s.config.TLSSkipVerify, //nolint:gosec
	}
}

func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	dialer := &net.Dialer{Timeout: 30 * time.Second}

	var (
		conn net.Conn
		err  error
	)
	mode := s.config.tlsMode()
	if mode == TLSModeImplicit {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: s.tlsConfig()}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if mode == TLSModeStartTLS {
		if err := client.StartTLS(s.tlsConfig()); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to start TLS: %w", err)
		}
	}
	return client, nil
}

// buildMessage renders msg as a multipart/alternative message with the
// plaintext part first.
func (s *SMTPSender) buildMessage(msg Message) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", msg.Text},
		{"text/html; charset=UTF-8", msg.HTML},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(normalizeNewlines(p.content))); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	headers := [][2]string{
		{"From", s.config.From},
		{"To", strings.Join(msg.To, ", ")},
		{"Subject", mime.QEncoding.Encode("UTF-8", msg.Subject)},
		{"Date", s.now().Format(time.RFC1123Z)},
		{"Message-ID", s.messageID()},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/alternative; boundary=" + mw.Boundary()},
	}
	for _, h := range headers {
		fmt.Fprintf(&out, "%s: %s\r\n", h[0], h[1])
	}
	out.WriteString("\r\n")
	out.Write(body.Bytes())

	return out.Bytes(), nil
}

func (s *SMTPSender) messageID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	domain := s.config.Host
	if _, after, ok := strings.Cut(s.config.From, "@"); ok {
		domain = after
	}
	return "<" + hex.EncodeToString(b) + "@" + domain + ">"
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// DisabledSender rejects every message. It stands in when SMTP is not
// configured.
type DisabledSender struct{}

func (DisabledSender) Send(context.Context, Message) error {
	return ErrNotConfigured
}
