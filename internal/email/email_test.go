package email

import (
	"bufio"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"strings"
	"testing"
	"time"
)

func TestNewSMTPSender(t *testing.T) {
	config := Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user@example.com",
		Password: "password",
		From:     "sender@example.com",
	}

	sender := NewSMTPSender(config)
	if sender == nil {
		t.Fatal("expected sender to be created, got nil")
	}

	if sender.config.Host != config.Host {
		t.Errorf("expected host %s, got %s", config.Host, sender.config.Host)
	}
	if sender.config.Port != config.Port {
		t.Errorf("expected port %d, got %d", config.Port, sender.config.Port)
	}
}

func TestBuildMessage(t *testing.T) {
	sender := NewSMTPSender(Config{From: "sender@example.com"})
	sender.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	raw, err := sender.buildMessage(Message{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Grandma invited you",
		Text:    "Hello\nthere",
		HTML:    "<h1>Hello</h1>",
	})
	if err != nil {
		t.Fatalf("buildMessage() error = %v", err)
	}

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("parsing message: %v", err)
	}

	if got := msg.Header.Get("From"); got != "sender@example.com" {
		t.Errorf("From = %q", got)
	}
	if got := msg.Header.Get("To"); got != "a@example.com, b@example.com" {
		t.Errorf("To = %q", got)
	}
	if got := msg.Header.Get("Subject"); got != "Grandma invited you" {
		t.Errorf("Subject = %q", got)
	}

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil {
		t.Fatalf("parsing content type: %v", err)
	}
	if mediaType != "multipart/alternative" {
		t.Fatalf("expected multipart/alternative, got %s", mediaType)
	}

	mr := multipart.NewReader(msg.Body, params["boundary"])
	wantParts := []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", "Hello\r\nthere"},
		{"text/html; charset=UTF-8", "<h1>Hello</h1>"},
	}
	for i, want := range wantParts {
		part, err := mr.NextPart()
		if err != nil {
			t.Fatalf("reading part %d: %v", i, err)
		}
		if got := part.Header.Get("Content-Type"); got != want.contentType {
			t.Errorf("part %d content type = %q, want %q", i, got, want.contentType)
		}
		body, _ := io.ReadAll(part)
		if string(body) != want.body {
			t.Errorf("part %d body = %q, want %q", i, body, want.body)
		}
	}
	if _, err := mr.NextPart(); !errors.Is(err, io.EOF) {
		t.Errorf("expected exactly two parts, got err %v", err)
	}
}

func TestBuildMessage_EncodesSubject(t *testing.T) {
	sender := NewSMTPSender(Config{From: "sender@example.com"})

	raw, err := sender.buildMessage(Message{
		To:      []string{"a@example.com"},
		Subject: "Zoë\r\nBcc: victim@example.com",
		Text:    "hi",
	})
	if err != nil {
		t.Fatalf("buildMessage() error = %v", err)
	}

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("parsing message: %v", err)
	}
	if msg.Header.Get("Bcc") != "" {
		t.Error("subject must not be able to inject headers")
	}
}

func TestSend_NoRecipients(t *testing.T) {
	sender := NewSMTPSender(Config{
		Host: "smtp.example.com",
		Port: 587,
		From: "sender@example.com",
	})

	err := sender.Send(context.Background(), Message{Subject: "Test", Text: "Body"})
	if !errors.Is(err, ErrNoRecipients) {
		t.Errorf("expected %v, got %v", ErrNoRecipients, err)
	}
}

func TestTLSInference(t *testing.T) {
	tests := []struct {
		name string
		mode TLSMode
		port int
		want TLSMode
	}{
		{"port 587 uses STARTTLS", TLSModeAuto, 587, TLSModeStartTLS},
		{"port 465 uses implicit TLS", TLSModeAuto, 465, TLSModeImplicit},
		{"port 25 does not use TLS", TLSModeAuto, 25, TLSModeNone},
		{"empty mode infers", "", 465, TLSModeImplicit},
		{"explicit mode wins", TLSModeNone, 465, TLSModeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Port: tt.port, TLSMode: tt.mode}
			if got := c.tlsMode(); got != tt.want {
				t.Errorf("tlsMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

// fakeSMTP accepts one plaintext SMTP session and returns the DATA payload.
func fakeSMTP(t *testing.T) (port int, data <-chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listening: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	out := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		r := bufio.NewReader(conn)
		write := func(s string) { _, _ = conn.Write([]byte(s + "\r\n")) }

		write("220 localhost ESMTP")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				write("250 localhost")
			case strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
				write("250 OK")
			case cmd == "DATA":
				write("354 go ahead")
				var sb strings.Builder
				for {
					l, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if l == ".\r\n" {
						break
					}
					sb.WriteString(l)
				}
				out <- sb.String()
				write("250 queued")
			case cmd == "QUIT":
				write("221 bye")
				return
			default:
				write("502 not implemented")
			}
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, out
}

func TestSend_Plaintext(t *testing.T) {
	port, data := fakeSMTP(t)

	sender := NewSMTPSender(Config{
		Host:    "127.0.0.1",
		Port:    port,
		From:    "sender@example.com",
		TLSMode: TLSModeNone,
	})

	err := sender.Send(context.Background(), Message{
		To:      []string{"friend@example.com"},
		Subject: "Hi",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	select {
	case payload := <-data:
		for _, want := range []string{"Subject: Hi", "plain body", "<p>html body</p>", "To: friend@example.com"} {
			if !strings.Contains(payload, want) {
				t.Errorf("expected %q in payload:\n%s", want, payload)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server never received DATA")
	}
}

func TestDisabledSender(t *testing.T) {
	err := DisabledSender{}.Send(context.Background(), Message{To: []string{"a@example.com"}})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected %v, got %v", ErrNotConfigured, err)
	}
}
