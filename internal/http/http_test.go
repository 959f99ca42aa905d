package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-cleanhttp"
)

func TestDownload(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/flaky":
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("image"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		case "/missing":
			http.NotFound(w, r)
		default:
			_, _ = w.Write([]byte("image"))
		}
	}))
	defer server.Close()

	client := DefaultConfig(nil)
	// httptest listens on loopback.
	client.HTTPClient.Transport = cleanhttp.DefaultPooledTransport()
	client.RetryWaitMin = 0
	client.RetryWaitMax = 0
	client.RetryMax = 1
	h := New(client)

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr error
		anyErr  bool
	}{
		{name: "ok", url: server.URL + "/cover.png", want: "image"},
		{name: "retries", url: server.URL + "/flaky", want: "image"},
		{name: "too large", url: server.URL + "/big", wantErr: ErrTooLarge},
		{name: "not found", url: server.URL + "/missing", anyErr: true},
		{name: "file scheme", url: "file:///etc/passwd", wantErr: ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Download(context.Background(), tt.url, 16)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Fatal("expected an error")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(got) != tt.want {
					t.Errorf("body = %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestDownload_RefusesPrivateAddresses(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("internal-secret"))
	}))
	defer server.Close()

	client := DefaultConfig(nil)
	client.RetryWaitMin = 0
	client.RetryWaitMax = 0
	h := New(client)

	got, err := h.Download(context.Background(), server.URL+"/latest/meta-data", 1<<20)
	if !errors.Is(err, ErrForbiddenAddress) {
		t.Fatalf("err = %v, want %v", err, ErrForbiddenAddress)
	}
	if got != nil {
		t.Errorf("body = %q, want nil", got)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("server was reached %d times", n)
	}
}

func TestIsPublic(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{addr: "93.184.216.34", want: true},
		{addr: "2606:2800:220:1:248:1893:25c8:1946", want: true},
		{addr: "127.0.0.1", want: false},
		{addr: "::1", want: false},
		{addr: "10.0.0.5", want: false},
		{addr: "172.16.3.4", want: false},
		{addr: "192.168.1.1", want: false},
		{addr: "169.254.169.254", want: false},
		{addr: "fe80::1", want: false},
		{addr: "fd00::1", want: false},
		{addr: "0.0.0.0", want: false},
		{addr: "::ffff:127.0.0.1", want: false},
		{addr: "224.0.0.1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := IsPublic(netip.MustParseAddr(tt.addr)); got != tt.want {
				t.Errorf("IsPublic(%s) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}
