// Package http provides a wrapper around the retryablehttp.Client
// for fetching remote files with retry capabilities.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"syscall"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultRetryMax = 3
	defaultTimeout  = 20 * time.Second
	dialTimeout     = 10 * time.Second
)

var (
	ErrUnsupportedScheme = errors.New("only http and https urls can be fetched")
	ErrTooLarge          = errors.New("response body exceeds the size limit")
	ErrForbiddenAddress  = errors.New("address is not publicly routable")
)

type HTTPDoer interface {
	Do(*retryablehttp.Request) (*http.Response, error)
}

type HTTP struct {
	HTTPDoer
}

var _ HTTPDoer = (*retryablehttp.Client)(nil)

// IsPublic reports whether addr may be dialed for a user supplied URL.
func IsPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() &&
		!addr.IsLoopback() &&
		!addr.IsPrivate() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsLinkLocalMulticast() &&
		!addr.IsInterfaceLocalMulticast() &&
		!addr.IsMulticast() &&
		!addr.IsUnspecified()
}

// publicOnly runs after DNS resolution, once per dialed address, so
// redirects and rebinding are checked too.
func publicOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, address)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil || !IsPublic(addr) {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, host)
	}
	return nil
}

// PublicTransport only connects to publicly routable addresses. Proxies
// are not used since they would be dialed instead of the target.
func PublicTransport() *http.Transport {
	transport := cleanhttp.DefaultPooledTransport()
	transport.Proxy = nil
	transport.DialContext = (&net.Dialer{
		Timeout:   dialTimeout,
		KeepAlive: 30 * time.Second,
		Control:   publicOnly,
	}).DialContext
	return transport
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if errors.Is(err, ErrForbiddenAddress) {
		return false, err
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// DefaultConfig retries transient failures a few times and logs through
// logger. A nil logger disables retry logging. Only public addresses are
// reachable.
func DefaultConfig(logger *slog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = defaultRetryMax
	client.HTTPClient.Timeout = defaultTimeout
	client.HTTPClient.Transport = PublicTransport()
	client.CheckRetry = checkRetry
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}
	return client
}

func New(client HTTPDoer) *HTTP {
	return &HTTP{
		HTTPDoer: client,
	}
}

func ExpectStatus2xx(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Download GETs rawURL and returns at most limit bytes of its body.
func (h *HTTP) Download(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrUnsupportedScheme
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := h.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u.Redacted(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := ExpectStatus2xx(resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}
