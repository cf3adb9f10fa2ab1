// Package http provides the HTTP-based implementation of cnesbeds.Fetcher
// used against the CNES registry. The registry serves server-rendered,
// latin-1 encoded pages, so the fetcher decodes the response charset and
// classifies transport faults onto the retry taxonomy.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gmfreire/cnesbeds"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests, used when
// no configuration is supplied.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements cnesbeds.Fetcher at compile time.
var _ cnesbeds.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using blocking HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page body from the given URL, decoded to UTF-8.
// Faults are classified by error code: timeouts and non-200 responses are
// EUNAVAILABLE (retryable); failures to establish a connection at all are
// EUNREACHABLE (never retried).
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", cnesbeds.Errorf(cnesbeds.EINVALID, "invalid request URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	// The registry serves ISO-8859-1; decode to UTF-8 before parsing.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", cnesbeds.Errorf(cnesbeds.EINTERNAL, "charset detection for %s: %v", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", classify(url, err)
	}

	return string(body), nil
}

// classify maps a transport error onto the retry taxonomy. Anything that
// looks like a timeout is transient; everything else on the dial path
// means the host cannot be reached at all.
func classify(url string, err error) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "request timeout for %s: %v", url, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return cnesbeds.Errorf(cnesbeds.EUNAVAILABLE, "request timeout for %s: %v", url, err)
	}
	if errors.Is(err, context.Canceled) {
		return cnesbeds.Errorf(cnesbeds.EINTERNAL, "request canceled for %s", url)
	}
	return cnesbeds.Errorf(cnesbeds.EUNREACHABLE, "error while trying to establish connection with %s: %v", url, err)
}
