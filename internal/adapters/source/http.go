package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/sail/internal/build"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultGistAPIBaseURL is the GitHub REST endpoint used for gists.
	DefaultGistAPIBaseURL = "https://api.github.com"

	defaultHTTPTimeout = 5 * time.Minute

	// maxJSONResponseBytes caps gist metadata responses (10 MB).
	maxJSONResponseBytes = 10 << 20
)

type options struct {
	client      *http.Client
	gistBaseURL string
	userAgent   string
}

// Option configures the HTTP backed providers.
type Option func(*options)

// WithHTTPClient sets the client used for every request.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithBaseURL overrides the gist API base URL.
func WithBaseURL(base string) Option {
	return func(o *options) {
		o.gistBaseURL = strings.TrimRight(base, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

func newOptions(opts []Option) options {
	o := options{
		client:      &http.Client{Timeout: defaultHTTPTimeout},
		gistBaseURL: DefaultGistAPIBaseURL,
		userAgent:   "sail/" + build.Version,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// get performs a GET request and fails on any non-2xx status. The caller
// owns the returned body.
func (o options) get(ctx context.Context, url string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrFetchFailed, err), "failed to create request"), "url", url)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("User-Agent", o.userAgent)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrFetchFailed, err), "request failed"), "url", url)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()
		err := zerr.With(zerr.Wrap(domain.ErrUnexpectedStatus, "unexpected HTTP status"), "url", url)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}
	return resp, nil
}
