// Package http provides net/http implementations of recipecrawl.Fetcher
// and recipecrawl.Downloader.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/recipecrawl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultImageTimeout is the timeout used for image downloads.
const DefaultImageTimeout = 5 * time.Second

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "Mozilla/5.0"

// DefaultMaxBodySize caps how many bytes are read from a response body.
const DefaultMaxBodySize = 10 << 20

// Ensure Fetcher implements recipecrawl.Fetcher and recipecrawl.Downloader at compile time.
var (
	_ recipecrawl.Fetcher    = (*Fetcher)(nil)
	_ recipecrawl.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves content from URLs using plain HTTP GET requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of response bytes read.
// Larger bodies are rejected with an EINVALID error.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// The body is decoded to UTF-8 using the declared or sniffed charset.
// Non-200 responses return an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := f.readBody(resp, url)
	if err != nil {
		return "", err
	}

	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Download retrieves the raw bytes at url, such as an image.
// Non-200 responses return an EUNAVAILABLE error.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return f.readBody(resp, url)
}

// readBody reads the whole response body, failing if it exceeds maxBodySize.
func (f *Fetcher) readBody(resp *http.Response, url string) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, recipecrawl.Errorf(recipecrawl.EINVALID, "response body for %s exceeds %s", url, recipecrawl.FormatBytes(int(f.maxBodySize)))
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, recipecrawl.Errorf(recipecrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp, nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
