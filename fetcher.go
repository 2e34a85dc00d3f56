package recipecrawl

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the page HTML.
	// Non-200 responses return an EUNAVAILABLE error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Downloader retrieves raw bytes, such as recipe images.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}
