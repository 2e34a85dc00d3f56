package mock

import (
	"context"

	"github.com/fwojciec/recipecrawl"
)

var _ recipecrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of recipecrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ recipecrawl.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of recipecrawl.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}
