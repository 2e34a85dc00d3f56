// Package slog provides logging decorators for recipecrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/recipecrawl"
)

// Ensure the decorators implement their interfaces.
var (
	_ recipecrawl.Fetcher    = (*LoggingFetcher)(nil)
	_ recipecrawl.Downloader = (*LoggingDownloader)(nil)
)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   recipecrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next recipecrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingDownloader wraps a Downloader with debug logging.
type LoggingDownloader struct {
	next   recipecrawl.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next recipecrawl.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download logs the URL being downloaded and delegates to the wrapped downloader.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		d.logger.Debug("download",
			"url", url,
			"size", recipecrawl.FormatBytes(len(data)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url)
}
