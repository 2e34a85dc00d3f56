package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/recipecrawl"
)

// Ensure LoggingExtractor implements recipecrawl.Extractor.
var _ recipecrawl.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of what was found.
type LoggingExtractor struct {
	next   recipecrawl.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next recipecrawl.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(html, pageURL string) (ext *recipecrawl.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"duration", time.Since(begin),
		}
		if ext != nil {
			attrs = append(attrs,
				"title", ext.Title,
				"lines", len(ext.Content),
				"image", ext.ImageURL != "",
			)
		}
		attrs = append(attrs, "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
