package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/recipecrawl"
)

// DefaultPolitenessDelay is the pause before every page fetched for links.
const DefaultPolitenessDelay = 1 * time.Second

var _ recipecrawl.DomainLimiter = (*FixedDelay)(nil)

// FixedDelay pauses for the same duration before every request,
// whatever the domain.
type FixedDelay struct {
	delay time.Duration
}

// NewFixedDelay creates a FixedDelay that waits d before each request.
func NewFixedDelay(d time.Duration) *FixedDelay {
	return &FixedDelay{delay: d}
}

// Wait sleeps for the configured delay.
// Returns an error if the context is canceled before the delay elapses.
func (d *FixedDelay) Wait(ctx context.Context, _ string) error {
	if d.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
