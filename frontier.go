package recipecrawl

import "context"

// URLFrontier is the FIFO queue of URLs awaiting a crawl.
type URLFrontier interface {
	// Push appends a URL to the back of the queue.
	Push(url string)

	// Pop removes and returns the URL at the front of the queue.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs in the queue.
	Len() int
}

// VisitedSet records URLs that have been crawled for outbound links.
type VisitedSet interface {
	// Visit marks url as visited.
	// Returns false if url had already been visited.
	Visit(url string) bool

	// Visited returns true if url has been marked visited.
	Visited(url string) bool

	// Len returns the number of visited URLs.
	Len() int
}

// DomainLimiter throttles requests to a domain.
type DomainLimiter interface {
	// Wait blocks until a request to the domain may proceed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
