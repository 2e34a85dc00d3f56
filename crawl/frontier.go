package crawl

import "github.com/fwojciec/recipecrawl"

// Compile-time interface verification.
var _ recipecrawl.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO queue of URLs.
// It performs no deduplication; the crawler checks its visited set on pop.
// It is not safe for concurrent use.
type Frontier struct {
	queue []string
	head  int
}

// NewFrontier creates a Frontier seeded with the given URLs in order.
func NewFrontier(seeds ...string) *Frontier {
	f := &Frontier{}
	for _, u := range seeds {
		f.Push(u)
	}
	return f
}

// Push appends a URL to the back of the queue.
func (f *Frontier) Push(url string) {
	f.queue = append(f.queue, url)
}

// Pop removes and returns the URL at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if f.head >= len(f.queue) {
		return "", false
	}
	url := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 64 && f.head*2 >= len(f.queue) {
		f.queue = append([]string(nil), f.queue[f.head:]...)
		f.head = 0
	}
	return url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	return len(f.queue) - f.head
}
