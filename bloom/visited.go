// Package bloom provides a visited-URL set backed by a Bloom filter.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/recipecrawl"
)

// Ensure VisitedSet implements recipecrawl.VisitedSet at compile time.
var _ recipecrawl.VisitedSet = (*VisitedSet)(nil)

// VisitedSet records crawled URLs.
//
// The Bloom filter answers "definitely not visited" without touching the
// exact set. A positive answer is confirmed against the exact set, so a false
// positive never causes a URL to be skipped.
type VisitedSet struct {
	filter *bloom.BloomFilter
	exact  map[string]struct{}

	// falsePositives counts filter hits that the exact set rejected.
	falsePositives int
}

// NewVisitedSet creates a VisitedSet sized for n expected URLs
// with the given false positive rate for the pre-filter.
func NewVisitedSet(n uint, fpRate float64) *VisitedSet {
	return &VisitedSet{
		filter: bloom.NewWithEstimates(n, fpRate),
		exact:  make(map[string]struct{}),
	}
}

// Visit marks url as visited.
// Returns false if url had already been visited.
func (s *VisitedSet) Visit(url string) bool {
	if s.Visited(url) {
		return false
	}
	s.filter.AddString(url)
	s.exact[url] = struct{}{}
	return true
}

// Visited returns true if url has been marked visited.
// URLs are compared by exact string equality.
func (s *VisitedSet) Visited(url string) bool {
	if !s.filter.TestString(url) {
		return false
	}
	if _, ok := s.exact[url]; ok {
		return true
	}
	s.falsePositives++
	return false
}

// Len returns the number of visited URLs.
func (s *VisitedSet) Len() int {
	return len(s.exact)
}

// EstimatedCount returns the filter's approximation of the number of URLs added.
func (s *VisitedSet) EstimatedCount() uint {
	return uint(s.filter.ApproximatedSize())
}

// FalsePositives returns how many lookups the filter matched but the exact set rejected.
func (s *VisitedSet) FalsePositives() int {
	return s.falsePositives
}
