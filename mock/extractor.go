package mock

import "github.com/fwojciec/recipecrawl"

var _ recipecrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of recipecrawl.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*recipecrawl.Extraction, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*recipecrawl.Extraction, error) {
	return e.ExtractFn(html, pageURL)
}

var _ recipecrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of recipecrawl.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	return e.ExtractLinksFn(html)
}
