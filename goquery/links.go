// Package goquery implements link and recipe extraction on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recipecrawl"
)

// Ensure LinkExtractor implements recipecrawl.LinkExtractor at compile time.
var _ recipecrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor returns the href of every anchor on a page.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns the raw href values of all anchors
// that carry one, in document order. Values are not resolved, filtered or
// deduplicated.
func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recipecrawl.Errorf(recipecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	links := []string{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		links = append(links, href)
	})
	return links, nil
}
