package recipecrawl

import "strings"

// RecipePathMarker is the path segment every recipe page URL contains.
const RecipePathMarker = "/recipe/"

// URLFilter decides which resolved URLs are recipe pages worth collecting.
//
// Matching is purely textual: no case folding and no trailing-slash
// canonicalization, so URLs differing only by a trailing slash are distinct.
type URLFilter struct {
	// Domain is a substring the URL must contain (e.g. "allrecipes.com").
	Domain string
}

// NewURLFilter returns a URLFilter for the given allowed domain.
func NewURLFilter(domain string) *URLFilter {
	return &URLFilter{Domain: domain}
}

// Match returns true if url is a recipe page on the allowed domain with no
// query string and no fragment.
func (f *URLFilter) Match(url string) bool {
	return url != "" &&
		strings.Contains(url, f.Domain) &&
		strings.Contains(url, RecipePathMarker) &&
		!strings.Contains(url, "?") &&
		!strings.Contains(url, "#")
}
