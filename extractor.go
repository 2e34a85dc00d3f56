package recipecrawl

// LinkExtractor finds hyperlink targets in HTML.
type LinkExtractor interface {
	// ExtractLinks returns the raw href value of every anchor in document
	// order. Callers resolve them against the page URL.
	ExtractLinks(html string) ([]string, error)
}

// Extraction holds the content pulled out of a recipe page.
type Extraction struct {
	Title    string
	Content  []string
	ImageURL string
}

// Extractor derives recipe content from a recipe page.
type Extractor interface {
	// Extract parses html and returns the title, sectioned content lines and
	// primary image URL. pageURL is used to resolve a relative image source.
	// Missing elements resolve to fallbacks, not errors.
	Extract(html string, pageURL string) (*Extraction, error)
}
