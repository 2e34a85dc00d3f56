package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recipecrawl"
)

// imageSelectors lists the selectors tried, in order, for a recipe's primary image.
// The first two match the photo classes used by allrecipes.com.
var imageSelectors = []string{
	"img.image-container__image",
	"img.rec-photo",
	"img[src]",
}

// Ensure RecipeExtractor implements recipecrawl.Extractor at compile time.
var _ recipecrawl.Extractor = (*RecipeExtractor)(nil)

// RecipeExtractor pulls the title, sectioned text and primary image out of
// a recipe page.
type RecipeExtractor struct{}

// NewRecipeExtractor creates a new RecipeExtractor.
func NewRecipeExtractor() *RecipeExtractor {
	return &RecipeExtractor{}
}

// Extract parses html and returns the recipe content.
//
// The title is the first h1, or recipecrawl.FallbackTitle when there is none.
// Paragraphs are grouped under the nearest h2 preceding them in document
// order and split into sentence lines by recipecrawl.BuildContent.
// The image URL is resolved against pageURL and is empty when no image matches.
func (e *RecipeExtractor) Extract(html string, pageURL string) (*recipecrawl.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recipecrawl.Errorf(recipecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	return &recipecrawl.Extraction{
		Title:    extractTitle(doc),
		Content:  recipecrawl.BuildContent(extractParagraphs(doc)),
		ImageURL: extractImageURL(doc, pageURL),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return recipecrawl.FallbackTitle
	}
	return strings.TrimSpace(h1.Text())
}

// extractParagraphs walks h2 and p elements in document order, pairing each
// paragraph with the last h2 seen before it.
func extractParagraphs(doc *goquery.Document) []recipecrawl.Paragraph {
	var (
		paragraphs []recipecrawl.Paragraph
		heading    string
		hasHeading bool
	)

	doc.Find("h2, p").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "h2" {
			heading = strings.TrimSpace(sel.Text())
			hasHeading = true
			return
		}
		paragraphs = append(paragraphs, recipecrawl.Paragraph{
			Heading:    heading,
			HasHeading: hasHeading,
			Text:       sel.Text(),
		})
	})

	return paragraphs
}

// extractImageURL returns the src of the first image matched by
// imageSelectors. A match without a usable src yields no image.
func extractImageURL(doc *goquery.Document, pageURL string) string {
	for _, selector := range imageSelectors {
		img := doc.Find(selector).First()
		if img.Length() == 0 {
			continue
		}
		src, _ := img.Attr("src")
		return resolveSrc(pageURL, strings.TrimSpace(src))
	}
	return ""
}

// resolveSrc resolves a possibly relative image source against the page URL.
// The source is returned unchanged when either URL cannot be parsed.
func resolveSrc(pageURL, src string) string {
	if src == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
