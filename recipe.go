package recipecrawl

import "fmt"

// Placeholder titles used when a recipe page cannot provide one.
const (
	// FallbackTitle is used when a recipe page has no h1 element.
	FallbackTitle = "No Title Found"

	// UnknownTitle is used when a recipe page answers with a non-200 status.
	UnknownTitle = "Unknown Title"
)

// FailedTitle returns the failure-flagged title recorded for a recipe page
// that could not be fetched or parsed.
func FailedTitle(err error) string {
	return fmt.Sprintf("Failed to load (%v)", err)
}

// Recipe is a scraped recipe page.
// A Recipe is not modified after it has been added to a RecipeBook.
type Recipe struct {
	URL   string
	Title string

	// Content interleaves section markers ("=== heading ==="), sentence
	// lines and blank separator lines.
	Content []string

	// ImageURL is empty when the page has no image.
	ImageURL string
}

// HasImage reports whether the recipe carries an image URL.
func (r *Recipe) HasImage() bool {
	return r.ImageURL != ""
}

// RecipeBook holds crawl results keyed by recipe URL.
// Iteration follows insertion order, which is the order recipes were discovered.
type RecipeBook struct {
	byURL map[string]*Recipe
	order []*Recipe
}

// NewRecipeBook returns an empty RecipeBook.
func NewRecipeBook() *RecipeBook {
	return &RecipeBook{byURL: make(map[string]*Recipe)}
}

// Add inserts a recipe keyed by its URL.
// Returns false, leaving the book unchanged, if the URL is already present.
func (b *RecipeBook) Add(r *Recipe) bool {
	if _, ok := b.byURL[r.URL]; ok {
		return false
	}
	b.byURL[r.URL] = r
	b.order = append(b.order, r)
	return true
}

// Has reports whether a recipe with the given URL exists.
func (b *RecipeBook) Has(url string) bool {
	_, ok := b.byURL[url]
	return ok
}

// Get returns the recipe for url, or nil.
func (b *RecipeBook) Get(url string) *Recipe {
	return b.byURL[url]
}

// Len returns the number of recipes.
func (b *RecipeBook) Len() int {
	return len(b.order)
}

// Recipes returns the recipes in insertion order.
func (b *RecipeBook) Recipes() []*Recipe {
	out := make([]*Recipe, len(b.order))
	copy(out, b.order)
	return out
}

// URLs returns the recipe URLs in insertion order.
func (b *RecipeBook) URLs() []string {
	urls := make([]string, len(b.order))
	for i, r := range b.order {
		urls[i] = r.URL
	}
	return urls
}
