package recipecrawl_test

import (
	"testing"

	"github.com/fwojciec/recipecrawl"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	filter := recipecrawl.NewURLFilter("allrecipes.com")

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"recipe page", "https://www.allrecipes.com/recipe/12345/thai-salad/", true},
		{"recipe page without trailing slash", "https://www.allrecipes.com/recipe/12345/thai-salad", true},
		{"query string", "https://www.allrecipes.com/recipe/12345/thai-salad/?print=1", false},
		{"fragment", "https://www.allrecipes.com/recipe/12345/thai-salad/#reviews", false},
		{"not a recipe path", "https://www.allrecipes.com/recipes/17562/dinner/", false},
		{"other domain", "https://www.example.com/recipe/12345/thai-salad/", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, filter.Match(tt.url))
		})
	}
}

func TestURLFilter_Match_treats_trailing_slash_variants_as_distinct_urls(t *testing.T) {
	t.Parallel()

	filter := recipecrawl.NewURLFilter("allrecipes.com")
	book := recipecrawl.NewRecipeBook()

	a := "https://www.allrecipes.com/recipe/1/soup/"
	b := "https://www.allrecipes.com/recipe/1/soup"

	assert.True(t, filter.Match(a))
	assert.True(t, filter.Match(b))
	assert.True(t, book.Add(&recipecrawl.Recipe{URL: a}))
	assert.True(t, book.Add(&recipecrawl.Recipe{URL: b}))
	assert.Equal(t, 2, book.Len())
}
