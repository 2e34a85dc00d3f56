package goquery_test

import (
	"testing"

	"github.com/fwojciec/recipecrawl"
	"github.com/fwojciec/recipecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://www.allrecipes.com/recipe/12345/thai-salad/"

func TestRecipeExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("implements recipecrawl.Extractor interface", func(t *testing.T) {
		t.Parallel()
		var _ recipecrawl.Extractor = goquery.NewRecipeExtractor()
	})

	t.Run("extracts title sections and image", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<h1>
	Thai Salad
</h1>
<img class="logo" src="/logo.png">
<div class="image-container">
	<img class="image-container__image primary" src="https://images.example.com/thai-salad.jpg">
</div>
<h2>Intro</h2>
<p>A.B. C</p>
<h2>Directions</h2>
<div><p>Chop the vegetables. Toss with dressing.</p></div>
<p>Serve cold</p>
</body>
</html>`

		got, err := goquery.NewRecipeExtractor().Extract(html, pageURL)

		require.NoError(t, err)
		assert.Equal(t, "Thai Salad", got.Title)
		assert.Equal(t, []string{
			"=== Intro ===",
			"A.", "B.", "C.",
			"",
			"=== Directions ===",
			"Chop the vegetables.", "Toss with dressing.",
			"",
			"Serve cold.",
			"",
		}, got.Content)
		assert.Equal(t, "https://images.example.com/thai-salad.jpg", got.ImageURL)
	})

	t.Run("uses fallback title when there is no h1", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewRecipeExtractor().Extract(`<p>Just text</p>`, pageURL)

		require.NoError(t, err)
		assert.Equal(t, recipecrawl.FallbackTitle, got.Title)
		assert.Equal(t, []string{"Just text.", ""}, got.Content)
		assert.Empty(t, got.ImageURL)
	})

	t.Run("uses first h1 only", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewRecipeExtractor().Extract(`<h1>First</h1><h1>Second</h1>`, pageURL)

		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
	})

	t.Run("pairs paragraph with nearest preceding h2 across nesting", func(t *testing.T) {
		t.Parallel()

		html := `<section><h2>Ingredients</h2></section>
<article><div><p>Two eggs</p></div></article>`

		got, err := goquery.NewRecipeExtractor().Extract(html, pageURL)

		require.NoError(t, err)
		assert.Equal(t, []string{"=== Ingredients ===", "Two eggs.", ""}, got.Content)
	})

	t.Run("prefers rec-photo over generic images", func(t *testing.T) {
		t.Parallel()

		html := `<img src="/banner.png"><img class="rec-photo" src="/photos/salad.jpg">`

		got, err := goquery.NewRecipeExtractor().Extract(html, pageURL)

		require.NoError(t, err)
		assert.Equal(t, "https://www.allrecipes.com/photos/salad.jpg", got.ImageURL)
	})

	t.Run("falls back to first image with src", func(t *testing.T) {
		t.Parallel()

		html := `<img alt="no source"><img src="//cdn.example.com/a.png"><img src="/b.png">`

		got, err := goquery.NewRecipeExtractor().Extract(html, pageURL)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.png", got.ImageURL)
	})

	t.Run("class match without src yields no image", func(t *testing.T) {
		t.Parallel()

		html := `<img class="image-container__image" data-src="/lazy.jpg"><img src="/other.png">`

		got, err := goquery.NewRecipeExtractor().Extract(html, pageURL)

		require.NoError(t, err)
		assert.Empty(t, got.ImageURL)
	})
}
