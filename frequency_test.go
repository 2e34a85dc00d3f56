package recipecrawl_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/recipecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookWithTitles(titles ...string) *recipecrawl.RecipeBook {
	book := recipecrawl.NewRecipeBook()
	for i, title := range titles {
		book.Add(&recipecrawl.Recipe{
			URL:   fmt.Sprintf("https://example.com/recipe/%d/", i),
			Title: title,
		})
	}
	return book
}

func TestTitleFrequencies(t *testing.T) {
	t.Parallel()

	t.Run("orders by count then first appearance", func(t *testing.T) {
		t.Parallel()

		book := bookWithTitles("Soup", "Salad", "Stew", "Salad", "Stew", "Pie")

		counts := recipecrawl.TitleFrequencies(book, recipecrawl.TopTitleCount)

		assert.Equal(t, []recipecrawl.TitleCount{
			{Title: "Salad", Count: 2},
			{Title: "Stew", Count: 2},
			{Title: "Soup", Count: 1},
			{Title: "Pie", Count: 1},
		}, counts)
	})

	t.Run("limits to n titles", func(t *testing.T) {
		t.Parallel()

		var titles []string
		for i := 0; i < 20; i++ {
			titles = append(titles, fmt.Sprintf("Recipe %d", i))
		}

		counts := recipecrawl.TitleFrequencies(bookWithTitles(titles...), recipecrawl.TopTitleCount)

		require.Len(t, counts, 15)
		assert.Equal(t, "Recipe 0", counts[0].Title)
		assert.Equal(t, "Recipe 14", counts[14].Title)
	})

	t.Run("empty book yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, recipecrawl.TitleFrequencies(recipecrawl.NewRecipeBook(), 15))
	})
}
