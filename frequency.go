package recipecrawl

import "sort"

// TopTitleCount is how many titles the frequency chart shows.
const TopTitleCount = 15

// TitleCount is the number of recipes sharing a title.
type TitleCount struct {
	Title string
	Count int
}

// TitleFrequencies counts recipe titles and returns at most n of them,
// most frequent first. Ties keep the order in which titles were first seen.
func TitleFrequencies(book *RecipeBook, n int) []TitleCount {
	if book == nil || n <= 0 {
		return nil
	}

	index := make(map[string]int)
	var counts []TitleCount
	for _, r := range book.Recipes() {
		if i, ok := index[r.Title]; ok {
			counts[i].Count++
			continue
		}
		index[r.Title] = len(counts)
		counts = append(counts, TitleCount{Title: r.Title, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
