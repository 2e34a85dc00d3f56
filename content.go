package recipecrawl

import "strings"

// NoHeading is the section label in effect before the first h2 is seen.
const NoHeading = "No Heading"

// Paragraph is a block of recipe text together with the nearest heading
// that precedes it in the document.
type Paragraph struct {
	// Heading is the text of the nearest preceding h2.
	// It is only meaningful when HasHeading is true.
	Heading    string
	HasHeading bool
	Text       string
}

// HeadingMarker returns the content line announcing a new section.
func HeadingMarker(heading string) string {
	return "=== " + heading + " ==="
}

// BuildContent flattens paragraphs into recipe content lines.
//
// A section marker is emitted whenever a paragraph's heading differs from the
// current one. Paragraphs without a preceding heading keep the current section
// and emit no marker. Each non-empty paragraph contributes its sentences
// followed by one blank line.
func BuildContent(paragraphs []Paragraph) []string {
	lines := []string{}
	current := NoHeading

	for _, p := range paragraphs {
		if p.HasHeading && p.Heading != current {
			current = p.Heading
			lines = append(lines, HeadingMarker(current))
		}

		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		lines = append(lines, SplitSentences(text)...)
		lines = append(lines, "")
	}

	return lines
}

// SplitSentences splits text on every period, trims each fragment, drops
// empty fragments and re-appends a period to each remaining one.
//
// The split is lossy: decimals ("1.5 cups") and abbreviations ("tsp.") are
// broken apart.
func SplitSentences(text string) []string {
	var sentences []string
	for _, fragment := range strings.Split(text, ".") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		sentences = append(sentences, fragment+".")
	}
	return sentences
}
