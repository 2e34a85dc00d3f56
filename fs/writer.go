// Package fs provides file-based storage for crawl results and recipe images.
package fs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/recipecrawl"
)

// RecordSeparatorWidth is the width of the rule closing each saved recipe.
const RecordSeparatorWidth = 50

// WriteRecipes writes every recipe in book to w in insertion order.
//
// Each record is the title, the URL, a blank line, one content line per
// line, a blank line and a rule of '=' characters followed by a blank line.
func WriteRecipes(w io.Writer, book *recipecrawl.RecipeBook) error {
	bw := bufio.NewWriter(w)
	rule := recipecrawl.Separator(RecordSeparatorWidth)
	for _, r := range book.Recipes() {
		bw.WriteString(r.Title)
		bw.WriteString("\n")
		bw.WriteString(r.URL)
		bw.WriteString("\n\n")
		for _, line := range r.Content {
			bw.WriteString(line)
			bw.WriteString("\n")
		}
		bw.WriteString("\n")
		bw.WriteString(rule)
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}

// SaveRecipes writes book to path, replacing any existing file.
// The parent directory is created if needed. The file is written to a
// temporary sibling first and renamed into place, so a failed save never
// leaves a truncated results file behind.
func SaveRecipes(book *recipecrawl.RecipeBook, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := WriteRecipes(tmp, book); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
