package fs

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/recipecrawl"
)

// Ensure Gallery implements recipecrawl.ImageRenderer at compile time.
var _ recipecrawl.ImageRenderer = (*Gallery)(nil)

// Gallery implements recipecrawl.ImageRenderer by storing decoded images on
// disk. Images are saved to a temporary directory, then moved into place on
// Commit so an interrupted run keeps the previous gallery.
type Gallery struct {
	baseDir   string
	name      string
	captioner recipecrawl.Captioner

	mu      sync.Mutex
	entries []recipecrawl.GalleryEntry
}

// NewGallery creates a Gallery that stores images in dir.
// Files are saved to dir.tmp and moved to dir on Commit.
// captioner may be nil.
func NewGallery(dir string, captioner recipecrawl.Captioner) *Gallery {
	return &Gallery{
		baseDir:   filepath.Dir(dir),
		name:      filepath.Base(dir),
		captioner: captioner,
	}
}

func (g *Gallery) tempDir() string {
	return filepath.Join(g.baseDir, g.name+".tmp")
}

// Dir returns the final gallery directory.
func (g *Gallery) Dir() string {
	return filepath.Join(g.baseDir, g.name)
}

// ImageFileName returns the stored file name for an image URL and format.
func ImageFileName(url, format string) string {
	return fmt.Sprintf("%016x.%s", xxhash.Sum64String(url), format)
}

// RenderImage verifies that img decodes as an image and stores it.
func (g *Gallery) RenderImage(ctx context.Context, img *recipecrawl.RecipeImage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "cannot decode image %s: %v", img.URL, err)
	}

	if err := os.MkdirAll(g.tempDir(), 0755); err != nil {
		return err
	}

	name := ImageFileName(img.URL, format)
	if err := os.WriteFile(filepath.Join(g.tempDir(), name), img.Data, 0644); err != nil {
		return err
	}

	entry := recipecrawl.GalleryEntry{
		Title:  img.Title,
		URL:    img.URL,
		File:   name,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  len(img.Data),
	}
	if g.captioner != nil {
		// Missing metadata is common; the caption stays empty.
		if caption, err := g.captioner.Caption(img.Data); err == nil {
			entry.Caption = caption
		}
	}

	g.mu.Lock()
	g.entries = append(g.entries, entry)
	g.mu.Unlock()
	return nil
}

// Entries returns the stored images in render order.
func (g *Gallery) Entries() []recipecrawl.GalleryEntry {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]recipecrawl.GalleryEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Commit replaces the gallery directory with the images stored this run.
func (g *Gallery) Commit() error {
	if err := os.MkdirAll(g.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.RemoveAll(g.Dir()); err != nil {
		return err
	}

	return os.Rename(g.tempDir(), g.Dir())
}

// Abort discards the images stored this run.
func (g *Gallery) Abort() error {
	return os.RemoveAll(g.tempDir())
}
