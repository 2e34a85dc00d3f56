package recipecrawl

import (
	"context"
	"time"
)

// ChartRenderer draws the title frequency chart.
type ChartRenderer interface {
	RenderChart(title string, counts []TitleCount) error
}

// RecipeImage is a downloaded recipe image ready to be rendered.
type RecipeImage struct {
	Title string
	URL   string
	Data  []byte
}

// ImageRenderer renders a single recipe image.
type ImageRenderer interface {
	// RenderImage displays or stores the image labeled with its title.
	// Undecodable data returns an error; the caller moves on to the next image.
	RenderImage(ctx context.Context, img *RecipeImage) error
}

// Captioner describes an image from metadata embedded in its bytes.
type Captioner interface {
	// Caption returns a short description, or "" when the image carries none.
	Caption(data []byte) (string, error)
}

// GalleryEntry records one stored recipe image.
type GalleryEntry struct {
	Title   string
	URL     string
	File    string // path relative to the gallery directory
	Format  string
	Width   int
	Height  int
	Bytes   int
	Caption string
}

// Report is the summary of a crawl run written to the markdown report.
type Report struct {
	RunID      string
	StartedAt  time.Time
	Duration   time.Duration
	OutputFile string
	Visited    int
	Failed     int
	// FalsePositives counts visited-filter hits rejected by the exact set.
	FalsePositives int
	Recipes        *RecipeBook
	Frequencies    []TitleCount
	GalleryDir     string
	Gallery        []GalleryEntry
}
