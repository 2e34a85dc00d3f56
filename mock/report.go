package mock

import (
	"context"

	"github.com/fwojciec/recipecrawl"
)

var _ recipecrawl.ChartRenderer = (*ChartRenderer)(nil)

// ChartRenderer is a mock implementation of recipecrawl.ChartRenderer.
type ChartRenderer struct {
	RenderChartFn func(title string, counts []recipecrawl.TitleCount) error
}

func (r *ChartRenderer) RenderChart(title string, counts []recipecrawl.TitleCount) error {
	return r.RenderChartFn(title, counts)
}

var _ recipecrawl.ImageRenderer = (*ImageRenderer)(nil)

// ImageRenderer is a mock implementation of recipecrawl.ImageRenderer.
type ImageRenderer struct {
	RenderImageFn func(ctx context.Context, img *recipecrawl.RecipeImage) error
}

func (r *ImageRenderer) RenderImage(ctx context.Context, img *recipecrawl.RecipeImage) error {
	return r.RenderImageFn(ctx, img)
}

var _ recipecrawl.Captioner = (*Captioner)(nil)

// Captioner is a mock implementation of recipecrawl.Captioner.
type Captioner struct {
	CaptionFn func(data []byte) (string, error)
}

func (c *Captioner) Caption(data []byte) (string, error) {
	return c.CaptionFn(data)
}
