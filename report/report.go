// Package report renders the title frequency chart and recipe images for a
// finished crawl.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/recipecrawl"
)

// ChartTitle heads the title frequency chart.
var ChartTitle = fmt.Sprintf("Top %d Most Common Recipe Titles", recipecrawl.TopTitleCount)

// Reporter hands crawl results to chart and image renderers.
type Reporter struct {
	Downloader recipecrawl.Downloader
	Chart      recipecrawl.ChartRenderer
	Images     recipecrawl.ImageRenderer
	Logger     *slog.Logger
}

// RenderFrequencyChart renders the most common titles in book.
// An empty book renders nothing.
func (r *Reporter) RenderFrequencyChart(book *recipecrawl.RecipeBook) ([]recipecrawl.TitleCount, error) {
	counts := recipecrawl.TitleFrequencies(book, recipecrawl.TopTitleCount)
	if len(counts) == 0 {
		return counts, nil
	}
	if err := r.Chart.RenderChart(ChartTitle, counts); err != nil {
		return counts, fmt.Errorf("rendering chart: %w", err)
	}
	return counts, nil
}

// RenderImages downloads and renders the image of every recipe that has one,
// in insertion order. A failed image is logged and skipped. It returns the
// number of images rendered; the only error is context cancellation.
func (r *Reporter) RenderImages(ctx context.Context, book *recipecrawl.RecipeBook) (int, error) {
	logger := r.logger()
	rendered := 0
	for _, recipe := range book.Recipes() {
		if !recipe.HasImage() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return rendered, err
		}

		if err := r.renderImage(ctx, recipe); err != nil {
			if ctx.Err() != nil {
				return rendered, ctx.Err()
			}
			logger.Warn("could not load image",
				"title", recipe.Title,
				"url", recipe.ImageURL,
				"err", err,
			)
			continue
		}
		rendered++
	}
	return rendered, nil
}

func (r *Reporter) renderImage(ctx context.Context, recipe *recipecrawl.Recipe) error {
	data, err := r.Downloader.Download(ctx, recipe.ImageURL)
	if err != nil {
		return err
	}
	return r.Images.RenderImage(ctx, &recipecrawl.RecipeImage{
		Title: recipe.Title,
		URL:   recipe.ImageURL,
		Data:  data,
	})
}

func (r *Reporter) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
