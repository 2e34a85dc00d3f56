// Package crawl provides the breadth-first recipe crawl.
// It drives link discovery over a FIFO frontier, filters recipe URLs and
// extracts each newly found recipe page exactly once.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/recipecrawl"
	"github.com/fwojciec/recipecrawl/bloom"
)

// Visited-set configuration.
const (
	// visitedExpectedURLs is the expected number of crawled pages for Bloom filter sizing.
	visitedExpectedURLs = 10000
	// visitedFalsePositiveRate is the pre-filter false positive rate.
	visitedFalsePositiveRate = 0.01
)

// Crawler walks a recipe site breadth-first.
// A Crawler holds no per-run state; every call to Crawl starts from scratch.
type Crawler struct {
	Fetcher     recipecrawl.Fetcher
	Links       recipecrawl.LinkExtractor
	Extractor   recipecrawl.Extractor
	Filter      *recipecrawl.URLFilter
	RateLimiter recipecrawl.DomainLimiter
	Logger      *slog.Logger
}

// Result holds the outcome of a crawl.
type Result struct {
	Recipes *recipecrawl.RecipeBook

	// Visited is the number of pages crawled for links.
	Visited int

	// Failed is the number of pages whose links could not be fetched.
	Failed int

	// FalsePositives is the number of visited-set lookups the Bloom filter
	// matched but the exact set rejected.
	FalsePositives int
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Recipe    *recipecrawl.Recipe
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressCrawling ProgressType = iota
	ProgressRecipe
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl collects up to maxRecipes recipes starting from startURLs.
//
// The frontier is popped until it is empty or maxRecipes recipes have been
// collected. Fetch and parse failures never abort the crawl: a page whose
// links cannot be fetched contributes no links, and a recipe page that cannot
// be fetched is recorded with a placeholder title. Running out of pages before
// reaching maxRecipes is not an error.
//
// If ctx is canceled the crawl stops before the next page or link and returns
// the recipes collected so far together with the context error.
func (c *Crawler) Crawl(ctx context.Context, startURLs []string, maxRecipes int, progress ProgressFunc) (*Result, error) {
	if maxRecipes <= 0 {
		return nil, recipecrawl.Errorf(recipecrawl.EINVALID, "max recipes must be positive, got %d", maxRecipes)
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	logger := c.logger()

	frontier := NewFrontier(startURLs...)
	visited := bloom.NewVisitedSet(visitedExpectedURLs, visitedFalsePositiveRate)
	book := recipecrawl.NewRecipeBook()
	result := &Result{Recipes: book}

	for frontier.Len() > 0 && book.Len() < maxRecipes {
		if err := ctx.Err(); err != nil {
			tally(result, visited)
			return result, err
		}

		current, _ := frontier.Pop()
		if !visited.Visit(current) {
			continue
		}

		progress(ProgressEvent{Type: ProgressCrawling, URL: current, Completed: book.Len(), Total: maxRecipes})

		links, err := c.fetchLinks(ctx, current)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				tally(result, visited)
				return result, ctxErr
			}
			result.Failed++
			logger.Error("fetch links", "url", current, "err", err)
			progress(ProgressEvent{Type: ProgressFailed, URL: current, Error: err})
			continue
		}

		base, err := url.Parse(current)
		if err != nil {
			logger.Warn("unparsable page URL", "url", current, "err", err)
			continue
		}

		for _, href := range links {
			if err := ctx.Err(); err != nil {
				tally(result, visited)
				return result, err
			}
			full, ok := resolveURL(base, href)
			if !ok {
				continue
			}
			if !c.Filter.Match(full) || book.Has(full) {
				continue
			}

			recipe := c.extractRecipe(ctx, full)
			book.Add(recipe)
			progress(ProgressEvent{Type: ProgressRecipe, URL: full, Recipe: recipe, Completed: book.Len(), Total: maxRecipes})

			if book.Len() >= maxRecipes {
				break
			}
			frontier.Push(full)
		}
	}

	tally(result, visited)
	logger.Debug("crawl finished",
		"visited", result.Visited,
		"estimated", visited.EstimatedCount(),
		"false_positives", result.FalsePositives,
	)
	progress(ProgressEvent{Type: ProgressFinished, Completed: book.Len(), Total: maxRecipes})
	return result, nil
}

// fetchLinks waits out the politeness delay, fetches the page and returns the
// raw href of every anchor on it.
func (c *Crawler) fetchLinks(ctx context.Context, pageURL string) ([]string, error) {
	if err := c.RateLimiter.Wait(ctx, hostOf(pageURL)); err != nil {
		return nil, err
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	links, err := c.Links.ExtractLinks(html)
	if err != nil {
		return nil, fmt.Errorf("extracting links: %w", err)
	}
	return links, nil
}

// extractRecipe fetches a recipe page and extracts its content.
// Failures are folded into the returned record instead of an error.
func (c *Crawler) extractRecipe(ctx context.Context, pageURL string) *recipecrawl.Recipe {
	recipe := &recipecrawl.Recipe{
		URL:     pageURL,
		Content: []string{},
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if recipecrawl.ErrorCode(err) == recipecrawl.EUNAVAILABLE {
			recipe.Title = recipecrawl.UnknownTitle
		} else {
			recipe.Title = recipecrawl.FailedTitle(err)
		}
		c.logger().Warn("fetch recipe", "url", pageURL, "err", err)
		return recipe
	}

	extracted, err := c.Extractor.Extract(html, pageURL)
	if err != nil {
		recipe.Title = recipecrawl.FailedTitle(err)
		c.logger().Warn("extract recipe", "url", pageURL, "err", err)
		return recipe
	}

	recipe.Title = extracted.Title
	if extracted.Content != nil {
		recipe.Content = extracted.Content
	}
	recipe.ImageURL = extracted.ImageURL
	return recipe
}

// tally copies visited-set statistics into result.
func tally(result *Result, visited *bloom.VisitedSet) {
	result.Visited = visited.Len()
	result.FalsePositives = visited.FalsePositives()
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// resolveURL resolves href against the page it was found on.
// Fragments and query strings are kept so the filter can reject them.
func resolveURL(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}

// hostOf returns the host of rawURL, or rawURL itself if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
