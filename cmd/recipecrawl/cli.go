package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/recipecrawl"
	"github.com/fwojciec/recipecrawl/config"
	"github.com/fwojciec/recipecrawl/crawl"
	"github.com/fwojciec/recipecrawl/fs"
	"github.com/fwojciec/recipecrawl/markdown"
	"github.com/fwojciec/recipecrawl/report"
)

// consoleRuleWidth is the width of the rule printed after each recipe.
const consoleRuleWidth = 80

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `short:"c" type:"path" help:"YAML config file (default: $XDG_CONFIG_HOME/recipecrawl/config.yaml)"`
	Max      int    `short:"n" help:"Number of recipes to crawl; prompts when unset"`
	Browser  bool   `short:"b" help:"Render pages in headless Chrome"`
	NoChart  bool   `help:"Skip the title frequency chart"`
	NoImages bool   `help:"Skip downloading recipe images"`
	Verbose  bool   `short:"v" help:"Log every request"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Config *config.Config
	Logger *slog.Logger
	RunID  string

	Crawler  *crawl.Crawler
	Reporter *report.Reporter
	Gallery  *fs.Gallery
}

// CrawlCmd runs one crawl and reports on it.
type CrawlCmd struct {
	Max      int
	NoChart  bool
	NoImages bool
}

// Run crawls, saves the results and renders the chart, images and report.
// Results are saved even when the crawl is interrupted.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	logger := deps.Logger

	maxRecipes := c.Max
	if maxRecipes <= 0 {
		n, err := PromptMaxRecipes(deps.Stdin, deps.Stdout)
		if err != nil {
			return err
		}
		maxRecipes = n
	}

	started := time.Now()
	result, crawlErr := deps.Crawler.Crawl(deps.Ctx, cfg.StartURLs, maxRecipes, printProgress(deps.Stdout, deps.Stderr))
	if result == nil {
		return crawlErr
	}
	if crawlErr != nil {
		logger.Warn("crawl interrupted, saving partial results", "recipes", result.Recipes.Len(), "err", crawlErr)
	}

	book := result.Recipes
	if err := fs.SaveRecipes(book, cfg.OutputFile); err != nil {
		return fmt.Errorf("saving recipes: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "\nSaved %d recipes to %s\n\n", book.Len(), cfg.OutputFile)

	if crawlErr != nil {
		return fmt.Errorf("crawl interrupted: %w", crawlErr)
	}

	rep := &recipecrawl.Report{
		RunID:          deps.RunID,
		StartedAt:      started,
		Duration:       time.Since(started),
		OutputFile:     cfg.OutputFile,
		Visited:        result.Visited,
		Failed:         result.Failed,
		FalsePositives: result.FalsePositives,
		Recipes:        book,
		GalleryDir:     cfg.GalleryDir,
	}

	if c.NoChart {
		rep.Frequencies = recipecrawl.TitleFrequencies(book, recipecrawl.TopTitleCount)
	} else {
		counts, err := deps.Reporter.RenderFrequencyChart(book)
		if err != nil {
			logger.Error("frequency chart", "err", err)
		}
		rep.Frequencies = counts
		fmt.Fprintln(deps.Stdout)
	}

	if !c.NoImages {
		c.renderImages(deps, book, rep)
	}

	if cfg.ReportFile != "" {
		if err := markdown.SaveReport(rep, cfg.ReportFile); err != nil {
			logger.Error("write report", "path", cfg.ReportFile, "err", err)
		} else {
			fmt.Fprintf(deps.Stdout, "Wrote report to %s\n", cfg.ReportFile)
		}
	}

	return nil
}

func (c *CrawlCmd) renderImages(deps *Dependencies, book *recipecrawl.RecipeBook, rep *recipecrawl.Report) {
	logger := deps.Logger

	fmt.Fprintf(deps.Stdout, "Displaying All Recipe Images...\n\n")
	n, err := deps.Reporter.RenderImages(deps.Ctx, book)
	if err != nil {
		logger.Warn("image rendering interrupted", "err", err)
		if abortErr := deps.Gallery.Abort(); abortErr != nil {
			logger.Error("discard gallery", "err", abortErr)
		}
		return
	}

	if err := deps.Gallery.Commit(); err != nil {
		logger.Error("save gallery", "dir", deps.Gallery.Dir(), "err", err)
		return
	}
	rep.Gallery = deps.Gallery.Entries()
	fmt.Fprintf(deps.Stdout, "Saved %d images to %s\n", n, deps.Gallery.Dir())
}

// printProgress echoes crawl progress to the console.
func printProgress(stdout, stderr io.Writer) crawl.ProgressFunc {
	rule := recipecrawl.Separator(consoleRuleWidth)
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCrawling:
			fmt.Fprintf(stdout, "\nCrawling: %s\n", event.URL)
		case crawl.ProgressRecipe:
			r := event.Recipe
			fmt.Fprintf(stdout, "\n%s - %s\n\n", r.Title, r.URL)
			for _, line := range r.Content {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintf(stdout, "\n%s\n\n", rule)
		case crawl.ProgressFailed:
			if !errors.Is(event.Error, context.Canceled) {
				fmt.Fprintf(stderr, "Error fetching %s: %v\n", event.URL, event.Error)
			}
		}
	}
}
