package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/recipecrawl"
	"github.com/fwojciec/recipecrawl/config"
	"github.com/fwojciec/recipecrawl/crawl"
	"github.com/fwojciec/recipecrawl/exif"
	"github.com/fwojciec/recipecrawl/fs"
	"github.com/fwojciec/recipecrawl/goquery"
	recipehttp "github.com/fwojciec/recipecrawl/http"
	"github.com/fwojciec/recipecrawl/lipgloss"
	"github.com/fwojciec/recipecrawl/report"
	"github.com/fwojciec/recipecrawl/rod"
	recipeslog "github.com/fwojciec/recipecrawl/slog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides the config file when set. Used by tests.
	Config *config.Config

	// Services for end-to-end testing. Built from Config when nil.
	Fetcher    recipecrawl.Fetcher
	Downloader recipecrawl.Downloader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipecrawl"),
		kong.Description("Crawl allrecipes.com breadth-first and save the recipes found"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if slices.ContainsFunc(args, func(a string) bool { return a == "--help" || a == "-h" || a == "help" }) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if cli.Max < 0 {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "--max must be positive, got %d", cli.Max)
	}

	cfg := m.Config
	if cfg == nil {
		cfg, err = config.Load(cli.Config)
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := newLogger(stderr, cli.Verbose).With("run", runID)

	fetcher := m.Fetcher
	if fetcher == nil {
		if cli.Browser {
			rodFetcher, err := rod.NewFetcher(
				rod.WithFetchTimeout(cfg.FetchTimeout),
				rod.WithUserAgent(cfg.UserAgent),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			logger.Debug("browser launched", "pid", rodFetcher.LauncherPID())
			fetcher = rodFetcher
		} else {
			fetcher = recipehttp.NewFetcher(
				recipehttp.WithTimeout(cfg.FetchTimeout),
				recipehttp.WithUserAgent(cfg.UserAgent),
			)
		}
	}
	fetcher = recipeslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	downloader := m.Downloader
	if downloader == nil {
		imageFetcher := recipehttp.NewFetcher(
			recipehttp.WithTimeout(cfg.ImageTimeout),
			recipehttp.WithUserAgent(cfg.UserAgent),
		)
		defer imageFetcher.Close()
		downloader = imageFetcher
	}

	gallery := fs.NewGallery(cfg.GalleryDir, exif.NewCaptioner())

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: logger,
		RunID:  runID,
		Crawler: &crawl.Crawler{
			Fetcher:     fetcher,
			Links:       goquery.NewLinkExtractor(),
			Extractor:   recipeslog.NewLoggingExtractor(goquery.NewRecipeExtractor(), logger),
			Filter:      recipecrawl.NewURLFilter(cfg.AllowedDomain),
			RateLimiter: crawl.NewFixedDelay(cfg.PolitenessDelay),
			Logger:      logger,
		},
		Reporter: &report.Reporter{
			Downloader: recipeslog.NewLoggingDownloader(downloader, logger),
			Chart:      lipgloss.NewBarChart(stdout),
			Images:     gallery,
			Logger:     logger,
		},
		Gallery: gallery,
	}

	cmd := &CrawlCmd{
		Max:      cli.Max,
		NoChart:  cli.NoChart,
		NoImages: cli.NoImages,
	}
	return cmd.Run(deps)
}

// newLogger returns a logger writing human-readable records to w.
// Verbose enables per-request debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "recipecrawl",
	})
	return slog.New(handler)
}
