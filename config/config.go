// Package config holds recipecrawl run settings, their defaults and the
// optional YAML file that overrides them.
package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/fwojciec/recipecrawl"
)

// AppName is the application name used for XDG directory paths.
const AppName = "recipecrawl"

// Default configuration values.
const (
	DefaultStartURL        = "https://www.allrecipes.com/"
	DefaultAllowedDomain   = "allrecipes.com"
	DefaultUserAgent       = "Mozilla/5.0"
	DefaultFetchTimeout    = 10 * time.Second
	DefaultImageTimeout    = 5 * time.Second
	DefaultPolitenessDelay = 1 * time.Second

	DefaultOutputFileName = "allrecipes_data.txt"
	DefaultReportFileName = "report.md"
	DefaultGalleryDirName = "gallery"
	DefaultConfigFileName = "config.yaml"
)

// Config holds the settings for one crawl run.
type Config struct {
	// StartURLs seed the frontier in order.
	StartURLs []string `yaml:"start_urls"`

	// AllowedDomain must appear in a URL for it to count as a recipe.
	AllowedDomain string `yaml:"allowed_domain"`

	OutputFile string `yaml:"output_file"`
	ReportFile string `yaml:"report_file"`
	GalleryDir string `yaml:"gallery_dir"`

	UserAgent       string        `yaml:"user_agent"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"`
	ImageTimeout    time.Duration `yaml:"image_timeout"`
	PolitenessDelay time.Duration `yaml:"politeness_delay"`
}

// Default returns a Config populated with the default values.
// Output files live under the XDG data directory.
func Default() *Config {
	dataDir := XDGDataDir()
	return &Config{
		StartURLs:       []string{DefaultStartURL},
		AllowedDomain:   DefaultAllowedDomain,
		OutputFile:      filepath.Join(dataDir, DefaultOutputFileName),
		ReportFile:      filepath.Join(dataDir, DefaultReportFileName),
		GalleryDir:      filepath.Join(dataDir, DefaultGalleryDirName),
		UserAgent:       DefaultUserAgent,
		FetchTimeout:    DefaultFetchTimeout,
		ImageTimeout:    DefaultImageTimeout,
		PolitenessDelay: DefaultPolitenessDelay,
	}
}

// XDGDataDir returns the XDG data directory for recipecrawl.
// On Linux: ~/.local/share/recipecrawl
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for recipecrawl.
// On Linux: ~/.config/recipecrawl
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultConfigPath returns the path of the config file read when none is
// given explicitly.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigDir(), DefaultConfigFileName)
}

// Validate returns an EINVALID error describing the first invalid setting.
func (c *Config) Validate() error {
	if len(c.StartURLs) == 0 {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "at least one start URL is required")
	}
	for _, u := range c.StartURLs {
		if u == "" {
			return recipecrawl.Errorf(recipecrawl.EINVALID, "start URLs must not be empty")
		}
	}
	if c.AllowedDomain == "" {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "allowed domain is required")
	}
	if c.OutputFile == "" {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "output file is required")
	}
	if c.FetchTimeout <= 0 {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "fetch timeout must be positive")
	}
	if c.ImageTimeout <= 0 {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "image timeout must be positive")
	}
	if c.PolitenessDelay <= 0 {
		return recipecrawl.Errorf(recipecrawl.EINVALID, "politeness delay must be positive")
	}
	return nil
}
