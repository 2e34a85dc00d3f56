package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/recipecrawl"
	"github.com/fwojciec/recipecrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, []string{"https://www.allrecipes.com/"}, cfg.StartURLs)
	assert.Equal(t, "allrecipes.com", cfg.AllowedDomain)
	assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 5*time.Second, cfg.ImageTimeout)
	assert.Equal(t, time.Second, cfg.PolitenessDelay)
	assert.Equal(t, "allrecipes_data.txt", filepath.Base(cfg.OutputFile))
	assert.Equal(t, config.XDGDataDir(), filepath.Dir(cfg.OutputFile))
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{"no start URLs", func(c *config.Config) { c.StartURLs = nil }, "start URL"},
		{"empty start URL", func(c *config.Config) { c.StartURLs = []string{""} }, "start URLs"},
		{"no domain", func(c *config.Config) { c.AllowedDomain = "" }, "domain"},
		{"no output file", func(c *config.Config) { c.OutputFile = "" }, "output file"},
		{"zero fetch timeout", func(c *config.Config) { c.FetchTimeout = 0 }, "fetch timeout"},
		{"negative image timeout", func(c *config.Config) { c.ImageTimeout = -time.Second }, "image timeout"},
		{"zero delay", func(c *config.Config) { c.PolitenessDelay = 0 }, "politeness delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, recipecrawl.EINVALID, recipecrawl.ErrorCode(err))
			assert.Contains(t, recipecrawl.ErrorMessage(err), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults from yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
start_urls:
  - https://www.allrecipes.com/recipes/78/breakfast-and-brunch/
  - https://www.allrecipes.com/recipes/17562/dinner/
output_file: /tmp/recipes.txt
politeness_delay: 2s
`), 0644))

		cfg, err := config.LoadFile(path, true)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://www.allrecipes.com/recipes/78/breakfast-and-brunch/",
			"https://www.allrecipes.com/recipes/17562/dinner/",
		}, cfg.StartURLs)
		assert.Equal(t, "/tmp/recipes.txt", cfg.OutputFile)
		assert.Equal(t, 2*time.Second, cfg.PolitenessDelay)
		assert.Equal(t, "allrecipes.com", cfg.AllowedDomain)
		assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	})

	t.Run("missing optional file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), false)

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("missing required file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), true)

		require.Error(t, err)
		assert.Equal(t, recipecrawl.ENOTFOUND, recipecrawl.ErrorCode(err))
	})

	t.Run("unknown keys are invalid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_recipes: 5\n"), 0644))

		_, err := config.LoadFile(path, true)

		require.Error(t, err)
		assert.Equal(t, recipecrawl.EINVALID, recipecrawl.ErrorCode(err))
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := config.LoadFile(path, true)

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	err := config.Decode(strings.NewReader("user_agent: recipe-bot/1.0\nimage_timeout: 3s\n"), cfg)

	require.NoError(t, err)
	assert.Equal(t, "recipe-bot/1.0", cfg.UserAgent)
	assert.Equal(t, 3*time.Second, cfg.ImageTimeout)
}
