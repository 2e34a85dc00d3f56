package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/recipecrawl"
	"gopkg.in/yaml.v3"
)

// Load returns the defaults overridden by the config file at path.
// An empty path reads DefaultConfigPath, which may be absent.
// An explicit path that does not exist is an ENOTFOUND error.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFile(DefaultConfigPath(), false)
	}
	return LoadFile(path, true)
}

// LoadFile returns the defaults overridden by the YAML file at path.
// When required is false a missing file yields the defaults.
func LoadFile(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if required {
				return nil, recipecrawl.Errorf(recipecrawl.ENOTFOUND, "config file not found: %s", path)
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := Decode(bytes.NewReader(data), cfg); err != nil {
		return nil, recipecrawl.Errorf(recipecrawl.EINVALID, "parsing %s: %v", path, err)
	}
	return cfg, nil
}

// Decode applies the YAML document in r on top of cfg. Unknown keys are
// rejected. An empty document leaves cfg unchanged.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
