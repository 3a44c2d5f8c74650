package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const defaultFormat = "U+%04X"

// Config is the tool configuration
type Config struct {
	// Format is the fmt format applied to each rune, as an uint32.
	Format string `yaml:"format"`
	// NodeLimit caps the nodes each input's set may allocate.
	NodeLimit int `yaml:"node-limit"`
}

func defaultConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "prunes", "config.yml")
}

// readConfig loads the config at path, or at the default location when path is
// empty. A missing default config is not an error.
func readConfig(path string) (Config, error) {
	cfg := Config{Format: defaultFormat}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	cfgBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "failed to read %q", path)
	}
	if err := yaml.Unmarshal(cfgBytes, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %q", path)
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}
	if cfg.NodeLimit < 0 {
		return cfg, errors.Errorf("%q: node-limit must not be negative", path)
	}
	return cfg, nil
}
