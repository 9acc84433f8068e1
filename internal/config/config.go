// Package config loads the project-level scanner configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file looked up in the project root.
const DefaultFile = ".i18nscan.toml"

// Config holds the scanner configuration.
type Config struct {
	Src       string      `toml:"src"`       // source dir, relative to project root
	Locales   string      `toml:"locales"`   // locale dir, relative to project root
	Languages []string    `toml:"languages"` // language codes with <code>.json locale files
	Watch     WatchConfig `toml:"watch"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	Debounce string `toml:"debounce"` // debounce duration (e.g. "2s")
}

// DebounceDuration returns the parsed debounce duration (default: 2s).
func (w WatchConfig) DebounceDuration() time.Duration {
	if w.Debounce != "" {
		if d, err := time.ParseDuration(w.Debounce); err == nil {
			return d
		}
	}
	return 2 * time.Second
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Src:       "src",
		Locales:   filepath.Join("app", "i18n", "locales"),
		Languages: []string{"ru", "en", "kk", "fr"},
		Watch:     WatchConfig{Debounce: "2s"},
	}
}

// Load reads the config file at path. A missing file yields the
// defaults. Decoding starts from defaults so keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return Config{}, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(cfg.Languages) == 0 {
		cfg.Languages = Default().Languages
	}
	return cfg, nil
}

// LoadProject loads root/.i18nscan.toml, or the defaults when the
// project has no config file.
func LoadProject(root string) (Config, error) {
	return Load(filepath.Join(root, DefaultFile))
}
