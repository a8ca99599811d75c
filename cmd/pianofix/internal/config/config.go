// Package config loads the optional run configuration for the pianofix CLI.
//
// The configuration is a single YAML file selecting where artifacts go and
// which songs are generated. It never changes synthesis parameters — the
// sample rate, tempo multipliers and harmonic tables are compiled in.
//
// Example:
//
//	out_dir: target_music
//	manifest: available_tests.json
//	songs:
//	  - fur_elise
//	  - ode_to_joy
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Defaults for an empty or missing configuration.
const (
	DefaultOutDir   = "target_music"
	DefaultManifest = "available_tests.json"
)

// Config holds the run configuration.
type Config struct {
	// OutDir is the directory WAV clips and the manifest are written to.
	OutDir string `yaml:"out_dir,omitempty"`

	// Manifest is the manifest filename, relative to OutDir.
	Manifest string `yaml:"manifest,omitempty"`

	// Songs restricts generation to the listed song IDs. Empty means the
	// whole catalog.
	Songs []string `yaml:"songs,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutDir:   DefaultOutDir,
		Manifest: DefaultManifest,
	}
}

// Load reads the configuration from path. An empty path or a missing file
// yields the defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	if cfg.Manifest == "" {
		cfg.Manifest = DefaultManifest
	}
	return cfg, nil
}
