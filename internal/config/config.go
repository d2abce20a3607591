package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds editor-session defaults shared by the CLI commands.
type Config struct {
	// SkipSeconds is the step used by skip forward/backward controls.
	SkipSeconds float64 `yaml:"skip_seconds"`

	// DefaultCaptionSeconds is the length given to a new caption
	// chained after the previous one.
	DefaultCaptionSeconds float64 `yaml:"default_caption_seconds"`

	// ReadingWordsPerSecond is the assumed reading speed used to warn
	// about captions shown for less time than they take to read.
	ReadingWordsPerSecond float64 `yaml:"reading_words_per_second"`
}

// Default returns the built-in session defaults.
func Default() *Config {
	return &Config{
		SkipSeconds:           5,
		DefaultCaptionSeconds: 3,
		ReadingWordsPerSecond: 2.5,
	}
}

// Load reads a YAML config file, filling missing fields from the
// defaults. A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.SkipSeconds <= 0 {
		cfg.SkipSeconds = Default().SkipSeconds
	}
	if cfg.DefaultCaptionSeconds <= 0 {
		cfg.DefaultCaptionSeconds = Default().DefaultCaptionSeconds
	}
	if cfg.ReadingWordsPerSecond <= 0 {
		cfg.ReadingWordsPerSecond = Default().ReadingWordsPerSecond
	}

	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
