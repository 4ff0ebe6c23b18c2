package app

import (
	"errors"

	"github.com/vk/optipng/internal/config"
	"github.com/vk/optipng/internal/engine"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Options *config.Options // populated by the command-line parser
	Files   []string        // file operands, in command-line order

	PresetPath string // optional preset file, chosen by extension
	LogFormat  string // "text" (default) or "json"

	Engine engine.Engine // nil selects engine.PNGEngine
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Options == nil {
		return nil, errors.New("Options is a required configuration field and cannot be nil")
	}
	if len(cfg.Files) == 0 {
		return nil, errors.New("at least one file operand is required")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, errors.New("LogFormat must be \"text\" or \"json\"")
	}
	return &cfg, nil
}
