package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/optipng/internal/config"
	"github.com/vk/optipng/internal/ctxlog"
	"github.com/vk/optipng/internal/hcl"
)

// loaderFor picks the preset loader matching the file extension of path.
func loaderFor(path string) (config.Loader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".toml":
		return config.NewTOMLLoader(), nil
	case ".yaml", ".yml":
		return config.NewYAMLLoader(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want .hcl, .toml, .yaml or .yml)", ErrUnsupportedPreset, path)
	}
}

// applyPreset loads the preset at path and merges it into opts.
func applyPreset(ctx context.Context, path string, opts *config.Options) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading preset...", "path", path)

	loader, err := loaderFor(path)
	if err != nil {
		return err
	}
	preset, err := loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load preset: %w", err)
	}
	if err := preset.Apply(opts); err != nil {
		return fmt.Errorf("failed to apply preset %s: %w", path, err)
	}

	logger.Info("Preset applied.", "path", path)
	return nil
}
