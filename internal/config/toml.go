package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vk/optipng/internal/ctxlog"
)

// TOMLLoader reads presets written in TOML.
type TOMLLoader struct{}

// NewTOMLLoader creates a new TOML preset loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Load decodes the file at path. Keys the Preset does not know are rejected.
func (l *TOMLLoader) Load(ctx context.Context, path string) (*Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML preset loader started.", "path", path)

	var preset Preset
	meta, err := toml.DecodeFile(path, &preset)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML preset %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("%w: %s: unknown keys: %s", ErrInvalidPreset, path, strings.Join(keys, ", "))
	}

	logger.Debug("TOML preset decoded.", "path", path, "keys", len(meta.Keys()))
	return &preset, nil
}
