package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/optipng/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads presets written in YAML.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML preset loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load decodes the file at path. An empty document is an empty preset;
// unknown keys are rejected.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML preset loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML preset: %w", err)
	}
	defer f.Close()

	var preset Preset
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&preset); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML preset %s: %w", path, err)
	}

	logger.Debug("YAML preset decoded.", "path", path)
	return &preset, nil
}
