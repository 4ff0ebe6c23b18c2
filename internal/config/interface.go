package config

import "context"

// Loader is the interface for a format-specific preset loader.
type Loader interface {
	// Load reads the preset file at path. Values are returned as written;
	// validation happens when the preset is applied.
	Load(ctx context.Context, path string) (*Preset, error)
}
