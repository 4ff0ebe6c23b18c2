package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/optipng/internal/config"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestLoader(env ...string) *Loader {
	return &Loader{environ: func() []string { return env }}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writePreset(t, `
optimization_level = 4
interlace          = 1
filters            = "0-2"
window_size        = 16384
strip              = "all"
preserve           = true
dir                = "${env.OUT_ROOT}/png"
`)
	loader := newTestLoader("OUT_ROOT=/srv/images", "MALFORMED")

	// --- Act ---
	preset, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 4, *preset.OptimizationLevel)
	require.Equal(t, 1, *preset.Interlace)
	require.Equal(t, "0-2", *preset.Filters)
	require.Equal(t, "16384", *preset.WindowSize, "numbers convert to the string form")
	require.Equal(t, "all", *preset.Strip)
	require.True(t, *preset.Preserve)
	require.Equal(t, "/srv/images/png", *preset.Dir)
	require.Nil(t, preset.Backup)
	require.Nil(t, preset.CompressionLevels)

	opts := config.NewOptions()
	require.NoError(t, preset.Apply(opts))
	require.Equal(t, 14, opts.WindowBits)
}

func TestLoader_EmptyEnvironment(t *testing.T) {
	t.Parallel()

	path := writePreset(t, "optimization_level = 1\n")

	preset, err := newTestLoader().Load(context.Background(), path)

	require.NoError(t, err)
	require.Equal(t, 1, *preset.OptimizationLevel)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Syntax error",
			content:  "optimization_level = = 3\n",
			expected: "failed to parse HCL preset",
		},
		{
			name:     "Unknown attribute",
			content:  "level = 3\n",
			expected: "failed to decode HCL preset",
		},
		{
			name:     "Wrong type",
			content:  "backup = \"maybe\"\n",
			expected: "failed to decode HCL preset",
		},
		{
			name:     "Undefined variable",
			content:  "dir = env.NOT_SET\n",
			expected: "failed to decode HCL preset",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writePreset(t, tc.content)

			_, err := newTestLoader("HOME=/root").Load(context.Background(), path)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expected)
		})
	}
}
