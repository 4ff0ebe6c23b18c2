package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/optipng/internal/optarg"
	"github.com/vk/optipng/internal/rangeset"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPreset_Apply(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		preset    Preset
		before    func(o *Options)
		expected  func(o *Options)
		expectErr error
	}{
		{
			name: "Fills every unset option",
			preset: Preset{
				OptimizationLevel: ptr(5),
				Interlace:         ptr(0),
				Filters:           ptr("0,5"),
				CompressionLevels: ptr("9"),
				MemoryLevels:      ptr("8-"),
				Strategies:        ptr("0-3"),
				WindowSize:        ptr("32k"),
				Strip:             ptr("ALL"),
				Backup:            ptr(true),
				Preserve:          ptr(true),
				Clobber:           ptr(true),
				Dir:               ptr("out"),
			},
			expected: func(o *Options) {
				o.OptimLevel = 5
				o.Interlace = 0
				o.Filters = rangeset.Range(0, 0) | rangeset.Range(5, 5)
				o.CompressionLevels = rangeset.Range(9, 9)
				o.MemoryLevels = rangeset.Range(8, 9)
				o.Strategies = rangeset.Range(0, 3)
				o.WindowBits = 15
				o.StripAll = true
				o.Backup = true
				o.Preserve = true
				o.Clobber = true
				o.Dir = "out"
			},
		},
		{
			name: "Command line values win",
			preset: Preset{
				OptimizationLevel: ptr(5),
				Filters:           ptr("0"),
				WindowSize:        ptr("32k"),
				Dir:               ptr("preset-dir"),
			},
			before: func(o *Options) {
				o.OptimLevel = 1
				o.Filters = rangeset.Range(3, 3)
				o.WindowBits = 9
				o.Dir = "cli-dir"
			},
			expected: func(o *Options) {
				o.OptimLevel = 1
				o.Filters = rangeset.Range(3, 3)
				o.WindowBits = 9
				o.Dir = "cli-dir"
			},
		},
		{
			name:   "Directory ignored when an output file is named",
			preset: Preset{Dir: ptr("preset-dir")},
			before: func(o *Options) {
				o.OutFile = "result.png"
			},
			expected: func(o *Options) {
				o.OutFile = "result.png"
			},
		},
		{
			name:   "False switches leave the record alone",
			preset: Preset{Backup: ptr(false), Preserve: ptr(false)},
			before: func(o *Options) {
				o.Preserve = true
			},
			expected: func(o *Options) {
				o.Preserve = true
			},
		},
		{
			name:      "Optimization level out of bounds",
			preset:    Preset{OptimizationLevel: ptr(8)},
			expectErr: optarg.ErrRange,
		},
		{
			name:      "Interlace out of bounds",
			preset:    Preset{Interlace: ptr(2)},
			expectErr: optarg.ErrRange,
		},
		{
			name:      "Filter outside mask",
			preset:    Preset{Filters: ptr("6")},
			expectErr: rangeset.ErrOutOfRange,
		},
		{
			name:      "Window size not a power of two",
			preset:    Preset{WindowSize: ptr("9k")},
			expectErr: optarg.ErrNotPowerOfTwo,
		},
		{
			name:      "Strip object other than all",
			preset:    Preset{Strip: ptr("text")},
			expectErr: ErrInvalidPreset,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			opts := NewOptions()
			if tc.before != nil {
				tc.before(opts)
			}
			original := *opts

			// --- Act ---
			err := tc.preset.Apply(opts)

			// --- Assert ---
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				require.ErrorIs(t, err, ErrInvalidPreset)
				require.Equal(t, original, *opts, "a failed preset must not modify the record")
				return
			}
			require.NoError(t, err)

			expected := NewOptions()
			tc.expected(expected)
			if diff := cmp.Diff(expected, opts); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
