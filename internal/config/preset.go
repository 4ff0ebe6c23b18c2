package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/optipng/internal/optarg"
	"github.com/vk/optipng/internal/rangeset"
)

// ErrInvalidPreset wraps every validation failure of a preset value.
var ErrInvalidPreset = errors.New("invalid preset")

// Preset holds default option values read from a preset file. A nil field
// was not present in the file.
type Preset struct {
	OptimizationLevel *int    `hcl:"optimization_level,optional" toml:"optimization_level" yaml:"optimization_level"`
	Interlace         *int    `hcl:"interlace,optional" toml:"interlace" yaml:"interlace"`
	Filters           *string `hcl:"filters,optional" toml:"filters" yaml:"filters"`
	CompressionLevels *string `hcl:"compression_levels,optional" toml:"compression_levels" yaml:"compression_levels"`
	MemoryLevels      *string `hcl:"memory_levels,optional" toml:"memory_levels" yaml:"memory_levels"`
	Strategies        *string `hcl:"strategies,optional" toml:"strategies" yaml:"strategies"`
	WindowSize        *string `hcl:"window_size,optional" toml:"window_size" yaml:"window_size"`
	Strip             *string `hcl:"strip,optional" toml:"strip" yaml:"strip"`
	Backup            *bool   `hcl:"backup,optional" toml:"backup" yaml:"backup"`
	Preserve          *bool   `hcl:"preserve,optional" toml:"preserve" yaml:"preserve"`
	Clobber           *bool   `hcl:"clobber,optional" toml:"clobber" yaml:"clobber"`
	Dir               *string `hcl:"dir,optional" toml:"dir" yaml:"dir"`
}

// Apply copies preset values into opts for every option the command line
// left unset. Values pass the same validation as their command line
// counterparts; on error opts is left untouched.
func (p *Preset) Apply(opts *Options) error {
	merged := *opts

	if p.OptimizationLevel != nil && merged.OptimLevel == Unset {
		if err := optarg.CheckBounds(*p.OptimizationLevel, 0, MaxOptimLevel); err != nil {
			return fmt.Errorf("%w: optimization_level: %w", ErrInvalidPreset, err)
		}
		merged.OptimLevel = *p.OptimizationLevel
	}
	if p.Interlace != nil && merged.Interlace == Unset {
		if err := optarg.CheckBounds(*p.Interlace, 0, MaxInterlace); err != nil {
			return fmt.Errorf("%w: interlace: %w", ErrInvalidPreset, err)
		}
		merged.Interlace = *p.Interlace
	}

	sets := []struct {
		key    string
		text   *string
		target *rangeset.Set
		mask   rangeset.Set
	}{
		{"filters", p.Filters, &merged.Filters, FilterMask},
		{"compression_levels", p.CompressionLevels, &merged.CompressionLevels, CompressionLevelMask},
		{"memory_levels", p.MemoryLevels, &merged.MemoryLevels, MemoryLevelMask},
		{"strategies", p.Strategies, &merged.Strategies, StrategyMask},
	}
	for _, s := range sets {
		if s.text == nil || !s.target.Empty() {
			continue
		}
		set, err := rangeset.Parse(*s.text, s.mask)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidPreset, s.key, err)
		}
		*s.target = set
	}

	if p.WindowSize != nil && merged.WindowBits == 0 {
		bits, err := optarg.ParseExponent(*p.WindowSize, MinWindowBits, MaxWindowBits)
		if err != nil {
			return fmt.Errorf("%w: window_size: %w", ErrInvalidPreset, err)
		}
		merged.WindowBits = bits
	}

	if p.Strip != nil {
		if !strings.EqualFold(*p.Strip, "all") {
			return fmt.Errorf("%w: strip: only \"all\" is supported, got %q", ErrInvalidPreset, *p.Strip)
		}
		merged.StripAll = true
	}

	if p.Backup != nil && *p.Backup {
		merged.Backup = true
	}
	if p.Preserve != nil && *p.Preserve {
		merged.Preserve = true
	}
	if p.Clobber != nil && *p.Clobber {
		merged.Clobber = true
	}

	// -out names the output exactly, so a default directory does not apply.
	if p.Dir != nil && *p.Dir != "" && merged.Dir == "" && merged.OutFile == "" {
		merged.Dir = *p.Dir
	}

	*opts = merged
	return nil
}
