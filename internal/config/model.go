package config

import "github.com/vk/optipng/internal/rangeset"

// Unset marks a scalar integer option that was not given.
const Unset = -1

// Option bounds.
const (
	MaxOptimLevel     = 7
	DefaultOptimLevel = 2
	MaxInterlace      = 1
	MinWindowBits     = 8
	MaxWindowBits     = 15
)

// Masks of the values each range-set option may select.
const (
	FilterMask           rangeset.Set = 0x03f // 0-5
	CompressionLevelMask rangeset.Set = 0x3fe // 1-9
	MemoryLevelMask      rangeset.Set = 0x3fe // 1-9
	StrategyMask         rangeset.Set = 0x00f // 0-3
)

// LogSuffix is the extension every log file name must carry.
const LogSuffix = ".log"

// Options is the configuration record populated by the command line parser.
// It is written once during parsing and only read afterwards.
type Options struct {
	Help    bool
	Version bool

	Backup   bool
	Clobber  bool
	Debug    bool
	Fix      bool
	Force    bool
	Full     bool
	Paranoid bool
	Preserve bool
	Quiet    bool
	Simulate bool
	Snip     bool
	Verbose  bool

	// The -n* toggles are accepted and recorded; the bundled engine does not
	// perform the reductions they switch off.
	NoBitDepthReduction  bool
	NoColorTypeReduction bool
	NoPaletteReduction   bool
	NoReductions         bool
	NoIDATRecoding       bool

	OptimLevel int // Unset or 0..MaxOptimLevel
	Interlace  int // Unset or 0..MaxInterlace
	WindowBits int // 0 when unset, else MinWindowBits..MaxWindowBits

	Filters           rangeset.Set
	CompressionLevels rangeset.Set
	MemoryLevels      rangeset.Set
	Strategies        rangeset.Set

	StripAll bool

	OutFile string
	Dir     string
	LogFile string
}

// NewOptions returns a record with every option unset.
func NewOptions() *Options {
	return &Options{
		OptimLevel: Unset,
		Interlace:  Unset,
	}
}

// EffectiveOptimLevel returns the optimization level to run with.
func (o *Options) EffectiveOptimLevel() int {
	if o.OptimLevel == Unset {
		return DefaultOptimLevel
	}
	return o.OptimLevel
}

// RunMode is what the program does once parsing completes.
type RunMode int

const (
	// ModeHelp prints usage.
	ModeHelp RunMode = iota
	// ModeRun optimizes the file operands.
	ModeRun
	// ModeVersion prints version information.
	ModeVersion
)

func (m RunMode) String() string {
	switch m {
	case ModeHelp:
		return "help"
	case ModeRun:
		return "run"
	case ModeVersion:
		return "version"
	default:
		return "unknown"
	}
}

// SelectMode picks the run mode: an explicit help request wins over file
// operands, which win over a version request; with nothing requested the
// help text is shown.
func SelectMode(opts *Options, operands []string) RunMode {
	switch {
	case opts.Help:
		return ModeHelp
	case len(operands) > 0:
		return ModeRun
	case opts.Version:
		return ModeVersion
	default:
		return ModeHelp
	}
}
