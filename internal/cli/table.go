package cli

import (
	"strings"

	"github.com/vk/optipng/internal/config"
	"github.com/vk/optipng/internal/optarg"
	"github.com/vk/optipng/internal/rangeset"
)

// option is one entry of the option table. A name given on the command line
// selects the entry when it is a prefix of the full name and at least
// minLen characters long.
type option struct {
	name   string
	minLen int

	// Exactly one of set and value is non-nil: set handles a switch, value
	// handles an option that takes an argument.
	set   func(o *config.Options)
	value func(p *parser, arg string) error
}

func (o *option) matches(name string) bool {
	return len(name) >= o.minLen && strings.HasPrefix(o.name, name)
}

func (o *option) takesArgument() bool {
	return o.value != nil
}

// optionTable lists every recognized option. The first matching entry wins;
// minimum lengths are chosen so that no accepted spelling selects two
// entries.
var optionTable = []option{
	{name: "?", minLen: 1, set: func(o *config.Options) { o.Help = true }},
	{name: "h", minLen: 1, set: func(o *config.Options) { o.Help = true }},
	{name: "help", minLen: 2, set: func(o *config.Options) { o.Help = true }},
	{name: "backup", minLen: 1, set: func(o *config.Options) { o.Backup = true }},
	{name: "keep", minLen: 1, set: func(o *config.Options) { o.Backup = true }},
	{name: "clobber", minLen: 2, set: func(o *config.Options) { o.Clobber = true }},
	{name: "debug", minLen: 3, set: func(o *config.Options) { o.Debug = true }},
	{name: "dir", minLen: 1, value: (*parser).setDir},
	{name: "f", minLen: 1, value: (*parser).addFilters},
	{name: "fix", minLen: 2, set: func(o *config.Options) { o.Fix = true }},
	{name: "force", minLen: 2, set: func(o *config.Options) { o.Force = true }},
	{name: "full", minLen: 2, set: func(o *config.Options) { o.Full = true }},
	{name: "i", minLen: 1, value: (*parser).setInterlace},
	{name: "log", minLen: 3, value: (*parser).setLogFile},
	{name: "nb", minLen: 2, set: func(o *config.Options) { o.NoBitDepthReduction = true }},
	{name: "nc", minLen: 2, set: func(o *config.Options) { o.NoColorTypeReduction = true }},
	{name: "np", minLen: 2, set: func(o *config.Options) { o.NoPaletteReduction = true }},
	{name: "nx", minLen: 2, set: func(o *config.Options) {
		o.NoReductions = true
		o.NoBitDepthReduction = true
		o.NoColorTypeReduction = true
		o.NoPaletteReduction = true
	}},
	{name: "nz", minLen: 2, set: func(o *config.Options) { o.NoIDATRecoding = true }},
	{name: "o", minLen: 1, value: (*parser).setOptimLevel},
	{name: "out", minLen: 2, value: (*parser).setOutFile},
	{name: "paranoid", minLen: 2, set: func(o *config.Options) { o.Paranoid = true }},
	{name: "preserve", minLen: 1, set: func(o *config.Options) { o.Preserve = true }},
	{name: "quiet", minLen: 1, set: func(o *config.Options) { o.Quiet = true }},
	{name: "silent", minLen: 3, set: func(o *config.Options) { o.Quiet = true }},
	{name: "simulate", minLen: 3, set: func(o *config.Options) { o.Simulate = true }},
	{name: "snip", minLen: 2, set: func(o *config.Options) { o.Snip = true }},
	{name: "strip", minLen: 2, value: (*parser).setStrip},
	{name: "v", minLen: 1, set: func(o *config.Options) {
		o.Verbose = true
		o.Version = true
	}},
	{name: "verbose", minLen: 4, set: func(o *config.Options) { o.Verbose = true }},
	{name: "version", minLen: 4, set: func(o *config.Options) { o.Version = true }},
	{name: "zc", minLen: 2, value: (*parser).addCompressionLevels},
	{name: "zm", minLen: 2, value: (*parser).addMemoryLevels},
	{name: "zs", minLen: 2, value: (*parser).addStrategies},
	{name: "zw", minLen: 2, value: (*parser).setWindowSize},
}

// lookup returns the table entry selected by a lower-case option name.
func lookup(name string) *option {
	for i := range optionTable {
		if optionTable[i].matches(name) {
			return &optionTable[i]
		}
	}
	return nil
}

func (p *parser) setOptimLevel(arg string) error {
	level, err := optarg.ParseBounded(arg, 0, config.MaxOptimLevel)
	if err != nil {
		return invalidArgument("o", err)
	}
	if p.opts.OptimLevel != config.Unset && p.opts.OptimLevel != level {
		return usageError(ErrConflict, "multiple optimization levels are not permitted")
	}
	p.opts.OptimLevel = level
	return nil
}

func (p *parser) setInterlace(arg string) error {
	interlace, err := optarg.ParseBounded(arg, 0, config.MaxInterlace)
	if err != nil {
		return invalidArgument("i", err)
	}
	if p.opts.Interlace != config.Unset && p.opts.Interlace != interlace {
		return usageError(ErrConflict, "multiple interlace types are not permitted")
	}
	p.opts.Interlace = interlace
	return nil
}

func (p *parser) setWindowSize(arg string) error {
	bits, err := optarg.ParseExponent(arg, config.MinWindowBits, config.MaxWindowBits)
	if err != nil {
		return invalidArgument("zw", err)
	}
	if p.opts.WindowBits != 0 && p.opts.WindowBits != bits {
		return usageError(ErrConflict, "multiple window sizes are not permitted")
	}
	p.opts.WindowBits = bits
	return nil
}

func (p *parser) addFilters(arg string) error {
	return addRangeSet("f", &p.opts.Filters, config.FilterMask, arg)
}

func (p *parser) addCompressionLevels(arg string) error {
	return addRangeSet("zc", &p.opts.CompressionLevels, config.CompressionLevelMask, arg)
}

func (p *parser) addMemoryLevels(arg string) error {
	return addRangeSet("zm", &p.opts.MemoryLevels, config.MemoryLevelMask, arg)
}

func (p *parser) addStrategies(arg string) error {
	return addRangeSet("zs", &p.opts.Strategies, config.StrategyMask, arg)
}

// addRangeSet merges a parsed range-set into target; repeats accumulate.
func addRangeSet(name string, target *rangeset.Set, mask rangeset.Set, arg string) error {
	set, err := rangeset.Parse(arg, mask)
	if err != nil {
		return invalidArgument(name, err)
	}
	*target = target.Union(set)
	return nil
}

func (p *parser) setStrip(arg string) error {
	if arg == "" {
		return usageError(ErrInvalidArgument, "empty argument for option -strip")
	}
	if !strings.EqualFold(arg, "all") {
		return usageError(ErrInvalidArgument,
			"stripping metadata object %q is not implemented; only \"-strip all\" is supported", arg)
	}
	p.opts.StripAll = true
	return nil
}

func (p *parser) setOutFile(arg string) error {
	return setPath("out", &p.opts.OutFile, arg)
}

func (p *parser) setDir(arg string) error {
	return setPath("dir", &p.opts.Dir, arg)
}

func (p *parser) setLogFile(arg string) error {
	return setPath("log", &p.opts.LogFile, arg)
}

// setPath stores a path argument. Path options may be given only once.
func setPath(name string, target *string, arg string) error {
	if *target != "" {
		return usageError(ErrConflict, "duplicate option: -%s", name)
	}
	if arg == "" {
		return usageError(ErrInvalidArgument, "empty argument for option -%s", name)
	}
	*target = arg
	return nil
}
