package cli

import (
	"fmt"
	"io"
	"runtime"
)

const usageText = `
Synopsis:
    %[1]s [options] files ...

Files:
    Image files of type: PNG

Basic options:
    -?, -h, -help       show this help
    -o <level>          optimization level (0-7)              [default: 2]
    -v                  run in verbose mode and show version information

General options:
    -backup, -keep      keep a backup of the modified files
    -clobber            overwrite existing files
    -fix                enable error recovery
    -force              enforce writing of a new output file
    -preserve           preserve file attributes if possible
    -quiet, -silent     run in quiet mode
    -simulate           run in simulation mode
    -out <file>         write output file to <file>
    -dir <directory>    write output file(s) to <directory>
    -log <file>         log messages to <file> (must end in .log)
    --                  stop option switch parsing

Optimization options:
    -f <filters>        PNG delta filters (0-5)
    -i <type>           PNG interlace type (0-1)
    -zc <levels>        zlib compression levels (1-9)
    -zm <levels>        zlib memory levels (1-9)
    -zs <strategies>    zlib compression strategies (0-3)
    -zw <size>          zlib window size (256, 512, 1k, 2k, 4k, 8k, 16k, 32k)
    -full               produce a full report on IDAT
    -nb                 no bit depth reduction
    -nc                 no color type reduction
    -np                 no palette reduction
    -nx                 no reductions
    -nz                 no IDAT recoding

Editing options:
    -snip               cut one image out of multi-image files
    -strip <objects>    strip metadata objects (only "all" is supported)

Notes:
    Options may be abbreviated to any unambiguous prefix, e.g. -verb, -sim.
    Range-set arguments take lists and ranges, e.g. -f0,5 -zc8-9 -zs0-.
    -o, -i, -f and -z* accept their value glued to the name, e.g. -o3.

Environment:
    OPTIPNG_PRESET      preset file (.hcl, .toml, .yaml) with default values
    OPTIPNG_LOG_FORMAT  log record format: text (default) or json

`

// WriteUsage prints the help text for program.
func WriteUsage(w io.Writer, program string) {
	fmt.Fprintf(w, usageText, program)
}

// WriteVersion prints version information. Verbose output adds the Go
// toolchain and platform.
func WriteVersion(w io.Writer, program, version string, verbose bool) {
	fmt.Fprintf(w, "%s version %s\n", program, version)
	if verbose {
		fmt.Fprintf(w, "Built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
}
