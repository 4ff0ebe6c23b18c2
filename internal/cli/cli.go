package cli

import (
	"log/slog"
	"strings"

	"github.com/vk/optipng/internal/config"
)

// Result is the outcome of a successful parse.
type Result struct {
	Options  *config.Options
	Operands []string
	Mode     config.RunMode
}

// parser carries the state of a single Parse call.
type parser struct {
	logger   *slog.Logger
	opts     *config.Options
	operands []string
}

// Parse processes command-line arguments (without the program name). It
// returns the populated record, the file operands in order and the selected
// run mode, or an *ExitError describing the first problem found.
func Parse(args []string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("CLI parser started.", "arg_count", len(args))

	p := &parser{
		logger: logger,
		opts:   config.NewOptions(),
	}
	if err := p.parseArgs(args); err != nil {
		return nil, err
	}
	if err := p.check(); err != nil {
		return nil, err
	}

	result := &Result{
		Options:  p.opts,
		Operands: p.operands,
		Mode:     config.SelectMode(p.opts, p.operands),
	}
	logger.Debug("CLI parser finished successfully.", "mode", result.Mode, "operands", len(result.Operands))
	return result, nil
}

func (p *parser) parseArgs(args []string) error {
	stopSwitch := false
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if stopSwitch || !isOption(arg) {
			p.operands = append(p.operands, arg)
			continue
		}
		if arg == "--" {
			p.logger.Debug("Option parsing stopped.", "position", i)
			stopSwitch = true
			continue
		}

		name, value, glued := splitOption(arg)
		opt := lookup(name)
		if opt == nil {
			return usageError(ErrUnrecognized, "unrecognized option: %s", arg)
		}

		if !opt.takesArgument() {
			if glued {
				// Unreachable: only argument-taking entries accept glued values.
				return usageError(ErrUnrecognized, "unrecognized option: %s", arg)
			}
			opt.set(p.opts)
			p.logger.Debug("Option recognized.", "option", opt.name)
			continue
		}

		if !glued {
			if i+1 >= len(args) {
				return usageError(ErrMissingArgument, "missing argument for option %s", arg)
			}
			i++
			value = args[i]
		}
		if err := opt.value(p, value); err != nil {
			return err
		}
		p.logger.Debug("Option recognized.", "option", opt.name, "value", value)
	}
	return nil
}

// check applies the rules that involve more than one option.
func (p *parser) check() error {
	o := p.opts
	if o.OutFile != "" {
		if o.Dir != "" {
			return usageError(ErrConflict, "options -out and -dir are mutually exclusive")
		}
		if len(p.operands) != 1 {
			return usageError(ErrConflict, "option -out requires exactly one input file, got %d", len(p.operands))
		}
	}
	if o.LogFile != "" && !hasSuffixFold(o.LogFile, config.LogSuffix) {
		return usageError(ErrInvalidArgument,
			"to prevent accidental data corruption, the log file name must end with %q", config.LogSuffix)
	}
	return nil
}

// isOption reports whether arg is a candidate option. A lone "-" is an
// operand.
func isOption(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// splitOption strips the leading dashes of arg and returns the lower-case
// option name. For "-o3", "-i1" and "-f0-5" the digit after the letter
// starts a glued value; for "-zc9" and "-zw32k" the digit after the second
// letter does. The value keeps its original case.
func splitOption(arg string) (name, value string, glued bool) {
	body := strings.TrimLeft(arg, "-")

	if len(body) >= 2 && isDigit(body[1]) {
		switch lowerASCII(body[0]) {
		case 'o', 'i', 'f':
			return string(lowerASCII(body[0])), body[1:], true
		}
	}
	if len(body) >= 3 && lowerASCII(body[0]) == 'z' && isLetter(body[1]) && isDigit(body[2]) {
		return string([]byte{'z', lowerASCII(body[1])}), body[2:], true
	}
	return strings.ToLower(body), "", false
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	c = lowerASCII(c)
	return c >= 'a' && c <= 'z'
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
