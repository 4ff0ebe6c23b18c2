package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vk/optipng/internal/app"
	"github.com/vk/optipng/internal/cli"
	"github.com/vk/optipng/internal/config"
)

const program = "optipng"

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// main is the entrypoint for the optipng application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Getenv)
	stop()
	os.Exit(code)
}

// newRootCmd builds the command. Option parsing is left to cli.Parse, which
// implements the single-dash, prefix-matching grammar pflag cannot express.
func newRootCmd(outW, errW io.Writer, getenv func(string) string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                program + " [options] files ...",
		Short:              "Optimize PNG files losslessly",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), outW, errW, args, getenv)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	return cmd
}

// execute runs the command with args and returns the process exit status.
func execute(ctx context.Context, outW, errW io.Writer, args []string, getenv func(string) string) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := newRootCmd(outW, errW, getenv)
	cmd.SetArgs(args)
	return exitStatus(errW, cmd.ExecuteContext(ctx))
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string, getenv func(string) string) error {
	result, err := cli.Parse(args, slog.Default())
	if err != nil {
		return err
	}

	switch result.Mode {
	case config.ModeHelp:
		cli.WriteUsage(outW, program)
		return nil
	case config.ModeVersion:
		cli.WriteVersion(outW, program, Version, result.Options.Verbose)
		return nil
	}

	optipng, err := app.New(errW, &app.Config{
		Options:    result.Options,
		Files:      result.Operands,
		PresetPath: getenv("OPTIPNG_PRESET"),
		LogFormat:  getenv("OPTIPNG_LOG_FORMAT"),
	})
	if err != nil {
		return err
	}
	defer optipng.Close()

	return optipng.Run(ctx)
}

// exitStatus reports err on errW and maps it to an exit status.
func exitStatus(errW io.Writer, err error) int {
	if err == nil {
		return cli.ExitSuccess
	}

	var internal *app.InternalError
	if errors.As(err, &internal) {
		fmt.Fprintf(errW, "%s: %v\nPlease submit a defect report.\n", program, internal)
		return cli.ExitSoftware
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(errW, "%s: %s\nType \"%s -h\" for help.\n", program, exitErr.Message, program)
		return exitErr.Code
	}

	fmt.Fprintf(errW, "%s: %v\n", program, err)
	return cli.ExitFailure
}
