// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"kcomplex-core/mode"
	"kcomplex/internal/appcore"
	"kcomplex/internal/cli"
	"kcomplex/internal/cmdutil"
	"kcomplex/internal/config"
	"kcomplex/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.New(
		func(ctx context.Context, out io.Writer, cfg *config.Config) error {
			mc, err := cfg.ModeConfig()
			if err != nil {
				return err
			}
			log := cmdutil.NewLogger(stderr, cfg.SlogLevel())
			_, err = appcore.Run(ctx, out, log, cfg, mc)
			return err
		},
		func(ctx context.Context, out io.Writer, o cli.ZScoreOptions) error {
			level := slog.LevelInfo
			if o.Quiet {
				level = slog.LevelError
			}
			return appcore.RunZScore(ctx, out, cmdutil.NewLogger(stderr, level), appcore.ZScoreOptions{
				Threshold: o.Threshold,
				Invert:    o.Invert,
				PrintZ:    o.PrintZ,
				Inputs:    o.Inputs,
			})
		},
	)
	return ExitCode(cmd.Execute(parent, argv, stdout, stderr), stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// ExitCode maps a run error to the process exit code and reports it on
// stderr. Broken pipes end the run quietly.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ue *cli.UsageError
	var ce *mode.ConfigError
	if errors.As(err, &ue) || errors.As(err, &ce) {
		_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'kcomplex --help' for usage.\n", err)
		return ExitUsage
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return ExitRuntime
}
