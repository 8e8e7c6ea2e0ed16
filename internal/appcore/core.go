// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"kinvec/internal/cli"
	"kinvec/internal/cmdutil"
	"kinvec/internal/config"
	"kinvec/internal/ctxlog"
	"kinvec/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// Env is what a stage may touch besides its config.
type Env struct {
	// Out receives data-facing text such as "Not found --" diagnostics.
	Out io.Writer
	// Err receives warnings.
	Err   io.Writer
	Quiet bool
	Log   *slog.Logger
}

func (e *Env) Warnf(format string, a ...any) { cmdutil.Warnf(e.Err, e.Quiet, format, a...) }

// Stage is one tool's body.
type Stage func(ctx context.Context, env *Env, cfg config.Config) error

// Run executes stage with logging set up from o and maps the outcome to an
// exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o cli.Options, stage Stage) int {
	outw := bufio.NewWriter(stdout)

	logger, err := cmdutil.NewLogger(stderr, o.LogLevel, o.LogFormat, o.Quiet)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	ctx, cancel := context.WithCancel(ctxlog.WithLogger(parent, logger))
	defer cancel()

	env := &Env{Out: outw, Err: stderr, Quiet: o.Quiet, Log: logger}
	serr := stage(ctx, env, o.Config)

	ferr := outw.Flush()

	if serr != nil {
		if errors.Is(serr, context.Canceled) {
			return ExitCanceled
		}
		logger.Error("run failed", "err", serr)
		return ExitRuntime
	}
	if ferr != nil && !writers.IsBrokenPipe(ferr) {
		logger.Error("flush stdout", "err", ferr)
		return ExitRuntime
	}
	return ExitOK
}
