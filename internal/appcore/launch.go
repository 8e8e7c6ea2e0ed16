package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"kinvec/internal/cli"
	"kinvec/internal/clibase"
	"kinvec/internal/version"
	"kinvec/internal/writers"
)

// Tool describes one command: its name, the tool-specific help block and its
// body.
type Tool struct {
	Name  string
	Usage func(out io.Writer, def func(string) string)
	Stage Stage
}

// Launch parses argv for t, handles -h/--version, and runs t.Stage.
func Launch(parent context.Context, t Tool, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(t.Name)
	fs.SetOutput(io.Discard)

	printUsage := func(code int) int {
		clibase.UsageCommon(fs, t.Name, t.Usage)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return ExitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return ExitRuntime
		}
		return code
	}

	if len(argv) == 0 {
		return printUsage(ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", t.Name, version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return ExitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return ExitRuntime
		}
		return ExitOK
	}

	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return Run(parent, stdout, stderr, opts, t.Stage)
}
