// internal/cli/options.go
package cli

import (
	"errors"
	"flag"

	"kinvec/internal/clibase"
	"kinvec/internal/cliutil"
	"kinvec/internal/config"
)

// Options holds the parsed flags and the resolved run config.
type Options struct {
	clibase.Common
	Config config.Config
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers and parses all flags. Input files may be given with
// --input, as positionals, or in the config file. flag.ErrHelp is returned
// for -h/--help.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)
	if err := clibase.AfterParse(&opt.Common, posArgs); err != nil {
		return opt, err
	}

	cfg, err := clibase.Resolve(fs, &opt.Common)
	if err != nil {
		return opt, err
	}
	if len(cfg.Inputs) == 0 {
		return opt, errors.New("at least one input file is required (--input, positional, or config inputs)")
	}
	opt.Config = cfg
	return opt, nil
}
