// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"kinvec/internal/cliutil"
	"kinvec/internal/common"
	"kinvec/internal/config"
)

// Common holds CLI fields shared by every kinvec tool.
type Common struct {
	// Input
	ConfigPath   string
	Inputs       []string
	KinaseColumn string

	// Reference tables
	ReferenceDir string
	Accessions   string
	Families     string

	// Output
	OutDir      string
	Mapping     string
	FamiliesOut string
	Seed        uint64

	// Misc
	LogLevel  string
	LogFormat string
	Quiet     bool
	Version   bool
}

// sliceValue appends each value to a *[]string (for --input/-i)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	def := config.Default()

	// Input
	fs.StringVar(&c.ConfigPath, "config", "", "YAML run config")
	fs.StringVar(&c.ConfigPath, "C", "", "alias of --config")
	inVal := &sliceValue{dst: &c.Inputs}
	fs.Var(inVal, "input", "motif CSV file(s) (repeatable)")
	fs.Var(inVal, "i", "alias of --input")
	fs.StringVar(&c.KinaseColumn, "kinase-column", def.KinaseColumn, "kinase name column in raw motif tables ["+def.KinaseColumn+"]")

	// Reference
	fs.StringVar(&c.ReferenceDir, "reference-dir", "", "directory holding the reference tables [.]")
	fs.StringVar(&c.Accessions, "accessions", "", "kinase → accession table (GENE,KIN_ACC_ID)")
	fs.StringVar(&c.Families, "families", "", "accession → family table (Uniprot,Family)")

	// Output
	fs.StringVar(&c.OutDir, "out-dir", def.Output.Dir, "output directory ["+def.Output.Dir+"]")
	fs.StringVar(&c.OutDir, "d", def.Output.Dir, "alias of --out-dir")
	fs.StringVar(&c.Mapping, "mapping", def.Output.Mapping, "kinase → vector mapping table ["+def.Output.Mapping+"]")
	fs.StringVar(&c.FamiliesOut, "families-out", def.Output.Families, "family list file name inside --out-dir ["+def.Output.Families+"]")
	fs.Uint64Var(&c.Seed, "seed", def.Seed, "shuffle seed [0]")

	// Misc
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.StringVar(&c.LogFormat, "log-format", "text", "log format: text | json [text]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse expands positionals into inputs and runs shared validation.
func AfterParse(c *Common, posArgs []string) error {
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}
	c.Inputs = common.UniqueNonEmpty(c.Inputs)
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	if c.KinaseColumn == "" {
		return errors.New("--kinase-column must not be empty")
	}
	return nil
}

// Resolve builds the run config: defaults, then the --config file, then
// every flag the user set explicitly. Inputs given on the command line
// replace the config's list.
func Resolve(fs *flag.FlagSet, c *Common) (config.Config, error) {
	cfg := config.Default()
	if c.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(c.ConfigPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kinase-column":
			cfg.KinaseColumn = c.KinaseColumn
		case "reference-dir":
			cfg.Reference.Dir = c.ReferenceDir
		case "accessions":
			cfg.Reference.Accessions = c.Accessions
		case "families":
			cfg.Reference.Families = c.Families
		case "out-dir", "d":
			cfg.Output.Dir = c.OutDir
		case "mapping":
			cfg.Output.Mapping = c.Mapping
		case "families-out":
			cfg.Output.Families = c.FamiliesOut
		case "seed":
			cfg.Seed = c.Seed
		}
	})
	if len(c.Inputs) > 0 {
		cfg.Inputs = c.Inputs
	}
	return cfg, cfg.Verify()
}
