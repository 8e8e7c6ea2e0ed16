// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"kinvec/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, examples).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – kinase family one-hot labelling\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            Motif CSV file(s) (repeatable; positionals and globs also accepted)")
		fmt.Fprintln(out, "  -C, --config file           YAML run config (flags override it)")
		fmt.Fprintf(out, "      --kinase-column string  Kinase name column in raw motif tables [%s]\n", def("kinase-column"))

		fmt.Fprintln(out, "\nReference:")
		fmt.Fprintln(out, "      --reference-dir dir     Directory holding the reference tables [.]")
		fmt.Fprintln(out, "      --accessions file       Kinase → accession table (GENE,KIN_ACC_ID)")
		fmt.Fprintln(out, "      --families file         Accession → family table (Uniprot,Family)")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -d, --out-dir dir           Output directory [%s]\n", def("out-dir"))
		fmt.Fprintf(out, "      --mapping file          Kinase → vector mapping table [%s]\n", def("mapping"))
		fmt.Fprintf(out, "      --families-out name     Family list name inside --out-dir [%s]\n", def("families-out"))
		fmt.Fprintf(out, "      --seed uint             Shuffle seed [%s]\n", def("seed"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
