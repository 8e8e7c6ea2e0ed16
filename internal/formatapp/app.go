// internal/formatapp/app.go
package formatapp

import (
	"context"
	"fmt"
	"io"

	"kinvec/internal/appcore"
	"kinvec/internal/config"
	"kinvec/internal/family"
)

var tool = appcore.Tool{
	Name: "kinvec-format",
	Usage: func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage: kinvec-format [options] FORMATTED.csv [FORMATTED.csv ...]")
		fmt.Fprintln(out, "")
		fmt.Fprintf(out, "Labels each input against an existing mapping table (--mapping, default %s),\n", def("mapping"))
		fmt.Fprintln(out, "drops rows whose kinase has no family, shuffles, and writes the motif/matrix pair.")
	},
	Stage: func(ctx context.Context, env *appcore.Env, cfg config.Config) error {
		m, err := family.LoadMappingFile(cfg.Output.Mapping)
		if err != nil {
			return fmt.Errorf("load mapping: %w", err)
		}
		_, err = appcore.FormatInputs(ctx, env, cfg, m)
		return err
	},
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Launch(parent, tool, argv, stdout, stderr)
}
