// internal/mapapp/app.go
package mapapp

import (
	"context"
	"fmt"
	"io"

	"kinvec/internal/appcore"
	"kinvec/internal/config"
)

var tool = appcore.Tool{
	Name: "kinvec-map",
	Usage: func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage: kinvec-map [options] MOTIFS.csv [MOTIFS.csv ...]")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Builds only the family list and the kinase → vector mapping table.")
		fmt.Fprintf(out, "Kinases are read from the %q column of every input.\n", def("kinase-column"))
	},
	Stage: func(ctx context.Context, env *appcore.Env, cfg config.Config) error {
		_, err := appcore.BuildMapping(ctx, env, cfg)
		return err
	},
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Launch(parent, tool, argv, stdout, stderr)
}
