// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"kinvec/internal/appcore"
	"kinvec/internal/config"
)

var tool = appcore.Tool{
	Name: "kinvec",
	Usage: func(out io.Writer, _ func(string) string) {
		fmt.Fprintln(out, "Usage: kinvec [options] MOTIFS.csv [MOTIFS.csv ...]")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Collects kinase names from every input (--kinase-column), builds the")
		fmt.Fprintln(out, "kinase → family one-hot mapping from the reference tables, then labels,")
		fmt.Fprintln(out, "filters and shuffles each input (orig_lab_name, seq) into")
		fmt.Fprintln(out, "<out-dir>/<N>_motifs.csv and <out-dir>/<N>_motifxFamMatrix.csv.")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Example:")
		fmt.Fprintln(out, "  kinvec raw_data_1647_no_overlaps_formatted_95.csv raw_data_7530_no_overlaps_formatted_50.csv")
	},
	Stage: pipeline,
}

func pipeline(ctx context.Context, env *appcore.Env, cfg config.Config) error {
	art, err := appcore.BuildMapping(ctx, env, cfg)
	if err != nil {
		return err
	}
	_, err = appcore.FormatInputs(ctx, env, cfg, art.Mapping)
	return err
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Launch(parent, tool, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
