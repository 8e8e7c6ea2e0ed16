package appcore

import (
	"context"
	"fmt"
	"path/filepath"

	"kinvec/internal/config"
	"kinvec/internal/dataset"
	"kinvec/internal/family"
	"kinvec/internal/kinase"
	"kinvec/internal/writers"
)

// Report describes one formatted input.
type Report struct {
	Input string
	dataset.Stats
	Names dataset.Names
}

// BuildMapping collects kinases from cfg.Inputs, resolves their families and
// writes the family list and mapping table.
func BuildMapping(ctx context.Context, env *Env, cfg config.Config) (*family.Artifacts, error) {
	kins, err := kinase.Collect(ctx, cfg.Inputs, cfg.KinaseColumn)
	if err != nil {
		return nil, fmt.Errorf("collect kinases: %w", err)
	}
	env.Log.Debug("collected kinases", "files", len(cfg.Inputs), "kinases", kins.Len())

	acc, fam, err := family.LoadReferences(cfg.AccessionsPath(), cfg.FamiliesPath())
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}
	env.Log.Debug("loaded reference tables", "accessions", len(acc), "families", len(fam))

	art, err := family.Build(kins.Items(), acc, fam, env.Out)
	if err != nil {
		return nil, err
	}
	if n := len(art.Unresolved); n > 0 {
		env.Warnf("%d of %d kinases have no family", n, kins.Len())
	}

	if err := art.Write(writers.DirSink{Dir: cfg.Output.Dir}, cfg.Output.Families, writers.DirSink{}, cfg.Output.Mapping); err != nil {
		return nil, err
	}
	env.Log.Info("wrote mapping",
		"kinases", len(art.Mapping),
		"families", len(art.Families),
		"unresolved", len(art.Unresolved),
		"mapping", cfg.Output.Mapping,
		"family_list", filepath.Join(cfg.Output.Dir, cfg.Output.Families),
	)
	return art, nil
}

// FormatInputs labels, filters and shuffles every input against mapping and
// writes the motif/matrix pair for each.
func FormatInputs(ctx context.Context, env *Env, cfg config.Config, mapping family.Mapping) ([]Report, error) {
	lookup := mapping.Lookup()
	sink := writers.DirSink{Dir: cfg.Output.Dir}

	reports := make([]Report, 0, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		recs, err := dataset.LoadFile(in)
		if err != nil {
			return reports, err
		}
		d, st, err := dataset.Format(recs, lookup, cfg.Seed)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", in, err)
		}
		if st.Dropped > 0 {
			env.Warnf("%s: dropped %d of %d rows with no family vector", in, st.Dropped, st.Rows)
		}
		names, err := d.Write(sink)
		if err != nil {
			return reports, err
		}
		env.Log.Info("formatted dataset",
			"input", in,
			"rows", st.Rows,
			"dropped", st.Dropped,
			"kept", st.Kept,
			"motifs", sink.Path(names.Motifs),
			"matrix", sink.Path(names.Matrix),
		)
		reports = append(reports, Report{Input: in, Stats: st, Names: names})
	}
	return reports, nil
}
