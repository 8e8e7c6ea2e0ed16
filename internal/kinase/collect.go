// Package kinase gathers the set of kinase names that appear across a group
// of motif tables.
package kinase

import (
	"context"

	"kinvec/internal/common"
	"kinvec/internal/ctxlog"
	"kinvec/internal/table"
)

// DefaultColumn holds the kinase name in raw motif tables.
const DefaultColumn = "lab_name"

// Collect unions the values of column across all files. Names keep the order
// in which they were first seen, file by file. Empty cells are skipped.
func Collect(ctx context.Context, paths []string, column string) (*common.OrderedSet[string], error) {
	if column == "" {
		column = DefaultColumn
	}
	log := ctxlog.FromContext(ctx)
	set := common.NewOrderedSet[string]()
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names, err := table.Column(p, column)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if n == "" {
				continue
			}
			set.Add(n)
		}
		log.Debug("read kinase column", "file", p, "rows", len(names), "kinases", set.Len())
	}
	return set, nil
}
