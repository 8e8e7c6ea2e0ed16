package family

import (
	"fmt"
	"io"

	"kinvec/internal/common"
)

// Miss records a kinase that could not be given a family.
type Miss struct {
	Kinase    string
	Accession string // empty when the kinase had no accession
}

type Resolution struct {
	Kinases    []string
	Family     map[string]string // resolved kinases only
	Families   *common.OrderedSet[string]
	Unresolved []Miss
}

// Resolve walks kinase → accession → family for each kinase in order. Misses
// are reported to diag as "Not found -- <kinase> <accession>" and kept.
// Families are collected in the order they are first resolved.
func Resolve(kinases []string, acc AccessionTable, fam FamilyTable, diag io.Writer) (*Resolution, error) {
	res := &Resolution{
		Kinases:  kinases,
		Family:   make(map[string]string, len(kinases)),
		Families: common.NewOrderedSet[string](),
	}
	for _, k := range kinases {
		a, ok := acc[k]
		var f string
		if ok {
			f, ok = fam[a]
		}
		if !ok {
			res.Unresolved = append(res.Unresolved, Miss{Kinase: k, Accession: a})
			if err := reportMiss(diag, k, a); err != nil {
				return nil, err
			}
			continue
		}
		res.Family[k] = f
		res.Families.Add(f)
	}
	return res, nil
}

func reportMiss(w io.Writer, kinase, acc string) error {
	if w == nil {
		return nil
	}
	var err error
	if acc == "" {
		_, err = fmt.Fprintf(w, "Not found -- %s\n", kinase)
	} else {
		_, err = fmt.Fprintf(w, "Not found -- %s %s\n", kinase, acc)
	}
	return err
}
