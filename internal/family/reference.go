package family

import (
	"io"
	"regexp"

	"kinvec/internal/common"
	"kinvec/internal/table"
)

// Reference table columns.
const (
	ColGene      = "GENE"
	ColAccession = "KIN_ACC_ID"
	ColUniprot   = "Uniprot"
	ColFamily    = "Family"
)

// Default reference file names.
const (
	AccessionsFile = "kin_to_uniprot.csv"
	FamiliesFile   = "uniprot_to_family.csv"
)

var versionSuffix = regexp.MustCompile(`(.*)-[0-9]+`)

// StripVersion removes an isoform suffix from an accession: "P00519-2" → "P00519".
// The match is greedy, so only the last "-<digits>" run is cut.
func StripVersion(acc string) string {
	return versionSuffix.ReplaceAllString(acc, "${1}")
}

// AccessionTable maps kinase name → accession with version suffixes stripped.
type AccessionTable map[string]string

// FamilyTable maps accession → upper-cased family label.
type FamilyTable map[string]string

// Later rows win when a key repeats.
func LoadAccessions(r io.Reader) (AccessionTable, error) {
	rows, err := table.ReadColumns(r, ColGene, ColAccession)
	if err != nil {
		return nil, err
	}
	out := make(AccessionTable, len(rows))
	for _, row := range rows {
		if row[0] == "" || row[1] == "" {
			continue
		}
		out[row[0]] = StripVersion(row[1])
	}
	return out, nil
}

func LoadFamilies(r io.Reader) (FamilyTable, error) {
	rows, err := table.ReadColumns(r, ColUniprot, ColFamily)
	if err != nil {
		return nil, err
	}
	out := make(FamilyTable, len(rows))
	for _, row := range rows {
		if row[0] == "" || row[1] == "" {
			continue
		}
		out[row[0]] = common.NormalizeLabel(row[1])
	}
	return out, nil
}
