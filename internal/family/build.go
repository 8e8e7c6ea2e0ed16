package family

import (
	"fmt"
	"io"
	"os"

	"kinvec/internal/onehot"
	"kinvec/internal/writers"
)

// FamiliesListFile is the default name of the family list artifact.
const FamiliesListFile = "large_fams.csv"

// Artifacts is everything the builder produces for one kinase set.
type Artifacts struct {
	Families   []string
	Mapping    Mapping
	Unresolved []Miss
}

// Build resolves kinases and produces the family list and the mapping table.
func Build(kinases []string, acc AccessionTable, fam FamilyTable, diag io.Writer) (*Artifacts, error) {
	res, err := Resolve(kinases, acc, fam, diag)
	if err != nil {
		return nil, err
	}
	enc := onehot.NewEncoder(res.Families)
	return &Artifacts{
		Families:   enc.Families(),
		Mapping:    BuildMapping(res, enc),
		Unresolved: res.Unresolved,
	}, nil
}

// WriteFamilies writes one label per line.
func WriteFamilies(w io.Writer, families []string) error {
	return writers.WriteLines(w, families)
}

// Write emits the family list to familiesSink and the mapping table to
// mappingSink under the given names.
func (a *Artifacts) Write(familiesSink writers.Sink, familiesName string, mappingSink writers.Sink, mappingName string) error {
	if err := writers.Emit(familiesSink, familiesName, func(w io.Writer) error {
		return WriteFamilies(w, a.Families)
	}); err != nil {
		return err
	}
	return writers.Emit(mappingSink, mappingName, a.Mapping.WriteCSV)
}

// LoadReferences reads both reference tables from disk.
func LoadReferences(accPath, famPath string) (AccessionTable, FamilyTable, error) {
	acc, err := loadFile(accPath, LoadAccessions)
	if err != nil {
		return nil, nil, err
	}
	fam, err := loadFile(famPath, LoadFamilies)
	if err != nil {
		return nil, nil, err
	}
	return acc, fam, nil
}

// LoadMappingFile reads a mapping table from disk.
func LoadMappingFile(path string) (Mapping, error) {
	return loadFile(path, ReadMapping)
}

func loadFile[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	fh, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer func() { _ = fh.Close() }()
	v, err := load(fh)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
