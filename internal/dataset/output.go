package dataset

import (
	"fmt"
	"io"

	"kinvec/internal/writers"
)

// Names are the artifact names for one formatted dataset.
type Names struct {
	Motifs string
	Matrix string
}

// NamesFor derives artifact names from the final row count.
func NamesFor(n int) Names {
	return Names{
		Motifs: fmt.Sprintf("%d_motifs.csv", n),
		Matrix: fmt.Sprintf("%d_motifxFamMatrix.csv", n),
	}
}

// Write emits the sequence and vector files to s.
func (d *Dataset) Write(s writers.Sink) (Names, error) {
	if err := d.Check(); err != nil {
		return Names{}, err
	}
	names := NamesFor(d.Len())
	if err := writers.Emit(s, names.Motifs, func(w io.Writer) error {
		return writers.WriteLines(w, d.Seqs)
	}); err != nil {
		return names, err
	}
	if err := writers.Emit(s, names.Matrix, func(w io.Writer) error {
		return writers.WriteLines(w, d.Vecs)
	}); err != nil {
		return names, err
	}
	return names, nil
}
