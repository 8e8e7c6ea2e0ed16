// Package dataset labels motif sequences with their kinase's family vector and
// prepares them as paired, shuffled training files.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"kinvec/internal/onehot"
	"kinvec/internal/table"
)

// Formatted motif table columns.
const (
	ColKinase = "orig_lab_name"
	ColSeq    = "seq"
)

var (
	ErrUnknownKinase  = errors.New("kinase missing from mapping")
	ErrLengthMismatch = errors.New("sequences and vectors are not the same length")
)

type Record struct {
	Kinase string
	Seq    string
}

// Dataset holds index-aligned sequences and comma-joined vectors.
type Dataset struct {
	Seqs []string
	Vecs []string
}

func (d *Dataset) Len() int { return len(d.Seqs) }

func Load(r io.Reader) ([]Record, error) {
	rows, err := table.ReadColumns(r, ColKinase, ColSeq)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = Record{Kinase: row[0], Seq: row[1]}
	}
	return out, nil
}

func LoadFile(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	recs, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Label attaches a vector to every record. lookup maps kinase → bracketed
// vector text; an empty (or "nan") value marks the kinase as unresolved and
// yields the onehot.NaN placeholder. A kinase absent from lookup is an error,
// and so is a vector that is not one-hot.
func Label(recs []Record, lookup map[string]string) (*Dataset, error) {
	d := &Dataset{
		Seqs: make([]string, 0, len(recs)),
		Vecs: make([]string, 0, len(recs)),
	}
	for i, r := range recs {
		text, ok := lookup[r.Kinase]
		if !ok {
			return nil, fmt.Errorf("row %d: %w: %q", i+2, ErrUnknownKinase, r.Kinase)
		}
		vec := onehot.NaN
		if !isNull(text) {
			v, err := onehot.Parse(text)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s): %w", i+2, r.Kinase, err)
			}
			if v.Hot() < 0 {
				return nil, fmt.Errorf("row %d (%s): %w: not one-hot: %s", i+2, r.Kinase, onehot.ErrMalformed, text)
			}
			vec = v.Joined()
		}
		d.Seqs = append(d.Seqs, r.Seq)
		d.Vecs = append(d.Vecs, vec)
	}
	return d, nil
}

func isNull(s string) bool {
	return s == "" || strings.EqualFold(s, onehot.NaN)
}

// Filter drops every row whose vector is the NaN placeholder, keeping
// sequences and vectors in lockstep. It returns the number of rows dropped.
func (d *Dataset) Filter() int {
	n := len(d.Vecs)
	if len(d.Seqs) < n {
		n = len(d.Seqs)
	}
	kept := 0
	for i := 0; i < n; i++ {
		if d.Vecs[i] == onehot.NaN {
			continue
		}
		d.Seqs[kept] = d.Seqs[i]
		d.Vecs[kept] = d.Vecs[i]
		kept++
	}
	dropped := n - kept
	d.Seqs = append(d.Seqs[:kept], d.Seqs[n:]...)
	d.Vecs = append(d.Vecs[:kept], d.Vecs[n:]...)
	return dropped
}

// Check enforces the pairing invariant.
func (d *Dataset) Check() error {
	if len(d.Seqs) != len(d.Vecs) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(d.Seqs), len(d.Vecs))
	}
	return nil
}
