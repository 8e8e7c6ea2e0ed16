package dataset

import "kinvec/internal/mtrand"

// DefaultSeed reproduces the published training files.
const DefaultSeed uint64 = 0

// Permutation returns a seeded permutation of [0, n). It is the order
// random.seed(seed); random.shuffle(list(range(n))) yields in CPython, so the
// same seed gives the same rows on every platform.
func Permutation(n int, seed uint64) []int {
	return mtrand.New(seed).Perm(n)
}

// Shuffle reorders both columns by the same seeded permutation: row i of the
// result is row perm[i] of the input. Call Check first.
func (d *Dataset) Shuffle(seed uint64) {
	perm := Permutation(len(d.Seqs), seed)
	seqs := make([]string, len(perm))
	vecs := make([]string, len(perm))
	for i, p := range perm {
		seqs[i] = d.Seqs[p]
		vecs[i] = d.Vecs[p]
	}
	d.Seqs, d.Vecs = seqs, vecs
}
