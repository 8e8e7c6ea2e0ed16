// Package family assigns each kinase a protein family through the two
// reference tables (kinase → accession, accession → family) and turns the
// distinct families into one-hot vectors.
//
// The family order, and therefore each family's vector index, is the order in
// which families are first resolved while walking the kinases. Callers that
// feed kinases in a fixed order get the same vectors on every run.
package family
