package family

import (
	"encoding/csv"
	"io"
	"sort"

	"kinvec/internal/onehot"
	"kinvec/internal/table"
)

// Mapping table columns.
const (
	ColKinase = "Kinase"
	ColVector = "Vector"
)

// MappingFile is the default mapping table name.
const MappingFile = "kin_to_vec.csv"

// Row is one mapping entry. Family and Vector are empty for unresolved kinases.
// Vector holds the bracketed list form, e.g. "[0, 1]".
type Row struct {
	Kinase string
	Family string
	Vector string
}

func (r Row) Resolved() bool { return r.Vector != "" }

type Mapping []Row

// BuildMapping creates one row per kinase in res, vectors taken from enc.
// No row is dropped.
func BuildMapping(res *Resolution, enc *onehot.Encoder) Mapping {
	m := make(Mapping, 0, len(res.Kinases))
	for _, k := range res.Kinases {
		row := Row{Kinase: k}
		if f, ok := res.Family[k]; ok {
			row.Family = f
			if v, ok := enc.Encode(f); ok {
				row.Vector = v.String()
			}
		}
		m = append(m, row)
	}
	m.Sort()
	return m
}

// Sort orders rows by Vector descending, then Kinase ascending. Rows without
// a vector go last.
func (m Mapping) Sort() {
	sort.SliceStable(m, func(i, j int) bool { return lessRow(m[i], m[j]) })
}

func lessRow(a, b Row) bool {
	if a.Resolved() != b.Resolved() {
		return a.Resolved()
	}
	if a.Vector != b.Vector {
		return a.Vector > b.Vector
	}
	return a.Kinase < b.Kinase
}

// Lookup returns kinase → Vector text. A repeated kinase keeps its last row.
func (m Mapping) Lookup() map[string]string {
	out := make(map[string]string, len(m))
	for _, r := range m {
		out[r.Kinase] = r.Vector
	}
	return out
}

// WriteCSV writes the Kinase,Family,Vector table. Nulls are empty cells.
func (m Mapping) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColKinase, ColFamily, ColVector}); err != nil {
		return err
	}
	for _, r := range m {
		if err := cw.Write([]string{r.Kinase, r.Family, r.Vector}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadMapping parses a table written by WriteCSV. Only the Kinase and Vector
// columns are required.
func ReadMapping(r io.Reader) (Mapping, error) {
	rows, err := table.ReadColumns(r, ColKinase, ColVector)
	if err != nil {
		return nil, err
	}
	m := make(Mapping, 0, len(rows))
	for _, row := range rows {
		m = append(m, Row{Kinase: row[0], Vector: row[1]})
	}
	return m, nil
}
