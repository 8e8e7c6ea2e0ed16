package dataset

// Stats summarizes one Format call.
type Stats struct {
	Rows    int
	Dropped int
	Kept    int
}

// Format labels, filters, checks and shuffles recs in one go.
func Format(recs []Record, lookup map[string]string, seed uint64) (*Dataset, Stats, error) {
	d, err := Label(recs, lookup)
	if err != nil {
		return nil, Stats{}, err
	}
	st := Stats{Rows: len(recs)}
	st.Dropped = d.Filter()
	if err := d.Check(); err != nil {
		return nil, st, err
	}
	d.Shuffle(seed)
	st.Kept = d.Len()
	return d, st, nil
}
