// Package table reads the flat CSV tables the pipeline consumes, selecting
// columns by header name.
package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrMissingColumn = errors.New("no such column")

// ReadColumns reads a CSV stream with a header row and returns, for every
// record, the values of cols in the order requested. Cells are returned as
// written. Empty cells, and cells missing from a short row, are "" so callers
// can treat them as null. A row longer than the header is an error.
func ReadColumns(r io.Reader, cols ...string) ([][]string, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty table: no header")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	pos, err := locate(header, cols)
	if err != nil {
		return nil, err
	}
	width := len(header)

	var out [][]string
	rowNum := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		if len(rec) > width {
			return nil, fmt.Errorf("read row %d: %d fields, header has %d", rowNum, len(rec), width)
		}
		vals := make([]string, len(pos))
		for i, p := range pos {
			if p < len(rec) {
				vals[i] = rec[p]
			}
		}
		out = append(out, vals)
	}
	return out, nil
}

// ReadColumnsFile is ReadColumns over a file on disk; errors carry the path.
func ReadColumnsFile(path string, cols ...string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	rows, err := ReadColumns(fh, cols...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Column reads a single named column from path.
func Column(path, col string) ([]string, error) {
	rows, err := ReadColumnsFile(path, col)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[0]
	}
	return out, nil
}

func locate(header, cols []string) ([]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	pos := make([]int, len(cols))
	for i, c := range cols {
		p, ok := index[c]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, c)
		}
		pos[i] = p
	}
	return pos, nil
}
