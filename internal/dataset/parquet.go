package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

// ReadParquet reads a listing table from a Parquet file. Null cells are absent.
func ReadParquet(path string) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	t, err := decodeParquet(f, stat.Size(), path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

func decodeParquet(r io.ReaderAt, size int64, source string) (*Table, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	// leaf column index -> table column index; nested columns are skipped
	leaves := pf.Schema().Columns()
	t := &Table{Source: source, Columns: make(map[string]int, len(leaves))}
	leafToCol := make(map[int]int, len(leaves))
	for i, path := range leaves {
		if len(path) != 1 {
			continue
		}
		if _, dup := t.Columns[path[0]]; dup {
			continue
		}
		leafToCol[i] = len(t.Columns)
		t.Columns[path[0]] = len(t.Columns)
	}

	for _, rg := range pf.RowGroups() {
		if err := readRowGroup(rg, leafToCol, len(t.Columns), t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func readRowGroup(rg parquet.RowGroup, leafToCol map[int]int, width int, t *Table) error {
	rows := parquet.NewRowGroupReader(rg)
	buf := make([]parquet.Row, 256)

	for {
		n, readErr := rows.ReadRows(buf)
		for i := 0; i < n; i++ {
			cells := make([]*string, width)
			for _, v := range buf[i] {
				col, ok := leafToCol[v.Column()]
				if !ok || v.IsNull() {
					continue
				}
				s := v.String()
				if s == "" {
					continue
				}
				cells[col] = &s
			}
			t.Rows = append(t.Rows, cells)
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("read rows: %w", readErr)
		}
	}
}
