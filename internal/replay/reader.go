package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ReadFile loads every row of a recording.
func ReadFile(path string) ([]TickRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[TickRow](pf)
	defer reader.Close()

	out := make([]TickRow, 0, reader.NumRows())
	buf := make([]TickRow, 128)
	for {
		n, err := reader.Read(buf)
		for _, row := range buf[:n] {
			row.Segments = bytes.Clone(row.Segments)
			out = append(out, row)
		}
		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet %s: %w", path, err)
		}
	}
	return out, nil
}
