// Package csvio imports and exports grid cells as comma-separated text.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrEmpty indicates CSV input without any record.
var ErrEmpty = errors.New("csv: no records")

// Options configures CSV reading and writing.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// Header skips the first record on import.
	Header bool
}

// DefaultOptions returns comma-delimited options without a header row.
func DefaultOptions() Options {
	return Options{Comma: ','}
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// Import reads records from r and returns one update per field. Record i
// lands on row i (after the header, when skipped) and field j on column j.
// Short records are padded with "" up to the widest record.
func Import(r io.Reader, opts Options) ([]models.Update, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.comma()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read: %w", err)
	}
	if opts.Header && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	width := 0
	for _, rec := range records {
		width = max(width, len(rec))
	}

	updates := make([]models.Update, 0, len(records)*width)
	for row, rec := range records {
		for col := 0; col < width; col++ {
			value := ""
			if col < len(rec) {
				value = strings.TrimSpace(rec[col])
			}
			updates = append(updates, models.Update{At: models.At(row, col), Value: value})
		}
	}
	return updates, nil
}

// Export writes every slot from (0,0) to the bottom right corner of the
// occupied cells, empty ones included, row by row. An empty matrix writes
// nothing.
func Export(w io.Writer, m matrix.Matrix, opts Options) error {
	area, ok := m.Bounds()
	if !ok {
		return nil
	}
	cw := csv.NewWriter(w)
	cw.Comma = opts.comma()

	record := make([]string, area.C2+1)
	for row := 0; row <= area.R2; row++ {
		for col := range record {
			record[col] = m.Value(models.At(row, col))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: write row %d: %w", row, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}
