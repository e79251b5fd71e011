// Package gridsheet loads and saves grid sessions from spreadsheet files.
package gridsheet

import (
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/csvio"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Format is a supported file format.
type Format string

const (
	// FormatCSV is comma-separated text.
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatJSON is the grid state rendered as JSON (save only).
	FormatJSON Format = "json"
)

// Options configures loading and saving.
type Options struct {
	// Format overrides detection by file extension.
	Format Format
	// CSV configures CSV reading and writing.
	CSV csvio.Options
	// Sheet names the worksheet to read or write. Empty means the first
	// sheet on read and "Sheet1" on write.
	Sheet string
	// InferNumbers declares xlsx cells holding numbers as number cells.
	// If nil, defaults to true.
	InferNumbers *bool
	// SortDirection is the initial sort direction of a loaded state.
	SortDirection models.SortDirection
	// Pretty indents JSON output.
	Pretty bool
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		CSV:           csvio.DefaultOptions(),
		SortDirection: models.Ascending,
	}
}

// ShouldInferNumbers returns whether numeric xlsx cells become number cells.
func (o Options) ShouldInferNumbers() bool {
	if o.InferNumbers != nil {
		return *o.InferNumbers
	}
	return true
}
