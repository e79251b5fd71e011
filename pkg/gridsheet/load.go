package gridsheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/csvio"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/engine"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/output"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/xlsx"
)

// DetectFormat returns the format for path, preferring an explicit override.
func DetectFormat(path string, override Format) (Format, error) {
	if override != "" {
		switch override {
		case FormatCSV, FormatXLSX, FormatJSON:
			return override, nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, override)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads a CSV or XLSX file into a fresh session state. The loaded
// cells are the baseline: the undo log starts empty.
func Load(path string, opts Options) (engine.State, error) {
	format, err := DetectFormat(path, opts.Format)
	if err != nil {
		return engine.State{}, NewImportError(path, format, err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return engine.State{}, NewImportError(path, format, fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	var (
		updates []models.Update
		numbers []models.Coord
	)
	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return engine.State{}, NewImportError(path, format, err)
		}
		defer f.Close()
		if updates, err = csvio.Import(f, opts.CSV); err != nil {
			return engine.State{}, NewImportError(path, format, err)
		}
	case FormatXLSX:
		f, err := xlsx.Open(path)
		if err != nil {
			return engine.State{}, NewImportError(path, format, err)
		}
		defer f.Close()
		sheet, err := xlsx.ReadSheet(f, opts.Sheet)
		if err != nil {
			return engine.State{}, NewImportError(path, format, err)
		}
		updates = sheet.Updates
		if opts.ShouldInferNumbers() {
			numbers = sheet.Numbers
		}
	default:
		return engine.State{}, NewImportError(path, format, fmt.Errorf("%w: cannot load %s", ErrUnsupportedFormat, format))
	}

	return Baseline(updates, numbers, opts.SortDirection), nil
}

// Baseline builds a state holding the given values, with numbers declared
// as number cells first, and an empty history.
func Baseline(updates []models.Update, numbers []models.Coord, dir models.SortDirection) engine.State {
	m := matrix.New()
	for _, at := range numbers {
		m.Declare(at, models.TypeNumber)
	}
	for _, u := range updates {
		if u.At.Valid() {
			m.Write(u.At, u.Value)
		}
	}
	return engine.Dispatch(engine.NewStateFrom(m), engine.UpdateSortDirection{Direction: dir})
}

// Save writes st to path in the format given by opts or the extension.
func Save(path string, st engine.State, opts Options) error {
	format, err := DetectFormat(path, opts.Format)
	if err != nil {
		return err
	}
	if format == FormatXLSX {
		return xlsx.Save(path, opts.Sheet, st.Cells())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, filepath.Base(path), st, format, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders st to w in the given format.
func Write(w io.Writer, st engine.State, format Format, opts Options) error {
	return write(w, "", st, format, opts)
}

func write(w io.Writer, name string, st engine.State, format Format, opts Options) error {
	switch format {
	case FormatCSV:
		return csvio.Export(w, st.Cells(), opts.CSV)
	case FormatJSON:
		data, err := output.ToJSON(name, st, opts.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatXLSX:
		f, err := xlsx.Workbook(opts.Sheet, st.Cells())
		if err != nil {
			return err
		}
		defer f.Close()
		return f.Write(w)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
