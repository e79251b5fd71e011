package gridsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates a file extension or format gridsheet cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrMalformedImport indicates source data that cannot be parsed into rows
// and columns.
var ErrMalformedImport = errors.New("malformed import")

// ImportError represents a failure reading grid data from an external source.
type ImportError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import error in %q (%s): %v", e.Path, e.Format, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Is reports parse failures as ErrMalformedImport. Missing files and
// unsupported formats are not malformed data.
func (e *ImportError) Is(target error) bool {
	if target != ErrMalformedImport {
		return false
	}
	return !errors.Is(e.Err, ErrFileNotFound) && !errors.Is(e.Err, ErrUnsupportedFormat)
}

// NewImportError creates a new ImportError.
func NewImportError(path string, format Format, err error) *ImportError {
	return &ImportError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}
