package models

import (
	"fmt"
	"strings"
)

// SortDirection is the order used when sorting a column.
type SortDirection string

const (
	// Ascending sorts smallest first.
	Ascending SortDirection = "asc"
	// Descending sorts largest first.
	Descending SortDirection = "desc"
)

// ParseSortDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("invalid sort direction %q (must be asc or desc)", s)
	}
}

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}
