package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellType is the declared type of a cell.
type CellType string

const (
	// TypeText accepts any value. It is the default for cells that were
	// never declared.
	TypeText CellType = "text"
	// TypeNumber only accepts values that parse as a number, or the empty
	// string.
	TypeNumber CellType = "number"
)

// ParseCellType parses "text" or "number".
func ParseCellType(s string) (CellType, error) {
	switch CellType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeText, "":
		return TypeText, nil
	case TypeNumber:
		return TypeNumber, nil
	default:
		return "", fmt.Errorf("invalid cell type %q (must be text or number)", s)
	}
}

// Cell is a stored grid cell.
type Cell struct {
	// At is the cell's coordinate.
	At Coord `json:"at"`
	// Value is the cell's content.
	Value string `json:"value"`
	// Type is the declared type constraining later writes.
	Type CellType `json:"type"`
}

// EmptyCell is the implicit cell at a coordinate with nothing stored.
func EmptyCell(at Coord) Cell {
	return Cell{At: at, Type: TypeText}
}

// Accepts reports whether value may be written to the cell.
func (c Cell) Accepts(value string) bool {
	if c.Type != TypeNumber {
		return true
	}
	if strings.TrimSpace(value) == "" {
		return true
	}
	_, ok := ParseNumber(value)
	return ok
}

// Number returns the numeric value of the cell, if it has one.
func (c Cell) Number() (float64, bool) {
	return ParseNumber(c.Value)
}

// ParseNumber parses s as a finite float64 after trimming surrounding
// spaces. The empty string, NaN and infinities are not numbers.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// TypedValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func TypedValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// FormatNumber renders f the way number cells store it.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Update is a single value assignment to a coordinate.
type Update struct {
	At    Coord  `json:"at"`
	Value string `json:"value"`
}
