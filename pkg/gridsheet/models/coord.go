// Package models defines the data structures shared by the grid engine and its collaborators.
package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Coord addresses a single grid slot. Rows and columns are zero-based.
type Coord struct {
	// Row is the row index (0-based).
	Row int `json:"r"`
	// Col is the column index (0-based).
	Col int `json:"c"`
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Valid reports whether both indices are non-negative.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Col >= 0
}

// Key renders the coordinate in the "{row}-{column}" form used by clipboard,
// file and UI collaborators.
func (c Coord) Key() string {
	return strconv.Itoa(c.Row) + "-" + strconv.Itoa(c.Col)
}

func (c Coord) String() string {
	return c.Key()
}

// Before reports whether c precedes o in row-major order.
func (c Coord) Before(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// ParseKey parses a "{row}-{column}" key.
func ParseKey(key string) (Coord, error) {
	row, col, ok := strings.Cut(strings.TrimSpace(key), "-")
	if !ok {
		return Coord{}, fmt.Errorf("invalid cell key %q: missing separator", key)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid cell key %q: row: %w", key, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid cell key %q: column: %w", key, err)
	}
	coord := Coord{Row: r, Col: c}
	if !coord.Valid() {
		return Coord{}, fmt.Errorf("invalid cell key %q: negative index", key)
	}
	return coord, nil
}

// SortCoords orders coords row-major in place.
func SortCoords(coords []Coord) {
	sort.SliceStable(coords, func(i, j int) bool {
		return coords[i].Before(coords[j])
	})
}

// UniqueCoords returns coords without duplicates, keeping the first
// occurrence of each.
func UniqueCoords(coords []Coord) []Coord {
	if len(coords) == 0 {
		return nil
	}
	seen := make(map[Coord]struct{}, len(coords))
	out := make([]Coord, 0, len(coords))
	for _, c := range coords {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
