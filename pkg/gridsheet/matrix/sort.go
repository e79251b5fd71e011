package matrix

import (
	"sort"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// MissingPolicy decides what happens to occupied rows that have no cell in
// the sort column. A stored cell always takes part in the comparison, even
// when its value is empty, so "" sorts first in ascending order.
type MissingPolicy int

const (
	// BlanksLast sorts such rows after every row holding a cell in the
	// column, in both directions, keeping their original relative order.
	BlanksLast MissingPolicy = iota
	// ExemptMissing leaves such rows at their original index.
	ExemptMissing
)

// Compare orders two cell values. When both parse as numbers they compare
// numerically, otherwise as case-sensitive strings. Mixed columns therefore
// fall back to string order pair by pair.
func Compare(a, b string) int {
	fa, okA := models.ParseNumber(a)
	fb, okB := models.ParseNumber(b)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

type sortRow struct {
	row   int
	value string
	blank bool
}

// SortRows reorders the rows of m by the values in column col and returns
// the remapped matrix. Equal values keep their original relative order.
//
// Sorting permutes the occupied row indices among themselves: the k-th
// ranked row lands on the k-th smallest participating row index, so rows
// never collide with rows that stay put. ok is false, and m is returned
// unchanged, when the column holds no cell.
func SortRows(m Matrix, col int, dir models.SortDirection, missing MissingPolicy) (sorted Matrix, ok bool) {
	occupied := make(map[int]bool)
	hasColumn := false
	for at := range m.cells {
		occupied[at.Row] = true
		if at.Col == col {
			hasColumn = true
		}
	}
	if !hasColumn {
		return m, false
	}

	var rows []sortRow
	for row := range occupied {
		cell, stored := m.Lookup(models.At(row, col))
		if !stored && missing == ExemptMissing {
			continue
		}
		rows = append(rows, sortRow{
			row:   row,
			value: cell.Value,
			blank: !stored,
		})
	}
	// Original order is the tie breaker for the stable sort below.
	sort.Slice(rows, func(i, j int) bool { return rows[i].row < rows[j].row })

	slots := make([]int, len(rows))
	for i, r := range rows {
		slots[i] = r.row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.blank != b.blank {
			return b.blank
		}
		if a.blank {
			return false
		}
		c := Compare(a.value, b.value)
		if dir == models.Descending {
			return c > 0
		}
		return c < 0
	})

	mapping := make(map[int]int, len(rows))
	for rank, r := range rows {
		mapping[r.row] = slots[rank]
	}

	sorted = Matrix{cells: make(map[models.Coord]models.Cell, len(m.cells))}
	for at, cell := range m.cells {
		if row, moved := mapping[at.Row]; moved {
			cell.At = models.At(row, at.Col)
		}
		sorted.cells[cell.At] = cell
	}
	return sorted, true
}
