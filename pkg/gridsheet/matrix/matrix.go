// Package matrix provides the sparse cell matrix owned by the grid engine and
// the row-remapping column sort.
package matrix

import (
	"maps"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Matrix is a sparse mapping from coordinate to cell. A coordinate with no
// stored cell reads as an empty text cell. The zero value is an empty matrix.
//
// Matrices published in an engine state are treated as immutable; the
// mutating methods are only called on fresh clones.
type Matrix struct {
	cells map[models.Coord]models.Cell
}

// New returns an empty matrix.
func New() Matrix {
	return Matrix{cells: make(map[models.Coord]models.Cell)}
}

// FromCells builds a matrix holding the given cells. Later cells win on
// duplicate coordinates.
func FromCells(cells ...models.Cell) Matrix {
	m := Matrix{cells: make(map[models.Coord]models.Cell, len(cells))}
	for _, c := range cells {
		if c.Type == "" {
			c.Type = models.TypeText
		}
		m.cells[c.At] = c
	}
	return m
}

// Len returns the number of stored cells.
func (m Matrix) Len() int {
	return len(m.cells)
}

// Lookup returns the stored cell at the coordinate.
func (m Matrix) Lookup(at models.Coord) (models.Cell, bool) {
	c, ok := m.cells[at]
	return c, ok
}

// Read returns the cell at the coordinate, or the implicit empty cell.
func (m Matrix) Read(at models.Coord) models.Cell {
	if c, ok := m.cells[at]; ok {
		return c
	}
	return models.EmptyCell(at)
}

// Value is shorthand for Read(at).Value.
func (m Matrix) Value(at models.Coord) string {
	return m.cells[at].Value
}

// Coords returns the stored coordinates in row-major order.
func (m Matrix) Coords() []models.Coord {
	out := make([]models.Coord, 0, len(m.cells))
	for at := range m.cells {
		out = append(out, at)
	}
	models.SortCoords(out)
	return out
}

// Cells returns the stored cells in row-major order.
func (m Matrix) Cells() []models.Cell {
	coords := m.Coords()
	out := make([]models.Cell, len(coords))
	for i, at := range coords {
		out[i] = m.cells[at]
	}
	return out
}

// Bounds returns the bounding box of the stored cells.
func (m Matrix) Bounds() (models.Area, bool) {
	coords := make([]models.Coord, 0, len(m.cells))
	for at := range m.cells {
		coords = append(coords, at)
	}
	return models.BoundsOf(coords)
}

// Clone returns an independent copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := Matrix{}
	if len(m.cells) == 0 {
		out.cells = make(map[models.Coord]models.Cell)
		return out
	}
	if err := deepcopy.Copy(&out.cells, m.cells); err != nil {
		// Cells are plain values, so a shallow map copy is a full copy.
		out.cells = maps.Clone(m.cells)
	}
	return out
}

// Equal reports whether both matrices store exactly the same cells.
func (m Matrix) Equal(o Matrix) bool {
	return maps.Equal(m.cells, o.cells)
}

// SameValues reports whether every coordinate reads the same value in both
// matrices, treating unstored coordinates as empty.
func (m Matrix) SameValues(o Matrix) bool {
	for at, c := range m.cells {
		if o.Read(at).Value != c.Value {
			return false
		}
	}
	for at, c := range o.cells {
		if m.Read(at).Value != c.Value {
			return false
		}
	}
	return true
}

// Write assigns value to the cell at the coordinate, keeping its declared
// type. It returns false and leaves the matrix unchanged when the cell is
// declared number and value does not parse as one.
func (m *Matrix) Write(at models.Coord, value string) bool {
	cell := m.Read(at)
	if !cell.Accepts(value) {
		return false
	}
	cell.Value = value
	m.Put(cell)
	return true
}

// Declare gives an unstored coordinate its declared type and reports whether
// it did. A stored cell keeps the type it already has.
func (m *Matrix) Declare(at models.Coord, typ models.CellType) bool {
	if _, ok := m.Lookup(at); ok {
		return false
	}
	m.Put(models.Cell{At: at, Type: typ})
	return true
}

// Put stores the cell as-is, bypassing the type check.
func (m *Matrix) Put(c models.Cell) {
	if m.cells == nil {
		m.cells = make(map[models.Coord]models.Cell)
	}
	if c.Type == "" {
		c.Type = models.TypeText
	}
	m.cells[c.At] = c
}

// Delete removes the stored cell at the coordinate.
func (m *Matrix) Delete(at models.Coord) {
	delete(m.cells, at)
}
