package models

// Area represents inclusive cell coordinate bounds.
type Area struct {
	// R1 is the start row (0-based).
	R1 int `json:"r1"`
	// C1 is the start column (0-based).
	C1 int `json:"c1"`
	// R2 is the end row (0-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (0-based, inclusive).
	C2 int `json:"c2"`
}

// AreaBetween returns the rectangle whose corners are a and b, regardless of
// which corner comes first.
func AreaBetween(a, b Coord) Area {
	return Area{
		R1: min(a.Row, b.Row),
		C1: min(a.Col, b.Col),
		R2: max(a.Row, b.Row),
		C2: max(a.Col, b.Col),
	}
}

// BoundsOf returns the smallest area containing every coordinate.
// ok is false when coords is empty.
func BoundsOf(coords []Coord) (area Area, ok bool) {
	for i, c := range coords {
		if i == 0 {
			area = Area{R1: c.Row, C1: c.Col, R2: c.Row, C2: c.Col}
			continue
		}
		area.R1 = min(area.R1, c.Row)
		area.C1 = min(area.C1, c.Col)
		area.R2 = max(area.R2, c.Row)
		area.C2 = max(area.C2, c.Col)
	}
	return area, len(coords) > 0
}

// Rows returns the number of rows spanned.
func (a Area) Rows() int { return a.R2 - a.R1 + 1 }

// Cols returns the number of columns spanned.
func (a Area) Cols() int { return a.C2 - a.C1 + 1 }

// Size returns the number of slots in the area.
func (a Area) Size() int { return a.Rows() * a.Cols() }

// Contains reports whether c lies inside the area.
func (a Area) Contains(c Coord) bool {
	return c.Row >= a.R1 && c.Row <= a.R2 && c.Col >= a.C1 && c.Col <= a.C2
}

// BottomRight returns the last corner.
func (a Area) BottomRight() Coord { return Coord{Row: a.R2, Col: a.C2} }

// Coords lists every coordinate in the area in row-major order.
func (a Area) Coords() []Coord {
	out := make([]Coord, 0, a.Size())
	for r := a.R1; r <= a.R2; r++ {
		for c := a.C1; c <= a.C2; c++ {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}
