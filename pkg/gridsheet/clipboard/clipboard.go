// Package clipboard converts grid selections to and from tab/newline
// delimited blocks.
package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrMalformedBlock indicates clipboard text that cannot be split into rows
// and columns.
var ErrMalformedBlock = errors.New("clipboard: malformed block")

// Block is a rectangular-ish block of values, indexed [row][column]. Rows
// may be ragged; missing positions read as "".
type Block [][]string

// Reader is the read side of a cell matrix.
type Reader interface {
	Read(at models.Coord) models.Cell
}

// Height returns the number of rows.
func (b Block) Height() int {
	return len(b)
}

// Width returns the width of the first row.
func (b Block) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Single reports whether the block holds exactly one value.
func (b Block) Single() bool {
	return len(b) == 1 && len(b[0]) == 1
}

// At returns the value at row r, column c, or "" outside the block.
func (b Block) At(r, c int) string {
	if r < 0 || r >= len(b) || c < 0 || c >= len(b[r]) {
		return ""
	}
	return b[r][c]
}

// String renders the block as tab-separated columns and newline-separated
// rows.
func (b Block) String() string {
	rows := make([]string, len(b))
	for i, row := range b {
		rows[i] = strings.Join(row, "\t")
	}
	return strings.Join(rows, "\n")
}

// Parse splits clipboard text into a block. One trailing newline is ignored
// and CRLF line endings are accepted.
func Parse(text string) (Block, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedBlock)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformedBlock)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	block := make(Block, len(lines))
	for i, line := range lines {
		block[i] = strings.Split(line, "\t")
	}
	return block, nil
}

// Serialize copies the selected cells out of r. A selection that exactly
// fills its bounding box yields a block of that shape. Any other selection
// degrades to a single row holding the values in selection order.
func Serialize(r Reader, selection []models.Coord) Block {
	selection = models.UniqueCoords(selection)
	area, ok := models.BoundsOf(selection)
	if !ok {
		return nil
	}

	if area.Size() != len(selection) {
		row := make([]string, len(selection))
		for i, at := range selection {
			row[i] = r.Read(at).Value
		}
		return Block{row}
	}

	block := make(Block, area.Rows())
	for i := range block {
		block[i] = make([]string, area.Cols())
		for j := range block[i] {
			block[i][j] = r.Read(models.At(area.R1+i, area.C1+j)).Value
		}
	}
	return block
}

// Expand maps a block onto target coordinates. Targets are taken in
// row-major order. A single-value block is broadcast to every target;
// otherwise target i receives block[i / width][i % width], where width is
// the block's first row width, and "" once the block runs out of rows.
func Expand(b Block, targets []models.Coord) []models.Update {
	width := b.Width()
	if width == 0 || len(targets) == 0 {
		return nil
	}
	targets = models.UniqueCoords(targets)
	models.SortCoords(targets)

	updates := make([]models.Update, len(targets))
	if b.Single() {
		for i, at := range targets {
			updates[i] = models.Update{At: at, Value: b[0][0]}
		}
		return updates
	}
	for i, at := range targets {
		updates[i] = models.Update{At: at, Value: b.At(i/width, i%width)}
	}
	return updates
}
