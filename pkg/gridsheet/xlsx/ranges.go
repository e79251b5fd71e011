package xlsx

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// CellName converts a zero-based coordinate to A1 notation.
func CellName(at models.Coord) string {
	name, _ := excelize.CoordinatesToCellName(at.Col+1, at.Row+1)
	return name
}

// ParseCell parses an A1 cell name such as "B2" or "$B$2" into a zero-based
// coordinate.
func ParseCell(name string) (models.Coord, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), "$", "")
	col, row, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return models.Coord{}, err
	}
	return models.At(row-1, col-1), nil
}

// ParseRange parses a range string like $A$1:$D$10 into a zero-based area.
// A single cell name yields a one-cell area, and reversed corners are
// normalized.
func ParseRange(rangeStr string) (models.Area, error) {
	// Remove sheet qualifier
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return models.Area{}, fmt.Errorf("invalid range %q", rangeStr)
	}

	start, err := ParseCell(parts[0])
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	end := start
	if len(parts) == 2 {
		if end, err = ParseCell(parts[1]); err != nil {
			return models.Area{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
		}
	}
	return models.AreaBetween(start, end), nil
}
