package engine

import "github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"

// FillSpan returns the rectangle swept by a fill drag from start to end.
func FillSpan(start, end models.Coord) models.Area {
	return models.AreaBetween(start, end)
}

// AutoFillFrom copies the anchor's current value to every other coordinate
// of the span between anchor and end. There is no sequence inference.
func AutoFillFrom(s State, anchor, end models.Coord) AutoFill {
	value := s.cells.Read(anchor).Value
	span := FillSpan(anchor, end).Coords()
	updates := make([]models.Update, 0, len(span))
	for _, at := range span {
		if at == anchor {
			continue
		}
		updates = append(updates, models.Update{At: at, Value: value})
	}
	return AutoFill{Updates: updates}
}
