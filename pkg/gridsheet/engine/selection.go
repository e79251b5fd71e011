package engine

import (
	"slices"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// The helpers below compute selections the way a pointer-driven host does
// (plain click, shift-click, ctrl-click). Dispatch itself only stores the
// resulting set.

// Click focuses at and selects it alone.
func Click(at models.Coord) []Command {
	return []Command{
		SetSelection{Coords: []models.Coord{at}},
		SetActive{At: at},
	}
}

// ExtendTo selects the rectangle between the anchor and to. Without an
// anchor it selects to alone.
func ExtendTo(s State, to models.Coord) SetSelection {
	anchor, ok := s.Anchor()
	if !ok {
		return SetSelection{Coords: []models.Coord{to}}
	}
	return SetSelection{Coords: models.AreaBetween(anchor, to).Coords()}
}

// Toggle adds at to the selection, or removes it when already selected.
func Toggle(s State, at models.Coord) SetSelection {
	sel := s.Selection()
	if i := slices.Index(sel, at); i >= 0 {
		return SetSelection{Coords: slices.Delete(sel, i, i+1)}
	}
	return SetSelection{Coords: append(sel, at)}
}

// SelectionBounds returns the bounding box of the selection; its bottom
// right corner carries the fill handle.
func SelectionBounds(s State) (models.Area, bool) {
	return models.BoundsOf(s.selection)
}

// EditSelection writes value to the active cell, or to every selected cell
// when more than one is selected.
func EditSelection(s State, value string) Command {
	if len(s.selection) > 1 {
		updates := make([]models.Update, len(s.selection))
		for i, at := range s.selection {
			updates[i] = models.Update{At: at, Value: value}
		}
		return MultiUpdate{Updates: updates}
	}
	at, ok := s.Active()
	if !ok && len(s.selection) == 1 {
		at, ok = s.selection[0], true
	}
	if !ok {
		return MultiUpdate{}
	}
	return UpdateCell{At: at, Value: value}
}
