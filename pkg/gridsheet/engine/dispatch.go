package engine

import (
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/clipboard"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Dispatch applies cmd to s and returns the resulting state. It never fails:
// commands that cannot apply (an empty undo log, a non-numeric value for a
// number cell, an unknown command) return s unchanged.
func Dispatch(s State, cmd Command) State {
	switch c := cmd.(type) {
	case UpdateCell:
		return s.write(c, []models.Update{{At: c.At, Value: c.Value}})
	case MultiUpdate:
		return s.write(c, c.Updates)
	case Paste:
		return s.write(c, clipboard.Expand(c.Block, c.Targets))
	case AutoFill:
		return s.write(c, c.Updates)
	case SetSelection:
		return s.setSelection(c.Coords)
	case SetActive:
		return s.setActive(c)
	case Copy:
		return s
	case SortColumn:
		return s.sortColumn(c)
	case UpdateSortDirection:
		return s.setDirection(c.Direction)
	case DeclareType:
		return s.declare(c)
	case Undo:
		return s.undoLast()
	case Redo:
		return s.redoLast()
	default:
		return s
	}
}

// DispatchAll applies the commands in order.
func DispatchAll(s State, cmds ...Command) State {
	for _, cmd := range cmds {
		s = Dispatch(s, cmd)
	}
	return s
}

// CopySelection serializes the current selection for the clipboard.
func CopySelection(s State) clipboard.Block {
	return clipboard.Serialize(s.cells, s.selection)
}

func (s State) write(cmd Command, updates []models.Update) State {
	if len(updates) == 0 {
		return s
	}
	cells := s.cells.Clone()
	var changes []change
	for _, u := range updates {
		if !u.At.Valid() {
			continue
		}
		before, had := cells.Lookup(u.At)
		if !cells.Write(u.At, u.Value) {
			continue
		}
		after, _ := cells.Lookup(u.At)
		changes = append(changes, change{before: before, hadBefore: had, after: after})
	}
	if len(changes) == 0 {
		return s
	}
	return s.record(cells, Edit{Command: cmd, changes: changes})
}

func (s State) sortColumn(c SortColumn) State {
	if c.Column < 0 {
		return s
	}
	dir := c.Direction
	switch dir {
	case models.Ascending, models.Descending:
	case "":
		dir = s.SortDirection()
	default:
		return s
	}
	sorted, ok := matrix.SortRows(s.cells, c.Column, dir, c.Missing)
	if !ok {
		return s
	}
	c.Direction = dir
	return s.record(sorted, Edit{Command: c, snapshot: s.cells, hasSnapshot: true})
}

func (s State) setSelection(coords []models.Coord) State {
	valid := make([]models.Coord, 0, len(coords))
	for _, at := range coords {
		if at.Valid() {
			valid = append(valid, at)
		}
	}
	s.selection = models.UniqueCoords(valid)
	s.selected = make(map[models.Coord]struct{}, len(s.selection))
	for _, at := range s.selection {
		s.selected[at] = struct{}{}
	}
	s.rev++
	return s
}

func (s State) setActive(c SetActive) State {
	if c.Clear {
		if !s.hasActive {
			return s
		}
		s.active, s.hasActive = models.Coord{}, false
		s.rev++
		return s
	}
	if !c.At.Valid() {
		return s
	}
	s.active, s.hasActive = c.At, true
	s.anchor, s.hasAnchor = c.At, true
	s.rev++
	return s
}

func (s State) setDirection(d models.SortDirection) State {
	if d != models.Ascending && d != models.Descending {
		return s
	}
	if d == s.SortDirection() {
		return s
	}
	s.direction = d
	s.rev++
	return s
}

func (s State) declare(c DeclareType) State {
	if !c.At.Valid() || (c.Type != models.TypeText && c.Type != models.TypeNumber) {
		return s
	}
	cells := s.cells.Clone()
	if !cells.Declare(c.At, c.Type) {
		return s
	}
	s.cells = cells
	// Redo entries were recorded against the undeclared cell.
	s.redo = nil
	s.rev++
	return s
}
