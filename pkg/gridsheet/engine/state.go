// Package engine implements the grid state machine: a pure transition
// function that applies one command at a time to an immutable grid state and
// keeps the linear undo/redo history.
package engine

import (
	"slices"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// State is the whole grid session state. It is a value: Dispatch returns a
// new State and never modifies the one it was given.
type State struct {
	cells     matrix.Matrix
	selection []models.Coord
	selected  map[models.Coord]struct{}
	active    models.Coord
	hasActive bool
	anchor    models.Coord
	hasAnchor bool
	undo      []Edit
	redo      []Edit
	direction models.SortDirection
	rev       uint64
}

// NewState returns an empty grid with ascending sort.
func NewState() State {
	return State{cells: matrix.New(), direction: models.Ascending}
}

// NewStateFrom returns a state holding m with empty history.
func NewStateFrom(m matrix.Matrix) State {
	s := NewState()
	s.cells = m.Clone()
	return s
}

// Cells returns the cell matrix. Callers must not write to it.
func (s State) Cells() matrix.Matrix {
	return s.cells
}

// Selection returns the selected coordinates in submission order.
func (s State) Selection() []models.Coord {
	return slices.Clone(s.selection)
}

// IsSelected reports whether at is part of the selection.
func (s State) IsSelected(at models.Coord) bool {
	_, ok := s.selected[at]
	return ok
}

// Active returns the focused cell, if any.
func (s State) Active() (models.Coord, bool) {
	return s.active, s.hasActive
}

// Anchor returns the coordinate range selections extend from, if any.
func (s State) Anchor() (models.Coord, bool) {
	return s.anchor, s.hasAnchor
}

// SortDirection returns the direction used by the next column sort.
func (s State) SortDirection() models.SortDirection {
	if s.direction == "" {
		return models.Ascending
	}
	return s.direction
}

// UndoLog returns the undoable edits, most recent last.
func (s State) UndoLog() []Edit {
	return slices.Clone(s.undo)
}

// RedoLog returns the redoable edits, most recently undone last.
func (s State) RedoLog() []Edit {
	return slices.Clone(s.redo)
}

// CanUndo reports whether Undo would change the state.
func (s State) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would change the state.
func (s State) CanRedo() bool { return len(s.redo) > 0 }

// Revision increases every time a command changes the state. Hosts can use
// it to skip redraws after absorbed commands.
func (s State) Revision() uint64 {
	return s.rev
}
