package engine

import (
	"slices"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Edit is an entry of the undo or redo log: the command that was applied
// and what is needed to invert it.
type Edit struct {
	// Command is the command as it was dispatched.
	Command Command

	changes []change

	// snapshot holds the matrix on the other side of a sort: the pre-sort
	// matrix while the edit sits in the undo log, the post-sort matrix
	// while it sits in the redo log.
	snapshot    matrix.Matrix
	hasSnapshot bool
}

type change struct {
	before    models.Cell
	hadBefore bool
	after     models.Cell
}

// Coords lists the coordinates the edit wrote, in application order. Sort
// edits report none.
func (e Edit) Coords() []models.Coord {
	out := make([]models.Coord, len(e.changes))
	for i, c := range e.changes {
		out[i] = c.after.At
	}
	return out
}

// invert returns the matrix with the edit reverted and the edit to push on
// the redo log.
func (e Edit) invert(cells matrix.Matrix) (matrix.Matrix, Edit) {
	if e.hasSnapshot {
		restored := e.snapshot
		e.snapshot = cells
		return restored, e
	}
	out := cells.Clone()
	for _, c := range slices.Backward(e.changes) {
		if c.hadBefore {
			out.Put(c.before)
		} else {
			out.Delete(c.after.At)
		}
	}
	return out, e
}

// reapply returns the matrix with the edit applied again and the edit to
// push back on the undo log.
func (e Edit) reapply(cells matrix.Matrix) (matrix.Matrix, Edit) {
	if e.hasSnapshot {
		restored := e.snapshot
		e.snapshot = cells
		return restored, e
	}
	out := cells.Clone()
	for _, c := range e.changes {
		out.Put(c.after)
	}
	return out, e
}

func push(log []Edit, e Edit) []Edit {
	return slices.Concat(log, []Edit{e})
}

func (s State) undoLast() State {
	if len(s.undo) == 0 {
		return s
	}
	last := s.undo[len(s.undo)-1]
	cells, redo := last.invert(s.cells)
	s.cells = cells
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = push(s.redo, redo)
	s.rev++
	return s
}

func (s State) redoLast() State {
	if len(s.redo) == 0 {
		return s
	}
	last := s.redo[len(s.redo)-1]
	cells, undo := last.reapply(s.cells)
	s.cells = cells
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = push(s.undo, undo)
	s.rev++
	return s
}

// record appends a newly applied edit and drops the redo history.
func (s State) record(cells matrix.Matrix, e Edit) State {
	s.cells = cells
	s.undo = push(s.undo, e)
	s.redo = nil
	s.rev++
	return s
}
