package engine

import (
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/clipboard"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Command is a request to change the grid state. The set of commands is
// closed; Dispatch ignores anything it does not recognize.
type Command interface {
	// Name identifies the command kind in logs.
	Name() string
	command()
}

// UpdateCell writes one value.
type UpdateCell struct {
	At    models.Coord
	Value string
}

// MultiUpdate writes several values as one undoable edit. Entries rejected
// by a number cell are skipped individually.
type MultiUpdate struct {
	Updates []models.Update
}

// SetSelection replaces the selection.
type SetSelection struct {
	Coords []models.Coord
}

// SetActive moves the focus and the range anchor to At. Clear removes the
// focus instead.
type SetActive struct {
	At    models.Coord
	Clear bool
}

// Copy leaves the state unchanged; the copied block is read with
// CopySelection.
type Copy struct{}

// Paste expands Block onto Targets.
type Paste struct {
	Targets []models.Coord
	Block   clipboard.Block
}

// AutoFill writes drag-fill values. Build it with AutoFillFrom.
type AutoFill struct {
	Updates []models.Update
}

// SortColumn reorders rows by the values in Column.
type SortColumn struct {
	Column    int
	Direction models.SortDirection
	Missing   matrix.MissingPolicy
}

// UpdateSortDirection sets the direction used by later sorts.
type UpdateSortDirection struct {
	Direction models.SortDirection
}

// DeclareType gives an empty coordinate its declared type. It does not
// enter the undo history, but a declaration that creates a cell drops the
// redo history.
type DeclareType struct {
	At   models.Coord
	Type models.CellType
}

// Undo reverts the most recent edit.
type Undo struct{}

// Redo reapplies the most recently undone edit.
type Redo struct{}

func (UpdateCell) Name() string          { return "update_cell" }
func (MultiUpdate) Name() string         { return "multi_update" }
func (SetSelection) Name() string        { return "set_selection" }
func (SetActive) Name() string           { return "set_active" }
func (Copy) Name() string                { return "copy" }
func (Paste) Name() string               { return "paste" }
func (AutoFill) Name() string            { return "auto_fill" }
func (SortColumn) Name() string          { return "sort_column" }
func (UpdateSortDirection) Name() string { return "update_sort_direction" }
func (DeclareType) Name() string         { return "declare_type" }
func (Undo) Name() string                { return "undo" }
func (Redo) Name() string                { return "redo" }

func (UpdateCell) command()          {}
func (MultiUpdate) command()         {}
func (SetSelection) command()        {}
func (SetActive) command()           {}
func (Copy) command()                {}
func (Paste) command()               {}
func (AutoFill) command()            {}
func (SortColumn) command()          {}
func (UpdateSortDirection) command() {}
func (DeclareType) command()         {}
func (Undo) command()                {}
func (Redo) command()                {}
