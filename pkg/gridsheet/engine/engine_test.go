package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/clipboard"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// TestEngineSuite runs the testify suite.
func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// EngineSuite checks the state machine properties of Dispatch.
type EngineSuite struct {
	suite.Suite
	base State
}

// SetupTest seeds a small grid before each test.
func (s *EngineSuite) SetupTest() {
	s.base = NewStateFrom(matrix.FromCells(
		models.Cell{At: models.At(0, 0), Value: "3"},
		models.Cell{At: models.At(1, 0), Value: "1"},
		models.Cell{At: models.At(2, 0), Value: "2"},
		models.Cell{At: models.At(0, 1), Value: "c"},
		models.Cell{At: models.At(1, 1), Value: "a"},
		models.Cell{At: models.At(2, 1), Value: "b"},
		models.Cell{At: models.At(3, 3), Value: "42", Type: models.TypeNumber},
	))
}

func (s *EngineSuite) value(st State, row, col int) string {
	return st.Cells().Read(models.At(row, col)).Value
}

// TestSuite_InitialState checks the session start values.
func (s *EngineSuite) TestSuite_InitialState() {
	st := NewState()
	s.Equal(0, st.Cells().Len())
	s.Empty(st.Selection())
	_, ok := st.Active()
	s.False(ok)
	s.False(st.CanUndo())
	s.False(st.CanRedo())
	s.Equal(models.Ascending, st.SortDirection())
}

// TestSuite_UndoInvertsEveryLoggedCommand applies each undoable command and
// checks that one undo restores the matrix exactly.
func (s *EngineSuite) TestSuite_UndoInvertsEveryLoggedCommand() {
	cmds := map[string]Command{
		"update":     UpdateCell{At: models.At(0, 0), Value: "x"},
		"update new": UpdateCell{At: models.At(9, 9), Value: "x"},
		"multi": MultiUpdate{Updates: []models.Update{
			{At: models.At(0, 1), Value: "p"},
			{At: models.At(5, 5), Value: "q"},
			{At: models.At(0, 1), Value: "r"},
		}},
		"paste":     Paste{Targets: models.Area{R1: 0, C1: 0, R2: 1, C2: 1}.Coords(), Block: clipboard.Block{{"a", "b"}, {"c", "d"}}},
		"autofill":  AutoFillFrom(s.base, models.At(0, 1), models.At(4, 2)),
		"sort":      SortColumn{Column: 0, Direction: models.Ascending},
		"sort desc": SortColumn{Column: 1, Direction: models.Descending},
	}
	for name, cmd := range cmds {
		applied := Dispatch(s.base, cmd)
		s.Require().True(applied.CanUndo(), name)
		s.False(applied.Cells().Equal(s.base.Cells()), "%s should change cells", name)

		undone := Dispatch(applied, Undo{})
		s.True(undone.Cells().Equal(s.base.Cells()), "%s: undo should restore cells", name)
		s.False(undone.CanUndo(), name)
		s.True(undone.CanRedo(), name)

		redone := Dispatch(undone, Redo{})
		s.True(redone.Cells().Equal(applied.Cells()), "%s: redo should reapply", name)
		s.Len(redone.UndoLog(), 1, name)
		s.Empty(redone.RedoLog(), name)
	}
}

// TestSuite_UndoRedoAlongTheLog walks the whole history back and forth.
func (s *EngineSuite) TestSuite_UndoRedoAlongTheLog() {
	st := DispatchAll(s.base,
		UpdateCell{At: models.At(0, 0), Value: "10"},
		SortColumn{Column: 0},
		MultiUpdate{Updates: []models.Update{{At: models.At(7, 0), Value: "z"}}},
		SortColumn{Column: 1, Direction: models.Descending},
		Paste{Targets: []models.Coord{models.At(0, 0), models.At(0, 1)}, Block: clipboard.Block{{"k"}}},
	)
	s.Len(st.UndoLog(), 5)
	final := st.Cells()

	var history []matrix.Matrix
	cur := st
	for cur.CanUndo() {
		history = append(history, cur.Cells())
		cur = Dispatch(cur, Undo{})
	}
	s.True(cur.Cells().Equal(s.base.Cells()))
	s.Len(cur.RedoLog(), 5)

	for i := len(history) - 1; i >= 0; i-- {
		cur = Dispatch(cur, Redo{})
		s.True(cur.Cells().Equal(history[i]), "redo step %d", i)
	}
	s.True(cur.Cells().Equal(final))
	s.False(cur.CanRedo())
}

// TestSuite_NewEditClearsRedo checks the linear history model.
func (s *EngineSuite) TestSuite_NewEditClearsRedo() {
	st := DispatchAll(s.base,
		UpdateCell{At: models.At(0, 0), Value: "a"},
		UpdateCell{At: models.At(0, 0), Value: "b"},
		UpdateCell{At: models.At(0, 0), Value: "c"},
		Undo{}, Undo{},
	)
	s.Len(st.RedoLog(), 2)
	s.Len(st.UndoLog(), 1)

	st = Dispatch(st, UpdateCell{At: models.At(1, 1), Value: "new"})
	s.Empty(st.RedoLog())
	s.Len(st.UndoLog(), 2)
}

// TestSuite_NonEditsDoNotTouchHistory checks unlogged commands.
func (s *EngineSuite) TestSuite_NonEditsDoNotTouchHistory() {
	st := DispatchAll(s.base, UpdateCell{At: models.At(0, 0), Value: "a"}, Undo{})
	s.Require().Len(st.RedoLog(), 1)

	st = DispatchAll(st,
		SetSelection{Coords: []models.Coord{models.At(0, 0)}},
		SetActive{At: models.At(0, 0)},
		Copy{},
		UpdateSortDirection{Direction: models.Descending},
		DeclareType{At: models.At(0, 0), Type: models.TypeNumber},
	)
	s.Len(st.RedoLog(), 1)
	s.Equal(models.TypeText, st.Cells().Read(models.At(0, 0)).Type, "stored cells keep their type")
	s.Empty(st.UndoLog())
	s.Equal(models.Descending, st.SortDirection())
}

// TestSuite_TypeGuard checks that rejected writes leave state and logs alone.
func (s *EngineSuite) TestSuite_TypeGuard() {
	st := DispatchAll(s.base, UpdateCell{At: models.At(0, 0), Value: "a"}, UpdateCell{At: models.At(0, 0), Value: "b"}, Undo{})
	undo, redo := st.UndoLog(), st.RedoLog()

	next := Dispatch(st, UpdateCell{At: models.At(3, 3), Value: "abc"})
	s.Equal("42", s.value(next, 3, 3))
	s.Equal(undo, next.UndoLog())
	s.Equal(redo, next.RedoLog())
	s.Equal(st.Revision(), next.Revision())

	next = Dispatch(st, UpdateCell{At: models.At(3, 3), Value: "7"})
	s.Equal("7", s.value(next, 3, 3))
	s.Equal(models.TypeNumber, next.Cells().Read(models.At(3, 3)).Type)
}

// TestSuite_NonFiniteNumbersRejected checks that NaN and infinities fail the guard.
func (s *EngineSuite) TestSuite_NonFiniteNumbersRejected() {
	for _, v := range []string{"NaN", "nan", "Inf", "+Inf", "-infinity"} {
		next := Dispatch(s.base, UpdateCell{At: models.At(3, 3), Value: v})
		s.Equal("42", s.value(next, 3, 3), v)
		s.Empty(next.UndoLog(), v)
		s.Equal(s.base.Revision(), next.Revision(), v)
	}
}

// TestSuite_DeclareDropsRedo checks that a declaration between undo and redo
// cannot be overwritten by the redone write.
func (s *EngineSuite) TestSuite_DeclareDropsRedo() {
	at := models.At(6, 6)
	st := DispatchAll(s.base, UpdateCell{At: at, Value: "abc"}, Undo{})
	s.Require().True(st.CanRedo())

	st = Dispatch(st, DeclareType{At: at, Type: models.TypeNumber})
	s.False(st.CanRedo())

	st = DispatchAll(st, Redo{}, Undo{})
	cell, ok := st.Cells().Lookup(at)
	s.Require().True(ok, "declared cell must survive redo and undo")
	s.Equal(models.TypeNumber, cell.Type)
	s.Equal("", cell.Value)

	st = Dispatch(st, UpdateCell{At: at, Value: "abc"})
	s.Equal("", s.value(st, 6, 6))
}

// TestSuite_MultiUpdateSkipsPerEntry checks that the guard is local to each write.
func (s *EngineSuite) TestSuite_MultiUpdateSkipsPerEntry() {
	st := Dispatch(s.base, MultiUpdate{Updates: []models.Update{
		{At: models.At(3, 3), Value: "nope"},
		{At: models.At(0, 0), Value: "yes"},
	}})
	s.Equal("42", s.value(st, 3, 3))
	s.Equal("yes", s.value(st, 0, 0))
	s.Equal([]models.Coord{models.At(0, 0)}, st.UndoLog()[0].Coords())

	all := Dispatch(s.base, MultiUpdate{Updates: []models.Update{{At: models.At(3, 3), Value: "nope"}}})
	s.False(all.CanUndo(), "a multi update that writes nothing is not logged")
}

// TestSuite_EmptyLogsAreNoOps checks the empty-log error class.
func (s *EngineSuite) TestSuite_EmptyLogsAreNoOps() {
	st := Dispatch(s.base, Undo{})
	s.Equal(s.base.Revision(), st.Revision())
	st = Dispatch(st, Redo{})
	s.Equal(s.base.Revision(), st.Revision())
	s.True(st.Cells().Equal(s.base.Cells()))
}

// TestSuite_BroadcastPaste checks the 1x1 block policy.
func (s *EngineSuite) TestSuite_BroadcastPaste() {
	targets := []models.Coord{models.At(0, 0), models.At(1, 1), models.At(6, 2)}
	st := Dispatch(s.base, Paste{Targets: targets, Block: clipboard.Block{{"v"}}})
	for _, at := range targets {
		s.Equal("v", st.Cells().Read(at).Value)
	}
}

// TestSuite_StructuredPaste checks the row-major block policy.
func (s *EngineSuite) TestSuite_StructuredPaste() {
	targets := models.Area{R1: 4, C1: 4, R2: 5, C2: 5}.Coords()
	st := Dispatch(s.base, Paste{Targets: targets, Block: clipboard.Block{{"a", "b"}, {"c", "d"}}})
	got := make([]string, len(targets))
	for i, at := range targets {
		got[i] = st.Cells().Read(at).Value
	}
	s.Equal([]string{"a", "b", "c", "d"}, got)
}

// TestSuite_PasteSkipsNumberCells checks typed writes during paste.
func (s *EngineSuite) TestSuite_PasteSkipsNumberCells() {
	st := Dispatch(s.base, Paste{Targets: []models.Coord{models.At(3, 3), models.At(3, 4)}, Block: clipboard.Block{{"txt"}}})
	s.Equal("42", s.value(st, 3, 3))
	s.Equal("txt", s.value(st, 3, 4))
}

// TestSuite_SortIsStable checks row order after sorting with ties.
func (s *EngineSuite) TestSuite_SortIsStable() {
	st := NewStateFrom(matrix.FromCells(
		models.Cell{At: models.At(0, 0), Value: "3"}, models.Cell{At: models.At(0, 1), Value: "first"},
		models.Cell{At: models.At(1, 0), Value: "1"}, models.Cell{At: models.At(1, 1), Value: "one"},
		models.Cell{At: models.At(2, 0), Value: "3"}, models.Cell{At: models.At(2, 1), Value: "second"},
		models.Cell{At: models.At(3, 0), Value: "2"}, models.Cell{At: models.At(3, 1), Value: "two"},
	))
	st = Dispatch(st, SortColumn{Column: 0})
	got := []string{s.value(st, 0, 1), s.value(st, 1, 1), s.value(st, 2, 1), s.value(st, 3, 1)}
	s.Equal([]string{"one", "two", "first", "second"}, got)
}

// TestSuite_SortUsesStateDirection checks the direction default.
func (s *EngineSuite) TestSuite_SortUsesStateDirection() {
	st := DispatchAll(s.base, UpdateSortDirection{Direction: models.Descending}, SortColumn{Column: 0})
	s.Equal("3", s.value(st, 0, 0))
	s.Equal("1", s.value(st, 2, 0))
	s.Equal(models.Descending, st.UndoLog()[0].Command.(SortColumn).Direction)
}

// TestSuite_SortEmptyColumnIsNoOp checks that sorting nothing is not logged.
func (s *EngineSuite) TestSuite_SortEmptyColumnIsNoOp() {
	st := Dispatch(s.base, SortColumn{Column: 12})
	s.False(st.CanUndo())
	s.Equal(s.base.Revision(), st.Revision())
}

// TestSuite_PreviousStatesAreUntouched checks that Dispatch never mutates its input.
func (s *EngineSuite) TestSuite_PreviousStatesAreUntouched() {
	before := s.base.Cells().Clone()
	a := Dispatch(s.base, UpdateCell{At: models.At(0, 0), Value: "changed"})
	b := Dispatch(a, SortColumn{Column: 1})
	_ = Dispatch(b, Undo{})

	s.True(s.base.Cells().Equal(before))
	s.Equal("changed", s.value(a, 0, 0))
	s.Len(a.UndoLog(), 1)
	s.Len(b.UndoLog(), 2)
}
