// Package script replays YAML command files against a grid session.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/clipboard"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/engine"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/xlsx"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ErrNothingCopied indicates a paste without text before any copy step.
var ErrNothingCopied = errors.New("nothing copied")

// Op names a script operation.
type Op string

const (
	// OpUpdate writes value to cell.
	OpUpdate Op = "update"
	// OpMulti writes updates, plus value to every cell of range and cells,
	// as one edit.
	OpMulti Op = "multi"
	// OpSelect replaces the selection with range and cells.
	OpSelect Op = "select"
	// OpExtend selects the rectangle from the anchor to cell (shift-click).
	OpExtend Op = "extend"
	// OpToggle adds cell to the selection or removes it (ctrl-click).
	OpToggle Op = "toggle"
	// OpActive moves the focus to cell, or removes it with clear.
	OpActive Op = "active"
	// OpEdit writes value to the active cell, or to the whole selection
	// when more than one cell is selected.
	OpEdit Op = "edit"
	// OpDeclare gives an empty cell a type.
	OpDeclare Op = "declare"
	// OpCopy copies the selection for later paste steps.
	OpCopy Op = "copy"
	// OpPaste pastes text, or the last copy, onto range and cells or the
	// selection.
	OpPaste Op = "paste"
	// OpFill drags the fill handle from cell to to.
	OpFill Op = "fill"
	// OpSort sorts rows by column.
	OpSort Op = "sort"
	// OpDirection sets the sort direction, or toggles it when empty.
	OpDirection Op = "direction"
	// OpUndo reverts the last edit.
	OpUndo Op = "undo"
	// OpRedo reapplies the last undone edit.
	OpRedo Op = "redo"
)

// CellValue is one entry of a multi step.
type CellValue struct {
	Cell  string `yaml:"cell"`
	Value string `yaml:"value"`
}

// Step is one scripted operation. Cells are "{row}-{col}" keys or A1 names,
// ranges are two cells joined by ":".
type Step struct {
	Op        Op          `yaml:"op"`
	Cell      string      `yaml:"cell,omitempty"`
	Value     string      `yaml:"value,omitempty"`
	Cells     []string    `yaml:"cells,omitempty"`
	Range     string      `yaml:"range,omitempty"`
	Updates   []CellValue `yaml:"updates,omitempty"`
	Text      *string     `yaml:"text,omitempty"`
	To        string      `yaml:"to,omitempty"`
	Type      string      `yaml:"type,omitempty"`
	Column    string      `yaml:"column,omitempty"`
	Direction string      `yaml:"direction,omitempty"`
	Missing   string      `yaml:"missing,omitempty"`
	Clear     bool        `yaml:"clear,omitempty"`
}

// StepError reports the step a script stopped at.
type StepError struct {
	Index int
	Op    Op
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Parse decodes a YAML list of steps.
func Parse(r io.Reader) ([]Step, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var steps []Step
	if err := dec.Decode(&steps); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	return steps, nil
}

// Run dispatches steps to sess in order and returns the final state. It
// stops at the first step that cannot be turned into a command.
func Run(ctx context.Context, sess *engine.Session, steps []Step) (engine.State, error) {
	r := &runner{sess: sess}
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return sess.State(), err
		}
		if err := r.apply(ctx, step); err != nil {
			return sess.State(), &StepError{Index: i, Op: step.Op, Err: err}
		}
	}
	return sess.State(), nil
}

type runner struct {
	sess    *engine.Session
	copied  string
	hasCopy bool
}

func (r *runner) apply(ctx context.Context, step Step) error {
	if step.Op == OpCopy {
		r.copied, r.hasCopy = r.sess.Copy(ctx), true
		return nil
	}
	cmd, err := r.command(step)
	if err != nil {
		return err
	}
	r.sess.Dispatch(ctx, cmd)
	return nil
}

func (r *runner) command(step Step) (engine.Command, error) {
	st := r.sess.State()
	switch step.Op {
	case OpUpdate:
		at, err := ParseCoord(step.Cell)
		if err != nil {
			return nil, err
		}
		return engine.UpdateCell{At: at, Value: step.Value}, nil

	case OpMulti:
		var updates []models.Update
		for _, u := range step.Updates {
			at, err := ParseCoord(u.Cell)
			if err != nil {
				return nil, err
			}
			updates = append(updates, models.Update{At: at, Value: u.Value})
		}
		targets, err := targets(step)
		if err != nil {
			return nil, err
		}
		for _, at := range targets {
			updates = append(updates, models.Update{At: at, Value: step.Value})
		}
		return engine.MultiUpdate{Updates: updates}, nil

	case OpSelect:
		coords, err := targets(step)
		if err != nil {
			return nil, err
		}
		return engine.SetSelection{Coords: coords}, nil

	case OpExtend:
		at, err := ParseCoord(step.Cell)
		if err != nil {
			return nil, err
		}
		return engine.ExtendTo(st, at), nil

	case OpToggle:
		at, err := ParseCoord(step.Cell)
		if err != nil {
			return nil, err
		}
		return engine.Toggle(st, at), nil

	case OpEdit:
		return engine.EditSelection(st, step.Value), nil

	case OpActive:
		if step.Clear {
			return engine.SetActive{Clear: true}, nil
		}
		at, err := ParseCoord(step.Cell)
		if err != nil {
			return nil, err
		}
		return engine.SetActive{At: at}, nil

	case OpDeclare:
		at, err := ParseCoord(step.Cell)
		if err != nil {
			return nil, err
		}
		typ, err := models.ParseCellType(step.Type)
		if err != nil {
			return nil, err
		}
		return engine.DeclareType{At: at, Type: typ}, nil

	case OpPaste:
		text := r.copied
		if step.Text != nil {
			text = *step.Text
		} else if !r.hasCopy {
			return nil, ErrNothingCopied
		}
		block, err := clipboard.Parse(text)
		if err != nil {
			return nil, err
		}
		coords, err := targets(step)
		if err != nil {
			return nil, err
		}
		if len(coords) == 0 {
			coords = st.Selection()
		}
		return engine.Paste{Targets: coords, Block: block}, nil

	case OpFill:
		anchor, ok := fillHandle(st)
		if step.Cell != "" {
			at, err := ParseCoord(step.Cell)
			if err != nil {
				return nil, err
			}
			anchor, ok = at, true
		}
		if !ok {
			return nil, errors.New("fill needs a cell, a selection or an active cell")
		}
		end, err := ParseCoord(step.To)
		if err != nil {
			return nil, err
		}
		return engine.AutoFillFrom(st, anchor, end), nil

	case OpSort:
		col, err := ParseColumn(step.Column)
		if err != nil {
			return nil, err
		}
		var dir models.SortDirection
		if step.Direction != "" {
			if dir, err = models.ParseSortDirection(step.Direction); err != nil {
				return nil, err
			}
		}
		missing, err := parseMissing(step.Missing)
		if err != nil {
			return nil, err
		}
		return engine.SortColumn{Column: col, Direction: dir, Missing: missing}, nil

	case OpDirection:
		if step.Direction == "" {
			return engine.UpdateSortDirection{Direction: st.SortDirection().Toggle()}, nil
		}
		dir, err := models.ParseSortDirection(step.Direction)
		if err != nil {
			return nil, err
		}
		return engine.UpdateSortDirection{Direction: dir}, nil

	case OpUndo:
		return engine.Undo{}, nil
	case OpRedo:
		return engine.Redo{}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", step.Op)
	}
}

// targets collects the coordinates named by a step's range and cells.
func targets(step Step) ([]models.Coord, error) {
	var coords []models.Coord
	if step.Range != "" {
		area, err := ParseArea(step.Range)
		if err != nil {
			return nil, err
		}
		coords = area.Coords()
	}
	for _, name := range step.Cells {
		at, err := ParseCoord(name)
		if err != nil {
			return nil, err
		}
		coords = append(coords, at)
	}
	return coords, nil
}

// ParseCoord accepts a "{row}-{col}" key or an A1 cell name.
func ParseCoord(s string) (models.Coord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Coord{}, errors.New("missing cell")
	}
	if strings.Contains(s, "-") {
		return models.ParseKey(s)
	}
	return xlsx.ParseCell(s)
}

// ParseArea accepts "A1:B3", "0-0:2-1" or a single cell.
func ParseArea(s string) (models.Area, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Area{}, errors.New("missing range")
	}
	if !strings.Contains(s, "-") {
		return xlsx.ParseRange(s)
	}
	first, second, found := strings.Cut(s, ":")
	start, err := models.ParseKey(first)
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if !found {
		return models.AreaBetween(start, start), nil
	}
	end, err := models.ParseKey(second)
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return models.AreaBetween(start, end), nil
}

// fillHandle returns the cell a fill drag starts from: the bottom right
// corner of the selection, or the active cell without a selection.
func fillHandle(st engine.State) (models.Coord, bool) {
	if area, ok := engine.SelectionBounds(st); ok {
		return area.BottomRight(), true
	}
	return st.Active()
}

// ParseColumn accepts a zero-based column index or a column letter.
func ParseColumn(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing column")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("invalid column %q", s)
		}
		return n, nil
	}
	n, err := excelize.ColumnNameToNumber(s)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", s, err)
	}
	return n - 1, nil
}

func parseMissing(s string) (matrix.MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return matrix.BlanksLast, nil
	case "exempt":
		return matrix.ExemptMissing, nil
	default:
		return matrix.BlanksLast, fmt.Errorf("invalid missing policy %q", s)
	}
}
