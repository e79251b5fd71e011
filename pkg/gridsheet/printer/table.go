// Package printer renders a grid state as a terminal table.
package printer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/engine"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

var (
	header   = color.New(color.Bold, color.Underline)
	active   = color.New(color.Bold, color.Underline, color.FgHiCyan)
	selected = color.New(color.FgHiYellow)
	number   = color.New(color.FgGreen)
	faint    = color.New(color.Faint, color.Italic)
)

// Table lays out st from A1 to the bottom right occupied cell, with column
// letters and row numbers. The active cell and the selection are
// highlighted. It returns nil for an empty grid.
func Table(st engine.State, maxColWidth uint) *uitable.Table {
	cells := st.Cells()
	area, ok := cells.Bounds()
	if !ok {
		return nil
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = maxColWidth

	head := []interface{}{""}
	for col := 0; col <= area.C2; col++ {
		name, _ := excelize.ColumnNumberToName(col + 1)
		head = append(head, header.Sprint(name))
	}
	tbl.AddRow(head...)

	focus, hasFocus := st.Active()
	for row := 0; row <= area.R2; row++ {
		line := []interface{}{header.Sprint(strconv.Itoa(row + 1))}
		for col := 0; col <= area.C2; col++ {
			at := models.At(row, col)
			cell := cells.Read(at)
			value := cell.Value
			switch {
			case hasFocus && at == focus:
				value = active.Sprint(placeholder(value))
			case st.IsSelected(at):
				value = selected.Sprint(placeholder(value))
			case cell.Type == models.TypeNumber:
				value = number.Sprint(value)
			}
			line = append(line, value)
		}
		tbl.AddRow(line...)
	}
	return tbl
}

// Fprint writes the table for st to w, followed by a status line.
func Fprint(w io.Writer, st engine.State, maxColWidth uint) {
	tbl := Table(st, maxColWidth)
	if tbl == nil {
		_, _ = faint.Fprintln(w, " empty grid")
		return
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = faint.Fprintf(w, "sort %s, %d undo, %d redo\n", st.SortDirection(), len(st.UndoLog()), len(st.RedoLog()))
}

func placeholder(value string) string {
	if value == "" {
		return "·"
	}
	return value
}
