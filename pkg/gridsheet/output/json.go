// Package output renders grid states for external consumers.
package output

import (
	"encoding/json"
	"strconv"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/engine"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// GridData converts a state into its serializable form.
func GridData(name string, st engine.State) *models.GridData {
	cells := st.Cells()
	data := &models.GridData{
		Name:          name,
		Rows:          []models.CellRow{},
		SortDirection: st.SortDirection(),
		UndoDepth:     len(st.UndoLog()),
		RedoDepth:     len(st.RedoLog()),
	}
	if area, ok := cells.Bounds(); ok {
		data.Bounds = &area
	}

	var row *models.CellRow
	for _, cell := range cells.Cells() {
		if row == nil || row.R != cell.At.Row {
			data.Rows = append(data.Rows, models.CellRow{R: cell.At.Row, C: map[string]interface{}{}})
			row = &data.Rows[len(data.Rows)-1]
		}
		col := strconv.Itoa(cell.At.Col)
		if cell.Type == models.TypeNumber {
			row.C[col] = models.TypedValue(cell.Value)
			if row.Types == nil {
				row.Types = map[string]models.CellType{}
			}
			row.Types[col] = models.TypeNumber
			continue
		}
		row.C[col] = cell.Value
	}

	for _, at := range st.Selection() {
		data.Selection = append(data.Selection, at.Key())
	}
	if at, ok := st.Active(); ok {
		data.Active = at.Key()
	}
	return data
}

// ToJSON serializes a state to JSON.
func ToJSON(name string, st engine.State, pretty bool) ([]byte, error) {
	data := GridData(name, st)
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}
