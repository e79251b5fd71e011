package models

// CellRow represents a single row of stored cells.
type CellRow struct {
	// R is the row index (0-based).
	R int `json:"r"`
	// C maps column index (string) to cell value. Number cells hold
	// int64 or float64, everything else a string.
	C map[string]interface{} `json:"c"`
	// Types maps column index to declared type for number cells (optional).
	Types map[string]CellType `json:"types,omitempty"`
}

// GridData is the serializable view of a grid state.
type GridData struct {
	// Name is the source file name (no path), if any.
	Name string `json:"name,omitempty"`
	// Rows contains rows holding at least one stored cell, in row order.
	Rows []CellRow `json:"rows"`
	// Bounds is the occupied bounding box (nil for an empty grid).
	Bounds *Area `json:"bounds,omitempty"`
	// Selection lists the selected cell keys.
	Selection []string `json:"selection,omitempty"`
	// Active is the active cell key, if any.
	Active string `json:"active,omitempty"`
	// SortDirection is the current sort direction.
	SortDirection SortDirection `json:"sort_direction"`
	// UndoDepth is the number of undoable edits.
	UndoDepth int `json:"undo_depth"`
	// RedoDepth is the number of redoable edits.
	RedoDepth int `json:"redo_depth"`
}
