package engine

import (
	"context"
	"log/slog"
)

// Session holds the current state for a host that dispatches commands one
// at a time. It is not safe for concurrent use; hosts serialize dispatch.
type Session struct {
	state  State
	logger *slog.Logger
}

// NewSession starts a session from initial. A nil logger discards logs.
func NewSession(initial State, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{state: initial, logger: logger}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Dispatch applies cmd to the current state and returns the new state.
func (s *Session) Dispatch(ctx context.Context, cmd Command) State {
	prev := s.state
	s.state = Dispatch(prev, cmd)

	name := "unknown"
	if cmd != nil {
		name = cmd.Name()
	}
	s.logger.DebugContext(ctx, "dispatch",
		slog.String("command", name),
		slog.Bool("absorbed", s.state.Revision() == prev.Revision()),
		slog.Int("undo_depth", len(s.state.undo)),
		slog.Int("redo_depth", len(s.state.redo)),
		slog.Int("cells", s.state.cells.Len()))
	return s.state
}

// Copy returns the clipboard block for the current selection.
func (s *Session) Copy(ctx context.Context) string {
	s.Dispatch(ctx, Copy{})
	return CopySelection(s.state).String()
}
