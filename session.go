package cubelets

import (
	"context"
	"log/slog"
	"maps"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
)

// Snapshot is everything a presentation layer needs after an event.
type Snapshot struct {
	State       State
	Selection   Selection
	Selected    bool // false when nothing is selected
	Highlighted Highlight
	Turns       int
}

// Session threads the puzzle state and the selection cycle through a
// stream of pick, cancel and rotate events. Events are handled one at a
// time, each to completion; State and SelectionCycle are replaced as
// whole values.
//
// A Session is not safe for concurrent use. Feed it from one goroutine,
// or hand it a channel with Run.
type Session struct {
	id     string
	cfg    *config
	logger *slog.Logger

	state     State
	cycle     SelectionCycle
	highlight Highlight // recomputed whenever state or cycle changes
	turns     int
}

// NewSession creates a session starting from a solved puzzle.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	id := uuid.New().String()
	s := &Session{
		id:     id,
		cfg:    cfg,
		logger: cfg.logger.With("session", id),
	}
	s.Reset()
	return s
}

// Reset returns to a solved puzzle with nothing selected.
func (s *Session) Reset() {
	s.state = NewState(s.cfg.gap)
	s.cycle = SelectionCycle{}
	s.turns = 0
	s.refresh()
	s.logger.Debug("reset")
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// State returns the current puzzle state.
func (s *Session) State() State {
	return s.state
}

// Cycle returns the current selection cycle.
func (s *Session) Cycle() SelectionCycle {
	return s.cycle
}

// Selection returns the active selection, or false when idle.
func (s *Session) Selection() (Selection, bool) {
	return s.cycle.Selection()
}

// Highlighted returns a copy of the cubelets in the selected slice.
func (s *Session) Highlighted() Highlight {
	return maps.Clone(s.highlight)
}

// Turns returns the number of quarter turns applied since the last reset.
func (s *Session) Turns() int {
	return s.turns
}

// Snapshot returns the current state, selection and highlight.
func (s *Session) Snapshot() Snapshot {
	sel, ok := s.cycle.Selection()
	return Snapshot{
		State:       s.state,
		Selection:   sel,
		Selected:    ok,
		Highlighted: s.Highlighted(),
		Turns:       s.turns,
	}
}

// Pick arms or cycles the selection on a cubelet face. It reports false
// for unknown cubelets, which are ignored.
func (s *Session) Pick(id string, normal math32.Vector3) bool {
	if _, ok := s.state.Cubelet(id); !ok {
		s.logger.Debug("pick ignored", "cubelet", id, "reason", "unknown cubelet")
		return false
	}

	next := s.cycle.Pick(s.state, id, normal)

	s.cycle = next
	s.refresh()
	sel, _ := next.Selection()
	s.logger.Debug("pick", "cubelet", id, "axis", sel.Axis, "slice", sel.Slice, "index", next.Index())
	s.changed()
	return true
}

// Cancel clears the selection. It reports whether anything was selected.
func (s *Session) Cancel() bool {
	if s.cycle.Idle() {
		return false
	}
	s.cycle = s.cycle.Cancel()
	s.refresh()
	s.logger.Debug("cancel")
	s.changed()
	return true
}

// Rotate turns the selected slice a quarter turn. It reports false, and
// does nothing, when no slice is selected or dir is invalid.
func (s *Session) Rotate(dir Direction) bool {
	sel, ok := s.cycle.Selection()
	next, applied := RotateSelection(s.state, sel, ok, dir)
	if !applied {
		s.logger.Debug("rotate ignored", "direction", dir.String(), "selected", ok)
		return false
	}

	s.state = next
	s.turns++
	s.refresh()
	s.logger.Debug("rotate", "axis", sel.Axis, "slice", sel.Slice, "direction", dir.String())
	s.changed()
	return true
}

// ApplyMove applies a notation move. The selection is left as it is.
func (s *Session) ApplyMove(m Move) bool {
	if _, _, _, ok := m.Layer.Slice(); !ok {
		s.logger.Debug("move ignored", "move", m.Notation())
		return false
	}

	s.state = ApplyMove(s.state, m)
	if m.Turn == Double {
		s.turns += 2
	} else {
		s.turns++
	}
	s.refresh()
	s.logger.Debug("move", "move", m.Notation())
	s.changed()
	return true
}

// ApplyMoves applies a sequence of moves. It reports whether all of them
// were applied.
func (s *Session) ApplyMoves(moves []Move) bool {
	all := true
	for _, m := range moves {
		if !s.ApplyMove(m) {
			all = false
		}
	}
	return all
}

// Handle dispatches one event. It reports whether the event changed
// anything.
func (s *Session) Handle(ev Event) bool {
	switch ev.Kind {
	case EventPick:
		return s.Pick(ev.CubeletID, ev.Normal)
	case EventCancel:
		return s.Cancel()
	case EventRotate:
		return s.Rotate(ev.Direction)
	case EventMove:
		return s.ApplyMoves(ev.Moves)
	default:
		s.logger.Debug("event ignored", "kind", string(ev.Kind))
		return false
	}
}

// Run handles events in arrival order until the channel is closed, which
// returns nil, or ctx is done, which returns ctx.Err().
func (s *Session) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.Handle(ev)
		}
	}
}

func (s *Session) refresh() {
	sel, ok := s.cycle.Selection()
	s.highlight = Highlighted(s.state, sel, ok)
}

func (s *Session) changed() {
	if s.cfg.onChange != nil {
		s.cfg.onChange(s.Snapshot())
	}
}
