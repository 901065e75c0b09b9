package cubelets

import (
	"fmt"
	"strings"
)

// Layer names a slice in standard notation: the six outer faces plus the
// three middle slices.
type Layer string

const (
	LayerR Layer = "R" // Right, x=2
	LayerL Layer = "L" // Left, x=0
	LayerU Layer = "U" // Up, y=2
	LayerD Layer = "D" // Down, y=0
	LayerF Layer = "F" // Front, z=2
	LayerB Layer = "B" // Back, z=0
	LayerM Layer = "M" // Middle, x=1, turns like L
	LayerE Layer = "E" // Equator, y=1, turns like D
	LayerS Layer = "S" // Standing, z=1, turns like F
)

// layerSlices gives the slice and direction of each layer's clockwise
// quarter turn, looking at the face the layer is named after.
var layerSlices = map[Layer]struct {
	axis  Axis
	slice int
	dir   Direction
}{
	LayerR: {AxisX, 2, Minus},
	LayerL: {AxisX, 0, Plus},
	LayerM: {AxisX, 1, Plus},
	LayerU: {AxisY, 2, Minus},
	LayerD: {AxisY, 0, Plus},
	LayerE: {AxisY, 1, Plus},
	LayerF: {AxisZ, 2, Plus},
	LayerB: {AxisZ, 0, Minus},
	LayerS: {AxisZ, 1, Plus},
}

// Slice returns the axis, slice index and direction of the layer's
// clockwise quarter turn.
func (l Layer) Slice() (Axis, int, Direction, bool) {
	ls, ok := layerSlices[l]
	return ls.axis, ls.slice, ls.dir, ok
}

// Turn represents the direction and magnitude of a layer turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single layer turn.
type Move struct {
	Layer Layer // Which layer to turn
	Turn  Turn  // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, M, M'
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Layer) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ApplyMove returns s with the move applied. Unknown layers leave s
// unchanged.
func ApplyMove(s State, m Move) State {
	axis, slice, dir, ok := m.Layer.Slice()
	if !ok {
		return s
	}
	switch m.Turn {
	case CW:
		return Rotate(s, axis, slice, dir)
	case CCW:
		return Rotate(s, axis, slice, dir.Inverse())
	case Double:
		return Rotate(Rotate(s, axis, slice, dir), axis, slice, dir)
	default:
		return s
	}
}

// ApplyMoves applies a sequence of moves in order.
func ApplyMoves(s State, moves []Move) State {
	for _, m := range moves {
		s = ApplyMove(s, m)
	}
	return s
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, M, S'
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	layer := Layer(strings.ToUpper(s[:1]))
	if _, ok := layerSlices[layer]; !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Layer: layer, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// SimplifyMoves merges consecutive turns of the same layer and drops
// those that cancel. R R becomes R2 and R U U' R' becomes empty.
func SimplifyMoves(moves []Move) []Move {
	result := make([]Move, 0, len(moves))

	for _, move := range moves {
		if len(result) == 0 || result[len(result)-1].Layer != move.Layer {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		if merged, ok := mergeTurns(*last, move); ok {
			*last = merged
		} else {
			result = result[:len(result)-1]
		}
	}

	return result
}

// mergeTurns combines two turns of the same layer. ok is false when they
// cancel out.
func mergeTurns(a, b Move) (Move, bool) {
	total := ((int(a.Turn)+int(b.Turn))%4 + 4) % 4
	switch total {
	case 0:
		return Move{}, false
	case 3:
		total = -1 // three quarter turns
	}
	return Move{Layer: a.Layer, Turn: Turn(total)}, true
}
