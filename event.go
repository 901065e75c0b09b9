package cubelets

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// EventKind identifies an input event.
type EventKind string

const (
	EventPick   EventKind = "pick"   // Cubelet face picked
	EventCancel EventKind = "cancel" // Selection dismissed
	EventRotate EventKind = "rotate" // Quarter turn of the selection
	EventMove   EventKind = "move"   // Notation moves, independent of selection
)

// Event is one input to a Session.
type Event struct {
	Kind      EventKind
	CubeletID string         // pick
	Normal    math32.Vector3 // pick
	Direction Direction      // rotate
	Moves     []Move         // move
}

// PickEvent returns a pick of the given cubelet face.
func PickEvent(id string, normal math32.Vector3) Event {
	return Event{Kind: EventPick, CubeletID: id, Normal: normal}
}

// CancelEvent returns a cancel event.
func CancelEvent() Event {
	return Event{Kind: EventCancel}
}

// RotateEvent returns a quarter-turn command.
func RotateEvent(dir Direction) Event {
	return Event{Kind: EventRotate, Direction: dir}
}

// MoveEvent returns a notation move command.
func MoveEvent(moves ...Move) Event {
	return Event{Kind: EventMove, Moves: moves}
}

// String formats the event in script syntax.
func (e Event) String() string {
	switch e.Kind {
	case EventPick:
		return fmt.Sprintf("pick %s %s", e.CubeletID, formatNormal(e.Normal))
	case EventRotate:
		return fmt.Sprintf("rotate %s", e.Direction)
	case EventMove:
		return fmt.Sprintf("move %s", FormatMoves(e.Moves))
	default:
		return string(e.Kind)
	}
}

func formatNormal(n math32.Vector3) string {
	if f, ok := FaceFromNormal(n); ok && n == f.Normal() {
		sign := "+"
		if f.Sign() < 0 {
			sign = "-"
		}
		return sign + string(f.Axis())
	}
	return fmt.Sprintf("%g,%g,%g", n.X, n.Y, n.Z)
}

// ParseNormal parses a face normal written as a signed axis ("+x", "-z",
// or bare "y"), a face letter ("R", "U", ...), or three comma-separated
// components ("1,0,0").
func ParseNormal(s string) (math32.Vector3, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return math32.Vector3{}, fmt.Errorf("%w: %q", ErrInvalidNormal, s)
		}
		var v [3]float32
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
			if err != nil {
				return math32.Vector3{}, fmt.Errorf("%w: %q", ErrInvalidNormal, s)
			}
			v[i] = float32(f)
		}
		return math32.Vec3(v[0], v[1], v[2]), nil
	}

	for _, f := range Faces {
		if strings.EqualFold(s, f.String()) {
			return f.Normal(), nil
		}
	}

	sign := float32(1)
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	}
	a, err := ParseAxis(s)
	if err != nil {
		return math32.Vector3{}, fmt.Errorf("%w: %q", ErrInvalidNormal, s)
	}
	return a.Unit().MulScalar(sign), nil
}

// ParseEvent parses one script line:
//
//	pick <id> <normal>
//	cancel
//	rotate <+1|-1|left|right>
//	move <notation...>
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("%w: empty line", ErrInvalidEvent)
	}

	switch EventKind(strings.ToLower(fields[0])) {
	case EventPick:
		if len(fields) != 3 {
			return Event{}, fmt.Errorf("%w: pick needs <id> <normal>", ErrInvalidEvent)
		}
		n, err := ParseNormal(fields[2])
		if err != nil {
			return Event{}, err
		}
		return PickEvent(fields[1], n), nil

	case EventCancel:
		if len(fields) != 1 {
			return Event{}, fmt.Errorf("%w: cancel takes no arguments", ErrInvalidEvent)
		}
		return CancelEvent(), nil

	case EventRotate:
		if len(fields) != 2 {
			return Event{}, fmt.Errorf("%w: rotate needs a direction", ErrInvalidEvent)
		}
		dir, err := ParseDirection(fields[1])
		if err != nil {
			return Event{}, err
		}
		return RotateEvent(dir), nil

	case EventMove:
		moves, err := ParseMoves(strings.Join(fields[1:], " "))
		if err != nil {
			return Event{}, err
		}
		if len(moves) == 0 {
			return Event{}, fmt.Errorf("%w: move needs notation", ErrInvalidEvent)
		}
		return MoveEvent(moves...), nil

	default:
		return Event{}, fmt.Errorf("%w: unknown command %q", ErrInvalidEvent, fields[0])
	}
}

// ParseScript reads one event per line. Blank lines and lines starting
// with '#' are skipped.
func ParseScript(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return events, nil
}
