package cubelets

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Selection is the slice currently eligible for rotation.
type Selection struct {
	Axis  Axis
	Slice int
}

func (s Selection) String() string {
	return fmt.Sprintf("%s=%d", s.Axis, s.Slice)
}

// SelectionCycle tracks the armed cubelet and the rotation axes that
// repeated picks of it step through. It is a value: Pick and Cancel
// return a new cycle and leave the receiver alone.
//
// The zero value is idle.
type SelectionCycle struct {
	armed string
	axes  []Axis
	index int
	sel   Selection
}

// Idle reports whether no cubelet is armed.
func (c SelectionCycle) Idle() bool {
	return c.armed == ""
}

// Armed returns the id of the armed cubelet.
func (c SelectionCycle) Armed() (string, bool) {
	return c.armed, c.armed != ""
}

// Axes returns a copy of the candidate axes, active-first order
// unchanged.
func (c SelectionCycle) Axes() []Axis {
	return append([]Axis(nil), c.axes...)
}

// Index returns the position of the active axis in Axes.
func (c SelectionCycle) Index() int {
	return c.index
}

// Selection returns the active selection, or false when idle.
func (c SelectionCycle) Selection() (Selection, bool) {
	if c.Idle() {
		return Selection{}, false
	}
	return c.sel, true
}

// Pick handles a pick of cubelet id on the face with the given normal.
//
// Picking a new cubelet arms it with the face axis first, followed by the
// other two axes in x, y, z order. Picking the armed cubelet again
// advances to the next axis, wrapping around. The slice index is the
// cubelet's current grid coordinate along the active axis. Unknown ids
// leave the cycle unchanged.
func (c SelectionCycle) Pick(s State, id string, normal math32.Vector3) SelectionCycle {
	cubelet, ok := s.Cubelet(id)
	if !ok {
		return c
	}

	next := SelectionCycle{armed: id}
	if id == c.armed && len(c.axes) > 0 {
		next.axes = c.axes
		next.index = (c.index + 1) % len(c.axes)
	} else {
		next.axes = candidateAxes(normal)
	}

	axis := next.axes[next.index]
	next.sel = Selection{Axis: axis, Slice: s.mapper.GridCoord(cubelet.Position, axis)}
	return next
}

// Cancel returns the idle cycle.
func (c SelectionCycle) Cancel() SelectionCycle {
	return SelectionCycle{}
}

// candidateAxes orders the axes with the picked face's axis first. A
// normal that does not round to a unit component on any axis yields the
// canonical x, y, z order.
func candidateAxes(normal math32.Vector3) []Axis {
	var face Axis
	for _, a := range Axes {
		if math32.Abs(math32.Round(normal.Dim(a.Dim()))) == 1 {
			face = a
			break
		}
	}

	axes := make([]Axis, 0, len(Axes))
	if face != "" {
		axes = append(axes, face)
	}
	for _, a := range Axes {
		if a != face {
			axes = append(axes, a)
		}
	}
	return axes
}
