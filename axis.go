package cubelets

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
)

// Axis is one of the three principal directions a slice turns about.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Axes lists the axes in canonical order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Valid reports whether a is one of x, y or z.
func (a Axis) Valid() bool {
	switch a {
	case AxisX, AxisY, AxisZ:
		return true
	default:
		return false
	}
}

// Dim returns the math32 dimension for this axis.
func (a Axis) Dim() math32.Dims {
	switch a {
	case AxisY:
		return math32.Y
	case AxisZ:
		return math32.Z
	default:
		return math32.X
	}
}

// Unit returns the positive unit vector along the axis.
func (a Axis) Unit() math32.Vector3 {
	switch a {
	case AxisY:
		return math32.Vec3(0, 1, 0)
	case AxisZ:
		return math32.Vec3(0, 0, 1)
	default:
		return math32.Vec3(1, 0, 0)
	}
}

func (a Axis) String() string {
	return string(a)
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
	return a, nil
}

// Direction is the sense of a quarter turn: Plus or Minus.
type Direction int

const (
	Plus  Direction = 1  // Bound to the right arrow
	Minus Direction = -1 // Bound to the left arrow
)

// Valid reports whether d is Plus or Minus.
func (d Direction) Valid() bool {
	return d == Plus || d == Minus
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Plus:
		return "+1"
	case Minus:
		return "-1"
	default:
		return fmt.Sprintf("%d", int(d))
	}
}

// ParseDirection parses "+1", "1", "+", "right" as Plus and
// "-1", "-", "left" as Minus.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+1", "1", "+", "right":
		return Plus, nil
	case "-1", "-", "left":
		return Minus, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
