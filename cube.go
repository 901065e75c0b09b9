package cubelets

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Color represents a sticker color.
type Color byte

const (
	None   Color = 0 // Interior face, no sticker
	White  Color = 1 // +Y when solved
	Yellow Color = 2 // -Y when solved
	Blue   Color = 3 // +Z when solved
	Green  Color = 4 // -Z when solved
	Red    Color = 5 // +X when solved
	Orange Color = 6 // -X when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case None:
		return "."
	default:
		return "?"
	}
}

// Hex returns the display color as "#rrggbb".
func (c Color) Hex() string {
	switch c {
	case White:
		return "#ffffff"
	case Yellow:
		return "#ffff00"
	case Green:
		return "#00ff00"
	case Blue:
		return "#0000ff"
	case Red:
		return "#ff0000"
	case Orange:
		return "#ffa500"
	default:
		return "#000000"
	}
}

// Face is a world-space face direction. Its value is also the index of
// that direction in Cubelet.Colors.
type Face int

const (
	FaceR Face = 0 // +X
	FaceL Face = 1 // -X
	FaceU Face = 2 // +Y
	FaceD Face = 3 // -Y
	FaceF Face = 4 // +Z
	FaceB Face = 5 // -Z
)

// Faces lists the face directions in color-slot order.
var Faces = [6]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

func (f Face) String() string {
	switch f {
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Axis returns the axis the face points along.
func (f Face) Axis() Axis {
	return Axes[int(f)/2]
}

// Sign is +1 for the positive faces (R, U, F) and -1 otherwise.
func (f Face) Sign() int {
	if f%2 == 0 {
		return 1
	}
	return -1
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() math32.Vector3 {
	return f.Axis().Unit().MulScalar(float32(f.Sign()))
}

// Layer returns the grid coordinate of the outer slice on this face.
func (f Face) Layer() int {
	if f.Sign() > 0 {
		return Size - 1
	}
	return 0
}

// FaceFromNormal returns the face whose normal is closest to n once n is
// rounded to a unit axis vector. It reports false when n does not round
// to exactly one axis.
func FaceFromNormal(n math32.Vector3) (Face, bool) {
	r := math32.Vec3(math32.Round(n.X), math32.Round(n.Y), math32.Round(n.Z))
	found := -1
	for i, a := range Axes {
		switch r.Dim(a.Dim()) {
		case 0:
		case 1, -1:
			if found >= 0 {
				return 0, false
			}
			found = i
		default:
			return 0, false
		}
	}
	if found < 0 {
		return 0, false
	}
	f := Face(found * 2)
	if r.Dim(Axes[found].Dim()) < 0 {
		f++
	}
	return f, true
}

// Cubelet is one of the 26 visible sub-cubes.
type Cubelet struct {
	// ID is assigned from the construction grid coordinates as "x-y-z"
	// and never changes.
	ID string

	// Position is always a lattice point of the state's Mapper.
	Position math32.Vector3

	// Orientation is the rotation carrying the cubelet's construction
	// frame onto its current frame.
	Orientation math32.Quat

	// Colors[f] is the sticker facing world direction f.
	Colors [6]Color
}

// Color returns the sticker facing world direction f.
func (c Cubelet) Color(f Face) Color {
	return c.Colors[f]
}

// Euler returns the orientation as XYZ Euler angles in radians, for
// renderers that want them.
func (c Cubelet) Euler() math32.Vector3 {
	q := c.Orientation
	return q.ToEuler()
}

// CubeletID formats the id of the cubelet built at grid coordinates x, y, z.
func CubeletID(x, y, z int) string {
	return fmt.Sprintf("%d-%d-%d", x, y, z)
}

// State is the ordered collection of all 26 cubelets. A State is never
// modified after construction; Rotate returns a new one.
type State struct {
	mapper   Mapper
	cubelets []Cubelet
	index    map[string]int
}

// NewState creates a solved puzzle with the given gap between cubelets.
func NewState(gap float32) State {
	m := NewMapper(gap)
	cubelets := make([]Cubelet, 0, Size*Size*Size-1)

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				cubelets = append(cubelets, Cubelet{
					ID:          CubeletID(x, y, z),
					Position:    m.Lattice(math32.Vec3i(int32(x), int32(y), int32(z))),
					Orientation: identityQuat(),
					Colors:      solvedColors(x, y, z),
				})
			}
		}
	}

	return newState(m, cubelets)
}

// newState wraps cubelets, which must not be shared with another State.
func newState(m Mapper, cubelets []Cubelet) State {
	index := make(map[string]int, len(cubelets))
	for i, c := range cubelets {
		index[c.ID] = i
	}
	return State{mapper: m, cubelets: cubelets, index: index}
}

// solvedColors paints the outward faces of the cubelet at x, y, z.
func solvedColors(x, y, z int) [6]Color {
	var colors [6]Color
	if x == Size-1 {
		colors[FaceR] = Red
	}
	if x == 0 {
		colors[FaceL] = Orange
	}
	if y == Size-1 {
		colors[FaceU] = White
	}
	if y == 0 {
		colors[FaceD] = Yellow
	}
	if z == Size-1 {
		colors[FaceF] = Blue
	}
	if z == 0 {
		colors[FaceB] = Green
	}
	return colors
}

func identityQuat() math32.Quat {
	return math32.Quat{W: 1}
}

// Mapper returns the coordinate mapper the state was built with.
func (s State) Mapper() Mapper {
	return s.mapper
}

// Len returns the number of cubelets.
func (s State) Len() int {
	return len(s.cubelets)
}

// Cubelets returns a copy of the cubelets in construction order.
func (s State) Cubelets() []Cubelet {
	out := make([]Cubelet, len(s.cubelets))
	copy(out, s.cubelets)
	return out
}

// Cubelet looks up a cubelet by id.
func (s State) Cubelet(id string) (Cubelet, bool) {
	i, ok := s.index[id]
	if !ok {
		return Cubelet{}, false
	}
	return s.cubelets[i], true
}

// Lookup is Cubelet with an error for unknown ids.
func (s State) Lookup(id string) (Cubelet, error) {
	c, ok := s.Cubelet(id)
	if !ok {
		return Cubelet{}, fmt.Errorf("%w: %q", ErrUnknownCubelet, id)
	}
	return c, nil
}

// GridCoords returns the current grid coordinates of a cubelet.
func (s State) GridCoords(c Cubelet) math32.Vector3i {
	return s.mapper.GridCoords(c.Position)
}

// InSlice reports whether c currently lies in the given slice.
func (s State) InSlice(c Cubelet, a Axis, slice int) bool {
	return s.mapper.GridCoord(c.Position, a) == slice
}

// ApproxEqual compares two states: positions within tol, colors exactly,
// and orientations up to quaternion sign.
func (s State) ApproxEqual(other State, tol float32) bool {
	if len(s.cubelets) != len(other.cubelets) {
		return false
	}
	for i, a := range s.cubelets {
		b := other.cubelets[i]
		if a.ID != b.ID || a.Colors != b.Colors {
			return false
		}
		if math32.Abs(a.Position.X-b.Position.X) > tol ||
			math32.Abs(a.Position.Y-b.Position.Y) > tol ||
			math32.Abs(a.Position.Z-b.Position.Z) > tol {
			return false
		}
		if !SameRotation(a.Orientation, b.Orientation, tol) {
			return false
		}
	}
	return true
}

// SameRotation reports whether two unit quaternions describe the same
// rotation within tol.
func SameRotation(a, b math32.Quat, tol float32) bool {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	return math32.Abs(dot) >= 1-tol
}

// String returns the facelet net of the state.
func (s State) String() string {
	return s.Net().String()
}
