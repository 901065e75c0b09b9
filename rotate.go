package cubelets

import "cogentcore.org/core/math32"

// facePerm maps each face slot to the slot its color is taken from:
// after a turn, Colors[f] = old Colors[perm[f]].
type facePerm [6]Face

// Quarter-turn color tables for direction Plus. The two faces on the
// turning axis map to themselves; the four side faces form one 4-cycle.
var plusPerms = map[Axis]facePerm{
	// +Y <- -Z, -Z <- -Y, -Y <- +Z, +Z <- +Y
	AxisX: {FaceR: FaceR, FaceL: FaceL, FaceU: FaceB, FaceB: FaceD, FaceD: FaceF, FaceF: FaceU},
	// +Z <- -X, -X <- -Z, -Z <- +X, +X <- +Z
	AxisY: {FaceU: FaceU, FaceD: FaceD, FaceF: FaceL, FaceL: FaceB, FaceB: FaceR, FaceR: FaceF},
	// +Y <- -X, -X <- -Y, -Y <- +X, +X <- +Y
	AxisZ: {FaceF: FaceF, FaceB: FaceB, FaceU: FaceL, FaceL: FaceD, FaceD: FaceR, FaceR: FaceU},
}

// Minus turns use the inverse cycles.
var minusPerms = map[Axis]facePerm{
	AxisX: plusPerms[AxisX].inverse(),
	AxisY: plusPerms[AxisY].inverse(),
	AxisZ: plusPerms[AxisZ].inverse(),
}

func (p facePerm) inverse() facePerm {
	var inv facePerm
	for dst, src := range p {
		inv[src] = Face(dst)
	}
	return inv
}

func (p facePerm) apply(colors [6]Color) [6]Color {
	var out [6]Color
	for dst, src := range p {
		out[dst] = colors[src]
	}
	return out
}

func colorPerm(a Axis, dir Direction) facePerm {
	if dir == Minus {
		return minusPerms[a]
	}
	return plusPerms[a]
}

// turnSign returns the sign of the rotation angle for a turn. The z axis
// is inverted relative to x and y so that Plus on z agrees with its color
// table.
func turnSign(a Axis, dir Direction) int {
	if a == AxisZ {
		return -int(dir)
	}
	return int(dir)
}

// TurnQuat returns the quarter-turn rotation applied by Rotate for the
// given axis and direction.
func TurnQuat(a Axis, dir Direction) math32.Quat {
	angle := float32(turnSign(a, dir)) * math32.Pi / 2
	return math32.NewQuatAxisAngle(a.Unit(), angle)
}

// quarterTurn rotates v by sign*90 degrees about a. Only signs and
// components are exchanged, so lattice points stay exact.
func quarterTurn(v math32.Vector3, a Axis, sign int) math32.Vector3 {
	s := float32(sign)
	switch a {
	case AxisX:
		return math32.Vec3(v.X, -s*v.Z, s*v.Y)
	case AxisY:
		return math32.Vec3(s*v.Z, v.Y, -s*v.X)
	default:
		return math32.Vec3(-s*v.Y, s*v.X, v.Z)
	}
}

// Rotate turns every cubelet in the slice at grid coordinate slice along
// axis a by a quarter turn in direction dir. Position, orientation and
// colors of each cubelet in the slice are updated together; cubelets
// outside the slice are carried over unchanged. The input state is not
// modified.
//
// An invalid axis, direction or slice returns s unchanged.
func Rotate(s State, a Axis, slice int, dir Direction) State {
	if !a.Valid() || !dir.Valid() || slice < 0 || slice >= Size {
		return s
	}

	sign := turnSign(a, dir)
	r := TurnQuat(a, dir)
	perm := colorPerm(a, dir)

	out := make([]Cubelet, len(s.cubelets))
	for i, c := range s.cubelets {
		if s.InSlice(c, a, slice) {
			c.Position = s.mapper.Snap(quarterTurn(c.Position, a, sign))

			var q math32.Quat
			q.MulQuats(r, c.Orientation)
			q.Normalize()
			c.Orientation = q

			c.Colors = perm.apply(c.Colors)
		}
		out[i] = c
	}

	// Ids and their order never change, so the index is shared.
	return State{mapper: s.mapper, cubelets: out, index: s.index}
}

// RotateSelection applies Rotate to the current selection. It reports
// false and returns s unchanged when nothing is selected.
func RotateSelection(s State, sel Selection, ok bool, dir Direction) (State, bool) {
	if !ok || !dir.Valid() {
		return s, false
	}
	return Rotate(s, sel.Axis, sel.Slice, dir), true
}
