package cubelets

import "cogentcore.org/core/math32"

// Size is the number of cubelets along each edge of the puzzle.
const Size = 3

// DefaultGap is the spacing left between neighbouring cubelets.
const DefaultGap float32 = 0.15

// Mapper converts between grid coordinates {0,1,2} and the continuous
// lattice positions cubelets occupy. A grid coordinate i sits at
// (i-1)*(1+Gap), so the puzzle is centred on the origin.
type Mapper struct {
	Gap float32
}

// NewMapper returns a Mapper with the given gap.
func NewMapper(gap float32) Mapper {
	return Mapper{Gap: gap}
}

func (m Mapper) spacing() float32 {
	return 1 + m.Gap
}

// Place returns the lattice offset of grid coordinate i along one axis.
func (m Mapper) Place(i int) float32 {
	return float32(i-1) * m.spacing()
}

// Lattice returns the position of the cubelet at grid coordinates c.
func (m Mapper) Lattice(c math32.Vector3i) math32.Vector3 {
	return math32.Vec3(m.Place(int(c.X)), m.Place(int(c.Y)), m.Place(int(c.Z)))
}

// GridCoord maps a lattice position to its grid coordinate along axis a.
// It is the left inverse of Place.
func (m Mapper) GridCoord(pos math32.Vector3, a Axis) int {
	return int(math32.Round(pos.Dim(a.Dim())/m.spacing())) + 1
}

// GridCoords maps a lattice position to grid coordinates on all axes.
func (m Mapper) GridCoords(pos math32.Vector3) math32.Vector3i {
	return math32.Vec3i(
		int32(m.GridCoord(pos, AxisX)),
		int32(m.GridCoord(pos, AxisY)),
		int32(m.GridCoord(pos, AxisZ)),
	)
}

// Snap returns the exact lattice point nearest to pos.
func (m Mapper) Snap(pos math32.Vector3) math32.Vector3 {
	return m.Lattice(m.GridCoords(pos))
}
