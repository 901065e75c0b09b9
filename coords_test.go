package cubelets

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// homeCoords parses the construction grid coordinates out of an id.
func homeCoords(t *testing.T, id string) math32.Vector3i {
	t.Helper()
	var x, y, z int32
	_, err := fmt.Sscanf(id, "%d-%d-%d", &x, &y, &z)
	require.NoError(t, err, "id %q", id)
	return math32.Vec3i(x, y, z)
}

func TestNewStateHas26Cubelets(t *testing.T) {
	s := NewState(DefaultGap)
	require.Equal(t, 26, s.Len())

	seen := map[string]bool{}
	for _, c := range s.Cubelets() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.False(t, seen["1-1-1"], "center must not exist")
}

func TestGridCoordInvertsPlacement(t *testing.T) {
	for _, gap := range []float32{0, DefaultGap, 0.5, 1} {
		s := NewState(gap)
		m := s.Mapper()
		for _, c := range s.Cubelets() {
			home := homeCoords(t, c.ID)
			assert.Equal(t, int(home.X), m.GridCoord(c.Position, AxisX), "gap %v id %s", gap, c.ID)
			assert.Equal(t, int(home.Y), m.GridCoord(c.Position, AxisY), "gap %v id %s", gap, c.ID)
			assert.Equal(t, int(home.Z), m.GridCoord(c.Position, AxisZ), "gap %v id %s", gap, c.ID)
			assert.Equal(t, home, m.GridCoords(c.Position))
		}
	}
}

func TestPlaceIsCentred(t *testing.T) {
	m := NewMapper(DefaultGap)
	assert.InDelta(t, -1.15, m.Place(0), 1e-6)
	assert.Equal(t, float32(0), m.Place(1))
	assert.InDelta(t, 1.15, m.Place(2), 1e-6)
}

func TestSnapRemovesDrift(t *testing.T) {
	m := NewMapper(DefaultGap)
	got := m.Snap(math32.Vec3(1.1500003, -0.0000002, -1.1499998))
	assert.Equal(t, m.Lattice(math32.Vec3i(2, 1, 0)), got)
}

func TestLookupUnknownCubelet(t *testing.T) {
	s := NewState(DefaultGap)

	_, err := s.Lookup("1-1-1")
	assert.ErrorIs(t, err, ErrUnknownCubelet)

	c, err := s.Lookup("0-0-0")
	require.NoError(t, err)
	assert.Equal(t, "0-0-0", c.ID)
}

func TestSolvedColors(t *testing.T) {
	s := NewState(DefaultGap)

	corner, ok := s.Cubelet("2-2-2")
	require.True(t, ok)
	assert.Equal(t, [6]Color{Red, None, White, None, Blue, None}, corner.Colors)

	edge, ok := s.Cubelet("0-0-1")
	require.True(t, ok)
	assert.Equal(t, [6]Color{None, Orange, None, Yellow, None, None}, edge.Colors)

	center, ok := s.Cubelet("1-1-0")
	require.True(t, ok)
	assert.Equal(t, Green, center.Color(FaceB))
}

func TestFaceFromNormal(t *testing.T) {
	tests := []struct {
		normal math32.Vector3
		face   Face
		ok     bool
	}{
		{math32.Vec3(1, 0, 0), FaceR, true},
		{math32.Vec3(-1, 0, 0), FaceL, true},
		{math32.Vec3(0, 0.98, 0.1), FaceU, true},
		{math32.Vec3(0, -1, 0), FaceD, true},
		{math32.Vec3(0, 0, 1), FaceF, true},
		{math32.Vec3(0, 0, -1), FaceB, true},
		{math32.Vec3(0, 0, 0), 0, false},
		{math32.Vec3(1, 1, 0), 0, false},
	}
	for _, tt := range tests {
		f, ok := FaceFromNormal(tt.normal)
		assert.Equal(t, tt.ok, ok, "normal %v", tt.normal)
		if tt.ok {
			assert.Equal(t, tt.face, f, "normal %v", tt.normal)
		}
	}

	for _, f := range Faces {
		got, ok := FaceFromNormal(f.Normal())
		require.True(t, ok)
		assert.Equal(t, f, got)
	}
}

func TestCubeletColorAndEuler(t *testing.T) {
	s := NewState(DefaultGap)
	c, ok := s.Cubelet("2-2-1")
	require.True(t, ok)

	assert.Equal(t, Red, c.Color(FaceR))
	assert.Equal(t, White, c.Color(FaceU))
	assert.Equal(t, None, c.Color(FaceF))

	e := c.Euler()
	assert.InDelta(t, 0, e.X, 1e-5)
	assert.InDelta(t, 0, e.Y, 1e-5)
	assert.InDelta(t, 0, e.Z, 1e-5)

	turned, ok := Rotate(s, AxisX, 2, Plus).Cubelet("2-2-1")
	require.True(t, ok)
	assert.Equal(t, Red, turned.Color(FaceR))
	assert.Equal(t, White, turned.Color(FaceF))

	e = turned.Euler()
	assert.InDelta(t, math32.Pi/2, math32.Abs(e.X), 1e-4)
	assert.InDelta(t, 0, e.Y, 1e-4)
	assert.InDelta(t, 0, e.Z, 1e-4)
}
