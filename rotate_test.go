package cubelets

import (
	"sort"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func TestRotateThenInverseRestoresState(t *testing.T) {
	start := NewState(DefaultGap)
	for _, a := range Axes {
		for slice := 0; slice < Size; slice++ {
			for _, dir := range []Direction{Plus, Minus} {
				turned := Rotate(start, a, slice, dir)
				back := Rotate(turned, a, slice, dir.Inverse())
				assert.True(t, back.ApproxEqual(start, tol), "%s=%d dir %s", a, slice, dir)
			}
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	start := ApplyMoves(NewState(DefaultGap), TPerm)
	for _, a := range Axes {
		for slice := 0; slice < Size; slice++ {
			for _, dir := range []Direction{Plus, Minus} {
				s := start
				for i := 0; i < 4; i++ {
					s = Rotate(s, a, slice, dir)
				}
				assert.True(t, s.ApproxEqual(start, tol), "%s=%d dir %s", a, slice, dir)
			}
		}
	}
}

func TestRotateChangesOnlyTheSlice(t *testing.T) {
	start := NewState(DefaultGap)
	turned := Rotate(start, AxisY, 0, Plus)

	for _, before := range start.Cubelets() {
		after, ok := turned.Cubelet(before.ID)
		require.True(t, ok)
		if start.InSlice(before, AxisY, 0) {
			assert.True(t, turned.InSlice(after, AxisY, 0), "%s left its slice", before.ID)
			assert.False(t, SameRotation(before.Orientation, after.Orientation, tol), "%s orientation unchanged", before.ID)
			continue
		}
		assert.Equal(t, before, after)
	}
}

func TestRotateDoesNotModifyInput(t *testing.T) {
	start := NewState(DefaultGap)
	snapshot := start.Cubelets()

	_ = Rotate(start, AxisX, 2, Plus)
	_ = Rotate(start, AxisZ, 1, Minus)

	assert.Equal(t, snapshot, start.Cubelets())
}

func TestRotateRejectsBadArguments(t *testing.T) {
	start := NewState(DefaultGap)
	assert.Equal(t, start.Cubelets(), Rotate(start, Axis("w"), 0, Plus).Cubelets())
	assert.Equal(t, start.Cubelets(), Rotate(start, AxisX, 3, Plus).Cubelets())
	assert.Equal(t, start.Cubelets(), Rotate(start, AxisX, -1, Plus).Cubelets())
	assert.Equal(t, start.Cubelets(), Rotate(start, AxisX, 0, Direction(2)).Cubelets())
}

func TestRotateKeepsPositionsOnLattice(t *testing.T) {
	s := ApplyMoves(NewState(DefaultGap), append(append([]Move{}, TPerm...), M, E, S, B2, D))
	m := s.Mapper()
	for _, c := range s.Cubelets() {
		g := m.GridCoords(c.Position)
		assert.Equal(t, m.Lattice(g), c.Position, "cubelet %s", c.ID)
	}
}

func TestColorTablesAreSideFaceCycles(t *testing.T) {
	for _, a := range Axes {
		for _, dir := range []Direction{Plus, Minus} {
			p := colorPerm(a, dir)

			// Bijection on the six slots.
			slots := make([]int, 0, 6)
			for _, src := range p {
				slots = append(slots, int(src))
			}
			sort.Ints(slots)
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, slots, "%s %s", a, dir)

			for _, f := range Faces {
				if f.Axis() == a {
					assert.Equal(t, f, p[f], "%s %s: axis face %s must stay", a, dir, f)
				} else {
					assert.NotEqual(t, f, p[f], "%s %s: side face %s must move", a, dir, f)
					assert.NotEqual(t, a, p[f].Axis(), "%s %s: side face %s fed from axis face", a, dir, f)
				}
			}

			// A 4-cycle returns after four applications and not before.
			colors := [6]Color{Red, Orange, White, Yellow, Blue, Green}
			c := colors
			for i := 1; i <= 4; i++ {
				c = p.apply(c)
				if i < 4 {
					assert.NotEqual(t, colors, c, "%s %s after %d", a, dir, i)
				}
			}
			assert.Equal(t, colors, c, "%s %s", a, dir)
		}
	}
}

func TestColorTablesFollowTheRotation(t *testing.T) {
	for _, a := range Axes {
		for _, dir := range []Direction{Plus, Minus} {
			r := TurnQuat(a, dir)
			p := colorPerm(a, dir)
			for _, f := range Faces {
				g, ok := FaceFromNormal(f.Normal().MulQuat(r))
				require.True(t, ok)
				assert.Equal(t, f, p[g], "%s %s: %s turns onto %s", a, dir, f, g)
			}
		}
	}
}

func TestQuarterTurnMatchesQuaternion(t *testing.T) {
	m := NewMapper(DefaultGap)
	v := m.Lattice(math32.Vec3i(2, 2, 0))
	for _, a := range Axes {
		for _, dir := range []Direction{Plus, Minus} {
			exact := quarterTurn(v, a, turnSign(a, dir))
			approx := v.MulQuat(TurnQuat(a, dir))
			assert.InDelta(t, approx.X, exact.X, tol)
			assert.InDelta(t, approx.Y, exact.Y, tol)
			assert.InDelta(t, approx.Z, exact.Z, tol)
		}
	}
}

// Position, orientation and colors are updated in one transform: the
// orientation must carry every original sticker onto the slot that now
// holds its color, and the home position onto the current one.
func TestRotateKeepsOrientationAndColorsInAgreement(t *testing.T) {
	moves := append(append([]Move{}, TPerm...), M, E, S, F2, BPrime, L, D)
	s := ApplyMoves(NewState(DefaultGap), moves)
	s = Rotate(s, AxisZ, 1, Minus)
	s = Rotate(s, AxisY, 2, Plus)

	m := s.Mapper()
	for _, c := range s.Cubelets() {
		home := homeCoords(t, c.ID)
		initial := solvedColors(int(home.X), int(home.Y), int(home.Z))

		for _, f := range Faces {
			if initial[f] == None {
				continue
			}
			g, ok := FaceFromNormal(f.Normal().MulQuat(c.Orientation))
			require.True(t, ok, "cubelet %s", c.ID)
			assert.Equal(t, initial[f], c.Colors[g], "cubelet %s sticker %s now faces %s", c.ID, f, g)
		}

		moved := m.Snap(m.Lattice(home).MulQuat(c.Orientation))
		assert.Equal(t, c.Position, moved, "cubelet %s", c.ID)
	}
}

func TestRotateScenarioAfterPick(t *testing.T) {
	s := NewState(DefaultGap)
	cycle := SelectionCycle{}.Pick(s, "2-1-1", math32.Vec3(1, 0, 0))
	sel, ok := cycle.Selection()
	require.True(t, ok)
	require.Equal(t, Selection{Axis: AxisX, Slice: 2}, sel)

	s, applied := RotateSelection(s, sel, ok, Plus)
	require.True(t, applied)

	c, ok := s.Cubelet("2-2-1")
	require.True(t, ok)

	// +Z <- +Y: the cubelet on the top edge moves to the front edge.
	assert.Equal(t, math32.Vec3i(2, 1, 2), s.GridCoords(c))
	assert.Equal(t, [6]Color{Red, None, None, None, White, None}, c.Colors)
}

func TestRotateSelectionWithoutSelection(t *testing.T) {
	s := NewState(DefaultGap)
	got, applied := RotateSelection(s, Selection{}, false, Plus)
	assert.False(t, applied)
	assert.Equal(t, s.Cubelets(), got.Cubelets())
}
