package cubelets

import (
	"strings"

	"cogentcore.org/core/math32"
)

// Facelet is one visible sticker of the puzzle.
type Facelet struct {
	CubeletID string // Cubelet carrying the sticker
	Face      Face   // World direction the sticker faces
	Color     Color
}

// Net is the unfolded view of the six faces. Each face has 9 facelets
// indexed as seen from outside the puzzle:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is viewed with F at the bottom, D with F at the top, and the four
// side faces with U at the top.
type Net [6][9]Facelet

// NetCell locates a face block in the unfolded cross:
//
//	   U
//	 L F R B
//	   D
type NetCell struct {
	Row, Col int
}

// NetLayout gives the block position of each face in the cross.
var NetLayout = [6]NetCell{
	FaceU: {0, 1},
	FaceL: {1, 0},
	FaceF: {1, 1},
	FaceR: {1, 2},
	FaceB: {1, 3},
	FaceD: {2, 1},
}

// faceletString order, as used by most solvers.
var urfdlb = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Net derives the facelet view of the state.
func (s State) Net() Net {
	var n Net
	for _, c := range s.cubelets {
		g := s.GridCoords(c)
		for _, f := range Faces {
			if g.Dim(f.Axis().Dim()) != int32(f.Layer()) {
				continue
			}
			n[f][faceletIndex(f, g)] = Facelet{
				CubeletID: c.ID,
				Face:      f,
				Color:     c.Colors[f],
			}
		}
	}
	return n
}

// faceletIndex returns the 0..8 position of the sticker of the cubelet at
// grid coordinates g on face f.
func faceletIndex(f Face, g math32.Vector3i) int {
	x, y, z := int(g.X), int(g.Y), int(g.Z)
	var row, col int
	switch f {
	case FaceF:
		row, col = 2-y, x
	case FaceB:
		row, col = 2-y, 2-x
	case FaceR:
		row, col = 2-y, 2-z
	case FaceL:
		row, col = 2-y, z
	case FaceU:
		row, col = z, x
	case FaceD:
		row, col = 2-z, x
	}
	return row*Size + col
}

// IsSolved returns true if every face shows a single color.
func (n Net) IsSolved() bool {
	for _, face := range n {
		first := face[0].Color
		if first == None {
			return false
		}
		for _, fl := range face[1:] {
			if fl.Color != first {
				return false
			}
		}
	}
	return true
}

// IsSolved returns true if every face shows a single color.
func (s State) IsSolved() bool {
	return s.Net().IsSolved()
}

// FaceletString returns the 54 sticker colors in U, R, F, D, L, B face
// order.
func (n Net) FaceletString() string {
	var b strings.Builder
	b.Grow(54)
	for _, f := range urfdlb {
		for _, fl := range n[f] {
			b.WriteString(fl.Color.String())
		}
	}
	return b.String()
}

// String returns a text representation of the net.
func (n Net) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(n[FaceU][row*3+col].Color.String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(n[face][row*3+col].Color.String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(n[FaceD][row*3+col].Color.String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
