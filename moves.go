package cubelets

// Predefined quarter and half turns of every layer. Prime is
// counter-clockwise and 2 is a half turn, seen from the named face.
//
// Example:
//
//	s = cubelets.ApplyMoves(s, []cubelets.Move{cubelets.R, cubelets.U, cubelets.RPrime, cubelets.UPrime})
var (
	// Right face moves
	R      = Move{Layer: LayerR, Turn: CW}
	RPrime = Move{Layer: LayerR, Turn: CCW}
	R2     = Move{Layer: LayerR, Turn: Double}

	// Left face moves
	L      = Move{Layer: LayerL, Turn: CW}
	LPrime = Move{Layer: LayerL, Turn: CCW}
	L2     = Move{Layer: LayerL, Turn: Double}

	// Up face moves
	U      = Move{Layer: LayerU, Turn: CW}
	UPrime = Move{Layer: LayerU, Turn: CCW}
	U2     = Move{Layer: LayerU, Turn: Double}

	// Down face moves
	D      = Move{Layer: LayerD, Turn: CW}
	DPrime = Move{Layer: LayerD, Turn: CCW}
	D2     = Move{Layer: LayerD, Turn: Double}

	// Front face moves
	F      = Move{Layer: LayerF, Turn: CW}
	FPrime = Move{Layer: LayerF, Turn: CCW}
	F2     = Move{Layer: LayerF, Turn: Double}

	// Back face moves
	B      = Move{Layer: LayerB, Turn: CW}
	BPrime = Move{Layer: LayerB, Turn: CCW}
	B2     = Move{Layer: LayerB, Turn: Double}

	// Middle slices, clockwise as seen from L, D and F
	M = Move{Layer: LayerM, Turn: CW}
	E = Move{Layer: LayerE, Turn: CW}
	S = Move{Layer: LayerS, Turn: CW}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
