package cubetimer

import "github.com/SeamusWaldron/cubetimer/pkg/types"

// Predefined moves, one clockwise, prime and half turn per face.
//
//	cube.ApplyMoves([]cubetimer.Move{cubetimer.R, cubetimer.U, cubetimer.RPrime, cubetimer.UPrime})
var (
	R, RPrime, R2 = turnsOf(types.FaceR)
	L, LPrime, L2 = turnsOf(types.FaceL)
	U, UPrime, U2 = turnsOf(types.FaceU)
	D, DPrime, D2 = turnsOf(types.FaceD)
	F, FPrime, F2 = turnsOf(types.FaceF)
	B, BPrime, B2 = turnsOf(types.FaceB)
)

func turnsOf(f types.Face) (cw, ccw, half Move) {
	return Move{Face: f, Turn: types.TurnCW},
		Move{Face: f, Turn: types.TurnCCW},
		Move{Face: f, Turn: types.Turn180}
}

// Algorithms used for practice and in tests.
var (
	// SexyMove is R U R' U'; six repetitions return to the start.
	SexyMove = []Move{R, U, RPrime, UPrime}

	// TPerm swaps two edges and two corners of the last layer.
	TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
)
