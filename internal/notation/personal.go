package notation

import "github.com/SeamusWaldron/cubetimer/pkg/types"

// Describe returns a plain-language description of a move, as seen with
// white on top and green in front.
//
//	R  -> "right face clockwise"
//	U' -> "up face counter-clockwise"
//	F2 -> "front face half turn"
func Describe(m types.Move) string {
	var face string
	switch m.Face {
	case types.FaceR:
		face = "right"
	case types.FaceL:
		face = "left"
	case types.FaceU:
		face = "up"
	case types.FaceD:
		face = "down"
	case types.FaceF:
		face = "front"
	case types.FaceB:
		face = "back"
	default:
		return m.Notation()
	}

	switch m.Turn {
	case types.TurnCCW:
		return face + " face counter-clockwise"
	case types.Turn180:
		return face + " face half turn"
	default:
		return face + " face clockwise"
	}
}
