// Package types contains shared move definitions for the cubetimer engine.
package types

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six faces in vocabulary order.
var Faces = [6]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Axis identifies one of the three pairs of opposite faces.
type Axis int

const (
	AxisNone Axis = iota
	AxisRL
	AxisUD
	AxisFB
)

func (a Axis) String() string {
	switch a {
	case AxisRL:
		return "RL"
	case AxisUD:
		return "UD"
	case AxisFB:
		return "FB"
	default:
		return "none"
	}
}

// Axis returns the rotation axis the face turns about.
func (f Face) Axis() Axis {
	switch f {
	case FaceR, FaceL:
		return AxisRL
	case FaceU, FaceD:
		return AxisUD
	case FaceF, FaceB:
		return AxisFB
	default:
		return AxisNone
	}
}

// Opposite returns the face across the cube, or "" for an unknown face.
func (f Face) Opposite() Face {
	switch f {
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	default:
		return ""
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f.Axis() != AxisNone
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Valid reports whether t is a quarter or half turn.
func (t Turn) Valid() bool {
	return t == TurnCW || t == TurnCCW || t == Turn180
}

// Suffix returns the notation modifier for the turn.
func (t Turn) Suffix() string {
	switch t {
	case TurnCCW:
		return "'"
	case Turn180:
		return "2"
	default:
		return ""
	}
}

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return string(m.Face) + m.Turn.Suffix()
}

// String is an alias for Notation.
func (m Move) String() string {
	return m.Notation()
}

// Axis returns the axis of the move's face.
func (m Move) Axis() Axis {
	return m.Face.Axis()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Turn180 && other.Turn == Turn180)
}

// Token encodes the move as a single byte.
// Encoding: face*3 + turn_code where:
//   - face: R=0, L=1, U=2, D=3, F=4, B=5
//   - turn_code: CW=0, CCW=1, 180=2
//
// Token order matches AllMoves.
func (m Move) Token() uint8 {
	var faceCode uint8
	switch m.Face {
	case FaceR:
		faceCode = 0
	case FaceL:
		faceCode = 1
	case FaceU:
		faceCode = 2
	case FaceD:
		faceCode = 3
	case FaceF:
		faceCode = 4
	case FaceB:
		faceCode = 5
	}

	var turnCode uint8
	switch m.Turn {
	case TurnCW:
		turnCode = 0
	case TurnCCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}

	return faceCode*3 + turnCode
}

// MoveFromToken decodes a token back into a Move. Tokens outside 0..17 wrap.
func MoveFromToken(token uint8) Move {
	token %= MoveCount
	turns := [3]Turn{TurnCW, TurnCCW, Turn180}
	return Move{Face: Faces[token/3], Turn: turns[token%3]}
}

// MoveCount is the size of the move vocabulary.
const MoveCount = 18

// AllMoves returns the 18 legal moves: R R' R2 L L' L2 U U' U2 D D' D2 F F' F2 B B' B2.
func AllMoves() []Move {
	moves := make([]Move, MoveCount)
	for i := range moves {
		moves[i] = MoveFromToken(uint8(i))
	}
	return moves
}
