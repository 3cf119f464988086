package cube

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubetimer/pkg/types"
)

// ErrEmptyMove is returned when a move token has no face letter to read.
var ErrEmptyMove = errors.New("cube: empty move token")

// Apply applies a single notation token such as "R", "u'" or "F2".
//
// An empty token is an error. A token whose first character is not a face
// letter is ignored, so editors can pass partially typed input through.
// A modifier containing '2' is a half turn, otherwise one containing '\''
// is a counter-clockwise turn, otherwise the turn is clockwise.
func (c *Cube) Apply(token string) error {
	if token == "" {
		return ErrEmptyMove
	}

	face, ok := faceFromLetter(token[0])
	if !ok {
		return nil
	}

	c.Turn(face, turnOf(token[1:]))
	return nil
}

// turnOf reads the turn from a token modifier.
func turnOf(modifier string) types.Turn {
	switch {
	case strings.Contains(modifier, "2"):
		return types.Turn180
	case strings.Contains(modifier, "'"):
		return types.TurnCCW
	default:
		return types.TurnCW
	}
}

// ApplyScramble applies every whitespace-separated token in s.
// An empty or blank scramble leaves the cube unchanged.
func (c *Cube) ApplyScramble(s string) error {
	for i, tok := range strings.Fields(s) {
		if err := c.Apply(tok); err != nil {
			return fmt.Errorf("move %d %q: %w", i+1, tok, err)
		}
	}
	return nil
}

// ApplyMove applies a types.Move to the cube.
// Moves on unknown faces are ignored.
func (c *Cube) ApplyMove(m types.Move) {
	face, ok := FaceOf(m.Face)
	if !ok {
		return
	}
	c.Turn(face, m.Turn)
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}
