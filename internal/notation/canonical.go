// Package notation parses and formats Singmaster move strings.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubetimer/pkg/types"
)

// ErrUnknownToken is returned for tokens outside the 18-move vocabulary.
var ErrUnknownToken = errors.New("notation: unknown move token")

// ParseError reports the position of the first unparseable token.
type ParseError struct {
	Index int // zero-based token position
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: unknown move token %q at position %d", e.Token, e.Index+1)
}

func (e *ParseError) Unwrap() error {
	return ErrUnknownToken
}

// Tokenize splits s on runs of whitespace, dropping empty tokens.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// ParseToken parses one token of the 18-move vocabulary.
// Only upper-case faces with an optional ' or 2 are accepted.
func ParseToken(tok string) (types.Move, bool) {
	if len(tok) == 0 || len(tok) > 2 {
		return types.Move{}, false
	}

	face := types.Face(tok[:1])
	if !face.Valid() {
		return types.Move{}, false
	}

	turn := types.TurnCW
	if len(tok) == 2 {
		switch tok[1] {
		case '\'':
			turn = types.TurnCCW
		case '2':
			turn = types.Turn180
		default:
			return types.Move{}, false
		}
	}

	return types.Move{Face: face, Turn: turn}, true
}

// ParseSequence parses a whitespace-separated move sequence.
// It stops at the first unknown token and returns a *ParseError.
func ParseSequence(s string) ([]types.Move, error) {
	parts := Tokenize(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, ok := ParseToken(part)
		if !ok {
			return nil, &ParseError{Index: i, Token: part}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Format re-joins the tokens of s with single spaces. It does not validate.
func Format(s string) string {
	return strings.Join(Tokenize(s), " ")
}

// Invert returns the sequence that undoes moves.
func Invert(moves []types.Move) []types.Move {
	out := make([]types.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
