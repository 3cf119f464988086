package scramble

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubetimer/internal/notation"
	"github.com/SeamusWaldron/cubetimer/pkg/types"
)

// ErrInvalidScramble is wrapped by every *ValidationError.
var ErrInvalidScramble = errors.New("scramble: invalid scramble")

// Reason classifies a validation failure.
type Reason string

const (
	ReasonUnknownToken Reason = "unknown_token"
	ReasonSameFace     Reason = "same_face"
	ReasonSameAxis     Reason = "same_axis"
)

// ValidationError describes the first rule a scramble breaks.
type ValidationError struct {
	Index  int // zero-based token position
	Token  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	var why string
	switch e.Reason {
	case ReasonUnknownToken:
		why = "is not a legal move"
	case ReasonSameFace:
		why = "turns the same face as the previous move"
	case ReasonSameAxis:
		why = "is the third move in a row on one axis"
	default:
		why = string(e.Reason)
	}
	return fmt.Sprintf("move %d %q %s", e.Index+1, e.Token, why)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidScramble
}

// Check returns nil if s is a valid scramble, or a *ValidationError for the
// first offending token. Empty and blank strings are valid.
func Check(s string) error {
	tokens := notation.Tokenize(s)
	seq := make([]types.Move, 0, len(tokens))

	for i, tok := range tokens {
		m, ok := notation.ParseToken(tok)
		if !ok {
			return &ValidationError{Index: i, Token: tok, Reason: ReasonUnknownToken}
		}
		if !allowed(seq, m) {
			reason := ReasonSameAxis
			if seq[len(seq)-1].Face == m.Face {
				reason = ReasonSameFace
			}
			return &ValidationError{Index: i, Token: tok, Reason: reason}
		}
		seq = append(seq, m)
	}
	return nil
}

// Validate reports whether every token of s is in the move vocabulary and
// consecutive moves follow the adjacency rules.
func Validate(s string) bool {
	return Check(s) == nil
}

// Format normalizes whitespace in s without validating it.
func Format(s string) string {
	return notation.Format(s)
}
