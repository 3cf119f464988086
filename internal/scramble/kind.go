package scramble

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("scramble: unknown scramble kind")

// Kind names a fixed scramble length.
type Kind string

const (
	KindCompetition Kind = "competition" // 20 moves
	KindPractice    Kind = "practice"    // 15 moves
	KindLong        Kind = "long"        // 25 moves
)

// Kinds lists every scramble kind.
var Kinds = []Kind{KindCompetition, KindPractice, KindLong}

// KindNames returns the kind names as a comma-separated list.
func KindNames() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Length returns the move count for the kind, or 0 if unknown.
func (k Kind) Length() int {
	switch k {
	case KindCompetition:
		return 20
	case KindPractice:
		return 15
	case KindLong:
		return 25
	default:
		return 0
	}
}

// ParseKind parses a kind name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k.Length() == 0 {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, s, KindNames())
	}
	return k, nil
}
