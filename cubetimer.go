// Package cubetimer provides WCA-style scramble generation and a 3x3
// Rubik's cube simulator for speedcubing tools.
//
// # Features
//
//   - Random-move scrambles that never repeat a face and never make three
//     consecutive moves on one axis
//   - Scramble validation and whitespace normalization
//   - A facelet cube model that applies scrambles and reports whether it
//     is solved
//
// # Quick Start
//
// Generate a scramble and apply it to a solved cube:
//
//	s := cubetimer.CompetitionScramble()
//	fmt.Println(s)
//
//	cube := cubetimer.NewCube()
//	if err := cube.ApplyScramble(s); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cube)
//
// # Reproducible Scrambles
//
// A seeded generator produces the same sequence every run:
//
//	gen := cubetimer.NewGenerator(&cubetimer.GeneratorOptions{Seed: 42})
//	fmt.Println(gen.Generate(25))
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubetimer.R      // Right clockwise
//	cubetimer.RPrime // Right counter-clockwise
//	cubetimer.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package cubetimer

import (
	"github.com/SeamusWaldron/cubetimer/internal/cube"
	"github.com/SeamusWaldron/cubetimer/internal/notation"
	"github.com/SeamusWaldron/cubetimer/internal/scramble"
	"github.com/SeamusWaldron/cubetimer/pkg/types"
)

// Cube is a 3x3 facelet cube.
type Cube = cube.Cube

// Tracker records moves applied to a cube with undo and redo.
type Tracker = cube.Tracker

// Move is a single face turn.
type Move = types.Move

// Generator produces random scrambles.
type Generator = scramble.Generator

// GeneratorOptions configures a Generator.
type GeneratorOptions = scramble.Options

// ValidationError describes the first rule a scramble breaks.
type ValidationError = scramble.ValidationError

var (
	// ErrEmptyMove is returned when a move token is empty.
	ErrEmptyMove = cube.ErrEmptyMove

	// ErrInvalidScramble is wrapped by every ValidationError.
	ErrInvalidScramble = scramble.ErrInvalidScramble
)

// Scramble lengths.
const (
	CompetitionLength = 20
	PracticeLength    = 15
	LongLength        = 25
)

// NewCube returns a solved cube.
func NewCube() *Cube {
	return cube.New()
}

// NewTracker returns a tracker holding a solved cube.
func NewTracker() *Tracker {
	return cube.NewTracker()
}

// NewGenerator returns a scramble generator. A nil options value uses the
// defaults and a time-based seed.
func NewGenerator(options *GeneratorOptions) *Generator {
	return scramble.New(options)
}

// GenerateScramble returns a scramble of n moves from the shared generator.
func GenerateScramble(n int) string {
	return scramble.Generate(n)
}

// CompetitionScramble returns a 20 move scramble.
func CompetitionScramble() string {
	return scramble.Competition()
}

// PracticeScramble returns a 15 move scramble.
func PracticeScramble() string {
	return scramble.Practice()
}

// LongScramble returns a 25 move scramble.
func LongScramble() string {
	return scramble.Long()
}

// ValidateScramble reports whether s is a well-formed scramble.
func ValidateScramble(s string) bool {
	return scramble.Validate(s)
}

// CheckScramble returns a *ValidationError describing why s is not a
// well-formed scramble, or nil.
func CheckScramble(s string) error {
	return scramble.Check(s)
}

// FormatScramble collapses runs of whitespace to single spaces.
func FormatScramble(s string) string {
	return scramble.Format(s)
}

// ParseMoves parses strict notation such as "R U2 F'".
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves renders moves as space-separated notation.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return notation.Invert(moves)
}
