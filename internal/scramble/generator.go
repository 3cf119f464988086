// Package scramble generates and validates WCA-style scramble sequences.
//
// Two rules apply to consecutive moves: no two in a row turn the same face,
// and no three in a row turn faces on the same axis.
package scramble

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/cubetimer/pkg/types"
)

// Generator produces random scrambles. It is safe for concurrent use.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	maxAttempts int
}

// New creates a scramble generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	maxAttempts := options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
}

// Generate returns a scramble of length moves joined by single spaces.
//
// Moves are drawn uniformly from the 18-move vocabulary and kept only when
// they satisfy the adjacency rules against the last two kept moves. If the
// draw cap is reached first, the moves kept so far are returned.
func (g *Generator) Generate(length int) string {
	if length <= 0 {
		return ""
	}
	return strings.Join(g.generate(length), " ")
}

// GenerateMoves is Generate returning parsed moves.
func (g *Generator) GenerateMoves(length int) []types.Move {
	if length <= 0 {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.draw(length)
}

func (g *Generator) generate(length int) []string {
	moves := g.GenerateMoves(length)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// draw must be called with g.mu held. The cap bounds consecutive
// rejections at one position, so any length terminates.
func (g *Generator) draw(length int) []types.Move {
	moves := make([]types.Move, 0, length)
	for rejected := 0; rejected < g.maxAttempts && len(moves) < length; {
		next := types.MoveFromToken(uint8(g.rng.Intn(types.MoveCount)))
		if !allowed(moves, next) {
			rejected++
			continue
		}
		moves = append(moves, next)
		rejected = 0
	}

	if len(moves) < length {
		log.Debug().
			Int("length", length).
			Int("generated", len(moves)).
			Int("max_attempts", g.maxAttempts).
			Msg("scramble draw cap reached, returning partial sequence")
	}
	return moves
}

// Competition returns a 20-move scramble.
func (g *Generator) Competition() string {
	return g.Generate(KindCompetition.Length())
}

// Practice returns a 15-move scramble.
func (g *Generator) Practice() string {
	return g.Generate(KindPractice.Length())
}

// Long returns a 25-move scramble.
func (g *Generator) Long() string {
	return g.Generate(KindLong.Length())
}

// OfKind returns a scramble with the length of kind.
func (g *Generator) OfKind(kind Kind) string {
	return g.Generate(kind.Length())
}

// allowed reports whether next may follow the moves already in seq.
func allowed(seq []types.Move, next types.Move) bool {
	n := len(seq)
	if n == 0 {
		return true
	}
	prev := seq[n-1]
	if prev.Face == next.Face {
		return false
	}
	if n >= 2 {
		axis := prev.Axis()
		if seq[n-2].Axis() == axis && next.Axis() == axis {
			return false
		}
	}
	return true
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

func defaultGenerator() *Generator {
	defaultOnce.Do(func() {
		defaultGen = New(nil)
	})
	return defaultGen
}

// Generate returns a scramble of length moves from a shared time-seeded generator.
func Generate(length int) string {
	return defaultGenerator().Generate(length)
}

// Competition returns a 20-move scramble from the shared generator.
func Competition() string {
	return defaultGenerator().Competition()
}

// Practice returns a 15-move scramble from the shared generator.
func Practice() string {
	return defaultGenerator().Practice()
}

// Long returns a 25-move scramble from the shared generator.
func Long() string {
	return defaultGenerator().Long()
}
