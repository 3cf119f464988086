package scramble

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubetimer/internal/cube"
	"github.com/SeamusWaldron/cubetimer/internal/notation"
	"github.com/SeamusWaldron/cubetimer/pkg/types"
)

func vocabulary() map[string]bool {
	v := make(map[string]bool)
	for _, m := range types.AllMoves() {
		v[m.Notation()] = true
	}
	return v
}

func TestGenerateLengthAndVocabulary(t *testing.T) {
	g := New(&Options{Seed: 42})
	vocab := vocabulary()

	for _, n := range []int{1, 2, 3, 15, 20, 25, 100} {
		s := g.Generate(n)
		tokens := strings.Split(s, " ")
		require.Len(t, tokens, n, "scramble %q", s)
		for _, tok := range tokens {
			assert.True(t, vocab[tok], "token %q not in vocabulary", tok)
		}
		assert.True(t, Validate(s), "generated scramble should validate: %q", s)
		assert.Equal(t, s, Format(s), "generated scramble should already be formatted")
	}
}

func TestGenerateZeroLength(t *testing.T) {
	g := New(nil)
	assert.Equal(t, "", g.Generate(0))
	assert.Equal(t, "", g.Generate(-3))
	assert.Nil(t, g.GenerateMoves(0))
}

func TestGenerateManyAlwaysValid(t *testing.T) {
	g := New(&Options{Seed: 7})
	for i := 0; i < 500; i++ {
		s := g.Competition()
		require.NoError(t, Check(s))
	}
}

func TestGenerateRandomness(t *testing.T) {
	g := New(nil)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[g.Generate(20)] = true
	}
	assert.GreaterOrEqual(t, len(seen), 95)
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	a := New(&Options{Seed: 1234})
	b := New(&Options{Seed: 1234})
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(20), b.Generate(20))
	}
}

func TestGenerateDrawCapReturnsPartial(t *testing.T) {
	// One rejection ends the draw; 200 draws without one is vanishingly unlikely.
	g := New(&Options{Seed: 99, MaxAttempts: 1})
	s := g.Generate(200)
	tokens := notation.Tokenize(s)
	assert.Less(t, len(tokens), 200)
	assert.NotEmpty(t, tokens, "the first draw is always accepted")
	assert.True(t, Validate(s))
}

func TestGenerateLongScramblesAreComplete(t *testing.T) {
	for _, n := range []int{1000, 5000} {
		s := New(DefaultOptions()).Generate(n)
		assert.Len(t, notation.Tokenize(s), n)
		assert.True(t, Validate(s))
	}
	assert.Len(t, notation.Tokenize(Generate(1000)), 1000)
}

func TestFixedLengthGenerators(t *testing.T) {
	g := New(&Options{Seed: 3})
	assert.Len(t, notation.Tokenize(g.Competition()), 20)
	assert.Len(t, notation.Tokenize(g.Practice()), 15)
	assert.Len(t, notation.Tokenize(g.Long()), 25)
	assert.Len(t, notation.Tokenize(g.OfKind(KindPractice)), 15)

	assert.Len(t, notation.Tokenize(Competition()), 20)
	assert.Len(t, notation.Tokenize(Practice()), 15)
	assert.Len(t, notation.Tokenize(Long()), 25)
	assert.Len(t, notation.Tokenize(Generate(9)), 9)
}

func TestGeneratorConcurrentUse(t *testing.T) {
	g := New(&Options{Seed: 11})
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.Competition()
		}(i)
	}
	wg.Wait()

	for _, s := range results {
		assert.True(t, Validate(s))
	}
}

func TestGeneratedScrambleKeepsCubeWellFormed(t *testing.T) {
	g := New(&Options{Seed: 5})
	for i := 0; i < 50; i++ {
		c := cube.New()
		require.NoError(t, c.ApplyScramble(g.Long()))

		for color, n := range c.ColorCounts() {
			assert.Equal(t, 9, n, "color %v", cube.Color(color))
		}
		centers := c.Centers()
		for _, face := range cube.Faces {
			assert.Equal(t, face.SolvedColor(), centers[face])
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"", true},
		{"   \t\n", true},
		{"R", true},
		{"R U R' U'", true},
		{"R L U", true},
		{"R L2 U D' F B2", true},
		{"  R\tU\n R'  ", true},
		{"R R2", false},
		{"R R'", false},
		{"U U", false},
		{"R L R", false},
		{"U D U'", false},
		{"F B2 F'", false},
		{"R L' U L", true},
		{"r U", false},
		{"R M", false},
		{"R x", false},
		{"R2'", false},
		{"R''", false},
		{"Rw U", false},
		{"R U E", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, Validate(tc.in), "Validate(%q)", tc.in)
	}
}

func TestCheckReasons(t *testing.T) {
	cases := []struct {
		in     string
		index  int
		token  string
		reason Reason
	}{
		{"R R2", 1, "R2", ReasonSameFace},
		{"U R L R'", 3, "R'", ReasonSameAxis},
		{"F B F", 2, "F", ReasonSameAxis},
		{"R U m", 2, "m", ReasonUnknownToken},
	}

	for _, tc := range cases {
		err := Check(tc.in)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "Check(%q) = %v", tc.in, err)
		assert.Equal(t, tc.index, verr.Index, tc.in)
		assert.Equal(t, tc.token, verr.Token, tc.in)
		assert.Equal(t, tc.reason, verr.Reason, tc.in)
		assert.ErrorIs(t, err, ErrInvalidScramble)
		assert.NotEmpty(t, verr.Error())
	}

	assert.NoError(t, Check("R U F"))
}

func TestFormatIdempotent(t *testing.T) {
	for _, s := range []string{"", " R  U ", "R\t\tU'\nF2", "garbage   in"} {
		once := Format(s)
		assert.Equal(t, once, Format(once))
		assert.False(t, strings.HasPrefix(once, " "))
		assert.False(t, strings.HasSuffix(once, " "))
		assert.NotContains(t, once, "  ")
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Competition ")
	require.NoError(t, err)
	assert.Equal(t, KindCompetition, k)
	assert.Equal(t, 20, k.Length())
	assert.Equal(t, 15, KindPractice.Length())
	assert.Equal(t, 25, KindLong.Length())

	_, err = ParseKind("blindfold")
	assert.ErrorIs(t, err, ErrUnknownKind)
	for _, k := range Kinds {
		assert.Contains(t, err.Error(), string(k))
	}
}
