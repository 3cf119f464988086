package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubetimer/internal/cube"
	"github.com/SeamusWaldron/cubetimer/internal/notation"
	"github.com/SeamusWaldron/cubetimer/internal/scramble"
)

func newTestPracticeModel(t *testing.T) *practiceModel {
	t.Helper()
	m := newPracticeModel(scramble.New(&scramble.Options{Seed: 17}), scramble.KindPractice, false)
	require.NoError(t, m.err)
	require.Len(t, notation.Tokenize(m.scramble), 15)
	require.False(t, m.tracker.IsSolved())
	return m
}

func typeText(m *practiceModel, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPracticeSolveWithInverse(t *testing.T) {
	m := newTestPracticeModel(t)

	moves, err := notation.ParseSequence(m.scramble)
	require.NoError(t, err)
	typeText(m, notation.FormatSequence(notation.Invert(moves)))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.tracker.IsSolved())
	assert.Equal(t, 15, m.solvedIn)
	assert.Contains(t, m.View(), "Solved in 15 moves!")
}

func TestPracticePreviewFollowsPartialInput(t *testing.T) {
	m := newTestPracticeModel(t)
	before := m.tracker.Snapshot()

	typeText(m, "2")
	assert.True(t, m.preview().Equal(before), "a lone modifier names no face")

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(m, "R")
	withR := before.Clone()
	withR.Move(cube.R, 1)
	assert.True(t, m.preview().Equal(withR))
	assert.True(t, m.tracker.Cube().Equal(before), "preview must not commit")

	typeText(m, "'")
	withRPrime := before.Clone()
	withRPrime.Move(cube.R, -1)
	assert.True(t, m.preview().Equal(withRPrime))
}

func TestPracticeUndoRedoAndNewScramble(t *testing.T) {
	m := newTestPracticeModel(t)
	first := m.scramble
	start := m.tracker.Snapshot()

	typeText(m, "R U ")
	assert.Len(t, m.tracker.History(), 2)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.True(t, m.tracker.Cube().Equal(start))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "R", notation.FormatSequence(m.tracker.History()))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.NotEqual(t, first, m.scramble)
	assert.Empty(t, m.tracker.History())
}

func TestPracticeQuit(t *testing.T) {
	m := newTestPracticeModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}
