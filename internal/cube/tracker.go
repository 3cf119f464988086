package cube

import "github.com/SeamusWaldron/cubetimer/pkg/types"

// Tracker wraps a Cube with an undoable move history.
type Tracker struct {
	cube      *Cube
	history   []types.Move
	redo      []types.Move
	wasSolved bool
	onSolved  func(moves int)
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		cube:      New(),
		wasSolved: true,
	}
}

// SetSolvedCallback sets a callback that fires when a move brings the cube
// back to solved. It receives the number of moves in the history.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.onSolved = cb
}

// Reset resets the tracker to a solved cube with no history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.history = nil
	t.redo = nil
	t.wasSolved = true
}

// Start resets the tracker and applies scramble without recording it, so
// undo never steps back into the scramble.
func (t *Tracker) Start(scramble string) error {
	t.Reset()
	if err := t.cube.ApplyScramble(scramble); err != nil {
		return err
	}
	t.wasSolved = t.cube.IsSolved()
	return nil
}

// Apply parses and applies one token. Tokens on unknown faces change
// nothing and are not recorded.
func (t *Tracker) Apply(token string) error {
	if token == "" {
		return ErrEmptyMove
	}
	face, ok := faceFromLetter(token[0])
	if !ok {
		return nil
	}
	t.ApplyMove(types.Move{Face: face.notation(), Turn: turnOf(token[1:])})
	return nil
}

// ApplyMove applies a move, records it and clears the redo stack. Moves
// with an unknown face or turn are ignored.
func (t *Tracker) ApplyMove(m types.Move) {
	if _, ok := FaceOf(m.Face); !ok || !m.Turn.Valid() {
		return
	}
	t.cube.ApplyMove(m)
	t.history = append(t.history, m)
	t.redo = t.redo[:0]
	t.checkSolved()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the last move. It returns false when there is nothing to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.ApplyMove(last.Inverse())
	t.redo = append(t.redo, last)
	t.wasSolved = t.cube.IsSolved()
	return true
}

// Redo re-applies the most recently undone move.
func (t *Tracker) Redo() bool {
	if len(t.redo) == 0 {
		return false
	}
	m := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]
	t.cube.ApplyMove(m)
	t.history = append(t.history, m)
	t.checkSolved()
	return true
}

// checkSolved fires the solved callback on a transition into the solved state.
func (t *Tracker) checkSolved() {
	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.onSolved != nil {
		t.onSolved(len(t.history))
	}
	t.wasSolved = solved
}

// History returns a copy of the applied moves, oldest first.
func (t *Tracker) History() []types.Move {
	out := make([]types.Move, len(t.history))
	copy(out, t.history)
	return out
}

// CanRedo reports whether Redo has a move to apply.
func (t *Tracker) CanRedo() bool {
	return len(t.redo) > 0
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Snapshot returns an independent copy of the current cube.
func (t *Tracker) Snapshot() *Cube {
	return t.cube.Clone()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
