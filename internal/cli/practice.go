package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/cube"
	"github.com/SeamusWaldron/cubetimer/internal/notation"
	"github.com/SeamusWaldron/cubetimer/internal/scramble"
)

func newPracticeCmd(a *app) *cobra.Command {
	var (
		kind  string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Interactive scramble-and-solve editor",
		Long: `Start an interactive TUI that scrambles a virtual cube and lets you type
moves to solve it. The cube preview follows the move being typed.

Keyboard shortcuts:
  R U F' ...  - Type moves; space or enter commits them
  backspace   - Delete the last typed character
  ctrl+z      - Undo the last committed move
  ctrl+y      - Redo
  ctrl+n      - New scramble
  esc/ctrl+c  - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := a.cfg.Kind()
			if cmd.Flags().Changed("kind") {
				parsed, err := scramble.ParseKind(kind)
				if err != nil {
					return err
				}
				k = parsed
			}

			model := newPracticeModel(scramble.New(a.cfg.GeneratorOptions()), k, !plain)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Scramble kind ("+scramble.KindNames()+")")
	cmd.Flags().BoolVar(&plain, "plain", false, "Draw the cube without colors")
	return cmd
}

// Model
type practiceModel struct {
	gen  *scramble.Generator
	kind scramble.Kind

	scramble string
	tracker  *cube.Tracker
	input    string // uncommitted keystrokes

	solvedIn int // move count of the last solve, 0 if not solved
	color    bool
	err      error
	quitting bool
}

func newPracticeModel(gen *scramble.Generator, kind scramble.Kind, color bool) *practiceModel {
	m := &practiceModel{
		gen:     gen,
		kind:    kind,
		tracker: cube.NewTracker(),
		color:   color,
	}
	m.tracker.SetSolvedCallback(func(moves int) {
		m.solvedIn = moves
	})
	m.newScramble()
	return m
}

func (m *practiceModel) newScramble() {
	m.scramble = m.gen.OfKind(m.kind)
	m.input = ""
	m.solvedIn = 0
	m.err = m.tracker.Start(m.scramble)
}

func (m *practiceModel) Init() tea.Cmd {
	return nil
}

// commit applies every token typed so far.
func (m *practiceModel) commit() {
	for _, tok := range notation.Tokenize(m.input) {
		if err := m.tracker.Apply(tok); err != nil {
			m.err = err
		}
	}
	m.input = ""
}

// preview returns the cube with the uncommitted input applied. Partial
// tokens that name no face leave it unchanged.
func (m *practiceModel) preview() *cube.Cube {
	c := m.tracker.Snapshot()
	_ = c.ApplyScramble(m.input)
	return c
}

func (m *practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeySpace, tea.KeyEnter:
		m.commit()

	case tea.KeyBackspace:
		if n := len(m.input); n > 0 {
			m.input = m.input[:n-1]
		}

	case tea.KeyCtrlZ:
		m.input = ""
		m.tracker.Undo()

	case tea.KeyCtrlY:
		m.input = ""
		m.tracker.Redo()

	case tea.KeyCtrlN:
		m.newScramble()

	case tea.KeyRunes:
		m.input += string(key.Runes)
	}

	return m, nil
}

func (m *practiceModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("cubetimer practice (%s)", m.kind)))
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render("Scramble: "))
	sb.WriteString(m.scramble)
	sb.WriteString("\n\n")

	sb.WriteString(renderNet(m.preview(), m.color))
	sb.WriteString("\n")

	history := notation.FormatSequence(m.tracker.History())
	sb.WriteString(statusStyle.Render("Moves: "))
	sb.WriteString(moveStyle.Render(history))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render("> "))
	sb.WriteString(m.input)
	sb.WriteString("\n\n")

	if m.tracker.IsSolved() && m.solvedIn > 0 {
		sb.WriteString(solvedStyle.Render(fmt.Sprintf("Solved in %d moves!", m.solvedIn)))
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("space/enter commit | ctrl+z undo | ctrl+y redo | ctrl+n new scramble | esc quit"))
	sb.WriteString("\n")

	return sb.String()
}
