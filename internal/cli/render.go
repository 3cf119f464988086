package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubetimer/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles maps each color to a filled cell.
var stickerStyles = [6]lipgloss.Style{
	cube.White:  sticker("#FFFFFF"),
	cube.Yellow: sticker("#FFD500"),
	cube.Green:  sticker("#009B48"),
	cube.Blue:   sticker("#0046AD"),
	cube.Red:    sticker("#B71234"),
	cube.Orange: sticker("#FF5800"),
}

func sticker(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("#000000"))
}

// renderNet draws the unfolded cube. Without color it matches Cube.String.
func renderNet(c *cube.Cube, color bool) string {
	if !color {
		return c.String()
	}

	var sb strings.Builder
	row := func(face cube.Face, r int) {
		for col := 0; col < 3; col++ {
			s := c.Facelets[face][r*3+col]
			if s.Valid() {
				sb.WriteString(stickerStyles[s].Render(" " + s.String() + " "))
			} else {
				sb.WriteString(" ? ")
			}
		}
	}
	pad := strings.Repeat(" ", 9)

	for r := 0; r < 3; r++ {
		sb.WriteString(pad)
		row(cube.U, r)
		sb.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			row(face, r)
		}
		sb.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		sb.WriteString(pad)
		row(cube.D, r)
		sb.WriteByte('\n')
	}

	return sb.String()
}
