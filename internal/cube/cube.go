// Package cube provides a 3x3 Rubik's cube facelet model and move engine.
package cube

import (
	"strings"

	"github.com/SeamusWaldron/cubetimer/pkg/types"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the six sticker colors.
func (c Color) Valid() bool {
	return c <= Orange
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Faces lists every face in model order.
var Faces = [6]Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of the face when the cube is solved.
func (f Face) SolvedColor() Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	default:
		return Orange
	}
}

// Axis returns the axis the face turns about.
func (f Face) Axis() types.Axis {
	return f.notation().Axis()
}

func (f Face) notation() types.Face {
	switch f {
	case U:
		return types.FaceU
	case D:
		return types.FaceD
	case F:
		return types.FaceF
	case B:
		return types.FaceB
	case R:
		return types.FaceR
	case L:
		return types.FaceL
	default:
		return ""
	}
}

// faceFromLetter maps a face letter (either case) to a Face.
func faceFromLetter(b byte) (Face, bool) {
	switch b {
	case 'U', 'u':
		return U, true
	case 'D', 'd':
		return D, true
	case 'F', 'f':
		return F, true
	case 'B', 'b':
		return B, true
	case 'R', 'r':
		return R, true
	case 'L', 'l':
		return L, true
	default:
		return 0, false
	}
}

// FaceOf converts a notation face to a model face.
func FaceOf(f types.Face) (Face, bool) {
	if len(f) != 1 {
		return 0, false
	}
	return faceFromLetter(f[0])
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
// Cube is a plain value: assigning it copies the whole state.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for _, face := range Faces {
		color := face.SolvedColor()
		for i := range c.Facelets[face] {
			c.Facelets[face][i] = color
		}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes have identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets == other.Facelets
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		expected := face.SolvedColor()
		for _, color := range c.Facelets[face] {
			if color != expected {
				return false
			}
		}
	}
	return true
}

// Face returns a copy of one face's stickers.
func (c *Cube) Face(f Face) [9]Color {
	return c.Facelets[f]
}

// Centers returns the center sticker of each face in model order.
func (c *Cube) Centers() [6]Color {
	var centers [6]Color
	for _, face := range Faces {
		centers[face] = c.Facelets[face][4]
	}
	return centers
}

// ColorCounts returns how many stickers of each color are on the cube.
// A well-formed cube always has 9 of each; out-of-range colors are not counted.
func (c *Cube) ColorCounts() [6]int {
	var counts [6]int
	for _, face := range c.Facelets {
		for _, color := range face {
			if color.Valid() {
				counts[color]++
			}
		}
	}
	return counts
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var sb strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[face][row*3+col].String())
			sb.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(U, row)
		sb.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			writeRow(face, row)
		}
		sb.WriteByte('\n')
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(D, row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
