package cube

import "github.com/SeamusWaldron/cubetimer/pkg/types"

// strip is three facelets on one face, read in a fixed order.
type strip struct {
	face    Face
	indices [3]int
}

// ring lists the four side strips touched by a face turn in clockwise
// receive order: ring[i] takes the stickers of ring[i+1], ring[3] takes ring[0].
type ring [4]strip

// rings is indexed by Face. Index orders line up stickers that travel together.
var rings = [6]ring{
	U: {
		{F, [3]int{0, 1, 2}},
		{R, [3]int{0, 1, 2}},
		{B, [3]int{0, 1, 2}},
		{L, [3]int{0, 1, 2}},
	},
	D: {
		{F, [3]int{6, 7, 8}},
		{L, [3]int{6, 7, 8}},
		{B, [3]int{6, 7, 8}},
		{R, [3]int{6, 7, 8}},
	},
	F: {
		{U, [3]int{6, 7, 8}},
		{L, [3]int{8, 5, 2}},
		{D, [3]int{2, 1, 0}},
		{R, [3]int{0, 3, 6}},
	},
	B: {
		{U, [3]int{0, 1, 2}},
		{R, [3]int{2, 5, 8}},
		{D, [3]int{8, 7, 6}},
		{L, [3]int{6, 3, 0}},
	},
	R: {
		{U, [3]int{2, 5, 8}},
		{F, [3]int{2, 5, 8}},
		{D, [3]int{2, 5, 8}},
		{B, [3]int{6, 3, 0}},
	},
	L: {
		{U, [3]int{0, 3, 6}},
		{B, [3]int{8, 5, 2}},
		{D, [3]int{0, 3, 6}},
		{F, [3]int{0, 3, 6}},
	},
}

// clockwiseSource maps each destination index of a clockwise face rotation
// to the index it is read from. Index 4 maps to itself.
var clockwiseSource = [9]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

// Turn applies a face turn to the cube.
// Unknown turn values leave the cube unchanged.
func (c *Cube) Turn(face Face, turn types.Turn) {
	switch turn {
	case types.TurnCW:
		c.quarter(face, true)
	case types.TurnCCW:
		c.quarter(face, false)
	case types.Turn180:
		c.quarter(face, true)
		c.quarter(face, true)
	}
}

// Move applies a move to the cube.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees
func (c *Cube) Move(face Face, turn int) {
	c.Turn(face, types.Turn(turn))
}

// quarter applies a 90 degree turn of face.
func (c *Cube) quarter(face Face, clockwise bool) {
	c.rotateFace(face, clockwise)
	c.cycleRing(face, clockwise)
}

// rotateFace turns the stickers of a single face by 90 degrees.
func (c *Cube) rotateFace(face Face, clockwise bool) {
	old := c.Facelets[face]
	f := &c.Facelets[face]
	for dst, src := range clockwiseSource {
		if clockwise {
			f[dst] = old[src]
		} else {
			f[src] = old[dst]
		}
	}
}

// cycleRing moves the four side strips around face.
// All strips are read before any is written since strips of different
// rings share faces.
func (c *Cube) cycleRing(face Face, clockwise bool) {
	rg := &rings[face]

	var saved [4][3]Color
	for i, s := range rg {
		for j, idx := range s.indices {
			saved[i][j] = c.Facelets[s.face][idx]
		}
	}

	for i, s := range rg {
		from := (i + 1) % 4
		if !clockwise {
			from = (i + 3) % 4
		}
		for j, idx := range s.indices {
			c.Facelets[s.face][idx] = saved[from][j]
		}
	}
}
