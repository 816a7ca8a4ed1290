// Package geometry defines the facelet addressing of an N×N×N cube.
//
// A facelet is addressed geometrically by a Position: its face and the
// (x, y, z) coordinates of the cubie it sits on. X runs from Left to Right,
// Y from Back to Front and Z from Down to Up, each in [0, size).
//
// Slots number the 6·size² facelets face-major, then by the two coordinates
// that vary on the face in (x, y, z) order:
//
//	Up    z = n   (x, y)
//	Left  x = 0   (y, z)
//	Front y = n   (x, z)
//	Right x = n   (y, z)
//	Back  y = 0   (x, z)
//	Down  z = 0   (x, y)
//
// where n = size-1. The numbering is stable and shared by every package.
package geometry

import (
	"fmt"

	"github.com/SeamusWaldron/rubik/pkg/types"
)

// Face numbers.
const (
	Up    = 0
	Left  = 1
	Front = 2
	Right = 3
	Back  = 4
	Down  = 5
)

// FaceNames are the single-letter face names indexed by face number.
var FaceNames = [types.NumFaces]string{"U", "L", "F", "R", "B", "D"}

// Position is the geometric address of a facelet.
type Position struct {
	Face int `json:"face"`
	X    int `json:"x"`
	Y    int `json:"y"`
	Z    int `json:"z"`
}

// Coord returns the coordinate of p along axis.
func (p Position) Coord(axis types.Axis) int {
	switch axis {
	case types.AxisX:
		return p.X
	case types.AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%s(%d,%d,%d)", FaceNames[p.Face], p.X, p.Y, p.Z)
}

// Geometry holds the slot/position bijection for one cube size.
// It is immutable once built and safe to share.
type Geometry struct {
	size      int
	positions []Position
}

// New builds the geometry of a size×size×size cube.
func New(size int) (*Geometry, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidSize, size)
	}

	g := &Geometry{size: size}
	g.positions = make([]Position, 0, types.NumFaces*size*size)
	for face := 0; face < types.NumFaces; face++ {
		for a := 0; a < size; a++ {
			for b := 0; b < size; b++ {
				g.positions = append(g.positions, g.place(face, a, b))
			}
		}
	}
	return g, nil
}

// place converts a face and its two in-face coordinates into a Position.
func (g *Geometry) place(face, a, b int) Position {
	n := g.size - 1
	switch face {
	case Up:
		return Position{Face: face, X: a, Y: b, Z: n}
	case Left:
		return Position{Face: face, X: 0, Y: a, Z: b}
	case Front:
		return Position{Face: face, X: a, Y: n, Z: b}
	case Right:
		return Position{Face: face, X: n, Y: a, Z: b}
	case Back:
		return Position{Face: face, X: a, Y: 0, Z: b}
	default:
		return Position{Face: face, X: a, Y: b, Z: 0}
	}
}

// Size returns the cube size.
func (g *Geometry) Size() int {
	return g.size
}

// Len returns the number of facelet slots, 6·size².
func (g *Geometry) Len() int {
	return len(g.positions)
}

// Positions returns the canonical enumeration; the index of each entry is
// its slot. The returned slice must not be modified.
func (g *Geometry) Positions() []Position {
	return g.positions
}

// Position returns the position of a slot.
func (g *Geometry) Position(slot int) Position {
	return g.positions[slot]
}

// FaceOf returns the face a slot lies on.
func (g *Geometry) FaceOf(slot int) int {
	return slot / (g.size * g.size)
}

// Slot returns the slot of p. The boolean is false when p is not a facelet
// of this cube.
func (g *Geometry) Slot(p Position) (int, bool) {
	n := g.size - 1
	if p.X < 0 || p.X > n || p.Y < 0 || p.Y > n || p.Z < 0 || p.Z > n {
		return 0, false
	}

	var a, b int
	switch p.Face {
	case Up:
		if p.Z != n {
			return 0, false
		}
		a, b = p.X, p.Y
	case Left:
		if p.X != 0 {
			return 0, false
		}
		a, b = p.Y, p.Z
	case Front:
		if p.Y != n {
			return 0, false
		}
		a, b = p.X, p.Z
	case Right:
		if p.X != n {
			return 0, false
		}
		a, b = p.Y, p.Z
	case Back:
		if p.Y != 0 {
			return 0, false
		}
		a, b = p.X, p.Z
	case Down:
		if p.Z != 0 {
			return 0, false
		}
		a, b = p.X, p.Y
	default:
		return 0, false
	}
	return (p.Face*g.size+a)*g.size + b, true
}

// InitialState returns the colors of a fresh cube: every slot of face f
// carries color f+1.
func (g *Geometry) InitialState() []types.Color {
	state := make([]types.Color, len(g.positions))
	for slot, p := range g.positions {
		state[slot] = types.ColorForFace(p.Face)
	}
	return state
}
