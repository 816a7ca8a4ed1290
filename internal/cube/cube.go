// Package cube provides an N×N×N Rubik's cube model with move history.
//
// A Cube owns its colors and history and reads move permutations from a
// shared action.Table. A Cube must not be mutated from more than one
// goroutine at a time.
package cube

import (
	"fmt"

	"github.com/SeamusWaldron/rubik/internal/action"
	"github.com/SeamusWaldron/rubik/internal/geometry"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// Cube is one cube state: a color per facelet slot plus the moves applied
// since the last history reset.
type Cube struct {
	labels  []string
	table   *action.Table
	state   []types.Color
	scratch []types.Color
	history []types.Move
}

// New creates a solved cube of the table's size. labels names the colors of
// faces Up, Left, Front, Right, Back, Down in that order and must hold 6
// distinct values.
func New(labels []string, table *action.Table) (*Cube, error) {
	if err := ValidateLabels(labels); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no action table", types.ErrInvalidSize)
	}

	geo := table.Geometry()
	return &Cube{
		labels:  append([]string(nil), labels...),
		table:   table,
		state:   geo.InitialState(),
		scratch: make([]types.Color, geo.Len()),
		history: make([]types.Move, 0),
	}, nil
}

// ValidateLabels checks that labels holds exactly 6 distinct values.
func ValidateLabels(labels []string) error {
	if len(labels) != types.NumFaces {
		return fmt.Errorf("%w: got %d labels", types.ErrInvalidColorSet, len(labels))
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return fmt.Errorf("%w: %q repeated", types.ErrInvalidColorSet, l)
		}
		seen[l] = true
	}
	return nil
}

// Size returns the cube size.
func (c *Cube) Size() int {
	return c.table.Size()
}

// Geometry returns the cube's geometry.
func (c *Cube) Geometry() *geometry.Geometry {
	return c.table.Geometry()
}

// Table returns the action table the cube reads from.
func (c *Cube) Table() *action.Table {
	return c.table
}

// Labels returns a copy of the color labels.
func (c *Cube) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Label returns the label of a color, or "" for Unset.
func (c *Cube) Label(col types.Color) string {
	i := col.Index()
	if i < 0 {
		return ""
	}
	return c.labels[i]
}

// State returns a copy of the colors indexed by slot.
func (c *Cube) State() []types.Color {
	return append([]types.Color(nil), c.state...)
}

// History returns a copy of the moves applied since the last reset.
func (c *Cube) History() []types.Move {
	return append([]types.Move(nil), c.history...)
}

// ResetHistory clears the history without touching colors.
func (c *Cube) ResetHistory() {
	c.history = c.history[:0]
}

// Coordinates returns the position of every slot. The slice is shared and
// must not be modified.
func (c *Cube) Coordinates() []geometry.Position {
	return c.table.Geometry().Positions()
}

// Facelets returns the colors face-major as [face][a][b], where a and b are
// the two coordinates that vary on the face (see package geometry).
func (c *Cube) Facelets() [][][]types.Color {
	size := c.Size()
	grid := make([][][]types.Color, types.NumFaces)
	for f := range grid {
		grid[f] = make([][]types.Color, size)
		for a := range grid[f] {
			start := (f*size + a) * size
			grid[f][a] = append([]types.Color(nil), c.state[start:start+size]...)
		}
	}
	return grid
}

// ColorCounts returns how many facelets carry each color.
func (c *Cube) ColorCounts() map[types.Color]int {
	counts := make(map[types.Color]int, types.NumFaces)
	for _, col := range c.state {
		counts[col]++
	}
	return counts
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	area := c.Size() * c.Size()
	for f := 0; f < types.NumFaces; f++ {
		face := c.state[f*area : (f+1)*area]
		for _, col := range face[1:] {
			if col != face[0] {
				return false
			}
		}
	}
	return true
}

// Equal reports whether c and other have the same size and colors.
// Labels and history are not compared.
func (c *Cube) Equal(other *Cube) bool {
	if c.Size() != other.Size() {
		return false
	}
	for i := range c.state {
		if c.state[i] != other.state[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the cube sharing the same table.
func (c *Cube) Clone() *Cube {
	return &Cube{
		labels:  append([]string(nil), c.labels...),
		table:   c.table,
		state:   append([]types.Color(nil), c.state...),
		scratch: make([]types.Color, len(c.scratch)),
		history: append([]types.Move(nil), c.history...),
	}
}

// Solve is not implemented; it always returns types.ErrUnsupported.
func (c *Cube) Solve(policy string) error {
	return fmt.Errorf("%w: solve (policy %q)", types.ErrUnsupported, policy)
}
