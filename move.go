package rubik

import (
	"github.com/SeamusWaldron/rubik/internal/notation"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// Move is a quarter turn of one slice: an axis, a slice index along that
// axis, and an orientation.
type Move = types.Move

// Axis identifies a rotation axis.
type Axis = types.Axis

// Orientation is the turning direction of a move.
type Orientation = types.Orientation

const (
	AxisX = types.AxisX // Left to Right
	AxisY = types.AxisY // Back to Front
	AxisZ = types.AxisZ // Down to Up

	Forward = types.Forward
	Inverse = types.Inverse
)

// ParseMove parses a move token such as X0, Y12i or Z3'.
// Returns an error matching ErrMoveParse if the token is malformed. The
// slice is checked against the cube size only when the move is applied.
func ParseMove(s string) (Move, error) {
	return notation.ParseMove(s)
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "X0 Y1i Z2"
// The first malformed token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// ScrambleMoves returns the moves Scramble(count, seed) applies to a cube of
// the given size.
func ScrambleMoves(count, size int, seed uint64) []Move {
	return notation.Sample(count, size, seed)
}
