// Package notation provides move notation conversion utilities.
//
// A move is written <axis><slice>[marker]: an axis letter X, Y or Z, the
// slice index in decimal, and any trailing text to mark the Inverse
// orientation. "X0" is a Forward turn of slice 0 about X, "Y12i" and
// "Y12'" are both Inverse turns of slice 12 about Y. Slice numbers of any
// length parse; numbers too large for an int saturate and fail the cube's
// range check on apply.
package notation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/rubik/pkg/types"
)

// ParseError describes a token that is not a valid move.
type ParseError struct {
	Token  string
	Index  int // position in the sequence, -1 for a single token
	Reason string
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid move %q at position %d: %s", e.Token, e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid move %q: %s", e.Token, e.Reason)
}

// Unwrap lets errors.Is match types.ErrMoveParse.
func (e *ParseError) Unwrap() error {
	return types.ErrMoveParse
}

// ParseMove parses a single move token.
// Examples: X1, X25i, Z512ijk
// The slice is not bounds-checked; that depends on the cube size.
func ParseMove(s string) (types.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, &ParseError{Token: s, Index: -1, Reason: "empty token"}
	}

	// Extract axis
	var axis types.Axis
	switch s[0] {
	case 'X':
		axis = types.AxisX
	case 'Y':
		axis = types.AxisY
	case 'Z':
		axis = types.AxisZ
	default:
		return types.Move{}, &ParseError{Token: s, Index: -1, Reason: "axis must be X, Y or Z"}
	}

	// Extract slice digits
	end := 1
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 1 {
		return types.Move{}, &ParseError{Token: s, Index: -1, Reason: "missing slice number"}
	}
	slice, err := strconv.Atoi(s[1:end])
	if errors.Is(err, strconv.ErrRange) {
		// Saturate; the slice is rejected against the cube size on apply.
		slice = math.MaxInt
	} else if err != nil {
		return types.Move{}, &ParseError{Token: s, Index: -1, Reason: err.Error()}
	}

	// Anything after the digits marks the inverse orientation
	orientation := types.Forward
	if end < len(s) {
		orientation = types.Inverse
	}

	return types.Move{Axis: axis, Slice: slice, Orientation: orientation}, nil
}

// ParseSequence parses a whitespace-separated sequence of moves.
// Empty input yields an empty sequence. The first invalid token fails the
// whole sequence.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Index = i
			}
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMove returns the canonical token of m.
func FormatMove(m types.Move) string {
	return m.Notation()
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Simplify removes adjacent moves that cancel, repeatedly, so that
// "X0 Y1 Y1i X0i" reduces to nothing.
func Simplify(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].IsCancellation(m) {
			out = out[:n-1]
			continue
		}
		out = append(out, m)
	}
	return out
}
