// Package types contains shared type definitions for the rubik application.
package types

import "strconv"

// Axis identifies one of the three principal rotation axes.
type Axis int

const (
	AxisX Axis = 0 // Left to Right
	AxisY Axis = 1 // Back to Front
	AxisZ Axis = 2 // Down to Up
)

// Axes lists every axis in table order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether a is one of AxisX, AxisY, AxisZ.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Orientation is the turning direction of a slice.
type Orientation int

const (
	Forward Orientation = 0
	Inverse Orientation = 1
)

// InverseMarker is the canonical suffix written for Inverse moves.
const InverseMarker = "i"

func (o Orientation) String() string {
	switch o {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Valid reports whether o is Forward or Inverse.
func (o Orientation) Valid() bool {
	return o == Forward || o == Inverse
}

// Move is a quarter turn of one slice.
type Move struct {
	Axis        Axis        `json:"axis"`
	Slice       int         `json:"slice"`
	Orientation Orientation `json:"orientation"`
}

// Notation returns the textual form of the move.
// Examples: X0, Y12, Z3i
func (m Move) Notation() string {
	s := m.Axis.String() + strconv.Itoa(m.Slice)
	if m.Orientation == Inverse {
		s += InverseMarker
	}
	return s
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	if m.Orientation == Inverse {
		inv.Orientation = Forward
	} else {
		inv.Orientation = Inverse
	}
	return inv
}

// IsCancellation returns true if other undoes m.
func (m Move) IsCancellation(other Move) bool {
	return m.Axis == other.Axis && m.Slice == other.Slice && m.Orientation != other.Orientation
}

// InverseSequence returns the moves that undo seq, in application order.
func InverseSequence(seq []Move) []Move {
	out := make([]Move, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = m.Inverse()
	}
	return out
}
