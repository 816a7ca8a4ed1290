package action

import (
	"github.com/SeamusWaldron/rubik/internal/geometry"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// faceCycles relabels faces for a quarter turn about each axis, indexed by
// the face before the turn.
//
//	X: Up -> Front -> Down -> Back -> Up
//	Y: Up -> Left  -> Down -> Right -> Up
//	Z: Left -> Front -> Right -> Back -> Left
var faceCycles = [3][types.NumFaces]int{
	types.AxisX: {
		geometry.Up:    geometry.Front,
		geometry.Left:  geometry.Left,
		geometry.Front: geometry.Down,
		geometry.Right: geometry.Right,
		geometry.Back:  geometry.Up,
		geometry.Down:  geometry.Back,
	},
	types.AxisY: {
		geometry.Up:    geometry.Left,
		geometry.Left:  geometry.Down,
		geometry.Front: geometry.Front,
		geometry.Right: geometry.Up,
		geometry.Back:  geometry.Back,
		geometry.Down:  geometry.Right,
	},
	types.AxisZ: {
		geometry.Up:    geometry.Up,
		geometry.Left:  geometry.Front,
		geometry.Front: geometry.Right,
		geometry.Right: geometry.Back,
		geometry.Back:  geometry.Left,
		geometry.Down:  geometry.Down,
	},
}

// rotate turns p a quarter about axis through the cube center. The linear
// part swaps the two coordinates orthogonal to axis with one sign flip; the
// n = size-1 offset moves the result back into [0, size).
//
//	X: (x, y, z) -> (x, z, n-y)
//	Y: (x, y, z) -> (n-z, y, x)
//	Z: (x, y, z) -> (y, n-x, z)
func rotate(p geometry.Position, axis types.Axis, n int) geometry.Position {
	face := faceCycles[axis][p.Face]
	switch axis {
	case types.AxisX:
		return geometry.Position{Face: face, X: p.X, Y: p.Z, Z: n - p.Y}
	case types.AxisY:
		return geometry.Position{Face: face, X: n - p.Z, Y: p.Y, Z: p.X}
	default:
		return geometry.Position{Face: face, X: p.Y, Y: n - p.X, Z: p.Z}
	}
}
