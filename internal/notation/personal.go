package notation

import (
	"fmt"

	"github.com/SeamusWaldron/rubik/pkg/types"
)

// outerLayers names the face at each end of an axis: slice 0 first,
// slice size-1 second.
var outerLayers = [3][2]string{
	types.AxisX: {"Left", "Right"},
	types.AxisY: {"Back", "Front"},
	types.AxisZ: {"Down", "Up"},
}

// Describe returns a readable description of a move on a cube of the given
// size, naming outer layers by their face.
//
//	X0   -> "Left layer forward"
//	Y2i  -> "Front layer inverse"  (size 3)
//	Z1   -> "Z slice 1 forward"
func Describe(m types.Move, size int) string {
	if !m.Axis.Valid() {
		return m.Notation()
	}

	var layer string
	switch m.Slice {
	case 0:
		layer = outerLayers[m.Axis][0] + " layer"
	case size - 1:
		layer = outerLayers[m.Axis][1] + " layer"
	default:
		layer = fmt.Sprintf("%v slice %d", m.Axis, m.Slice)
	}

	return layer + " " + m.Orientation.String()
}

// DescribeSequence describes each move of a sequence.
func DescribeSequence(moves []types.Move, size int) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = Describe(m, size)
	}
	return out
}
