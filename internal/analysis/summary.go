package analysis

import (
	"github.com/SeamusWaldron/rubik/internal/notation"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// HistorySummary contains statistics for a move history.
type HistorySummary struct {
	TotalMoves      int            `json:"total_moves"`
	SimplifiedMoves int            `json:"simplified_moves"`
	Cancellations   int            `json:"cancellations"`
	AxisCounts      map[string]int `json:"axis_counts"`
	InverseMoves    int            `json:"inverse_moves"`
	OuterLayerMoves int            `json:"outer_layer_moves"`
	InnerSliceMoves int            `json:"inner_slice_moves"`
	MostUsedAxis    string         `json:"most_used_axis,omitempty"`
	LongestRun      int            `json:"longest_run"` // consecutive identical moves
}

// Summarize computes statistics for moves on a cube of the given size.
func Summarize(moves []types.Move, size int) *HistorySummary {
	s := &HistorySummary{
		TotalMoves: len(moves),
		AxisCounts: make(map[string]int),
	}

	simplified := notation.Simplify(moves)
	s.SimplifiedMoves = len(simplified)
	s.Cancellations = (len(moves) - len(simplified)) / 2

	run := 0
	for i, m := range moves {
		s.AxisCounts[m.Axis.String()]++
		if m.Orientation == types.Inverse {
			s.InverseMoves++
		}
		if m.Slice == 0 || m.Slice == size-1 {
			s.OuterLayerMoves++
		} else {
			s.InnerSliceMoves++
		}

		if i > 0 && m == moves[i-1] {
			run++
		} else {
			run = 1
		}
		s.LongestRun = max(s.LongestRun, run)
	}

	maxCount := 0
	for _, axis := range types.Axes {
		if c := s.AxisCounts[axis.String()]; c > maxCount {
			maxCount = c
			s.MostUsedAxis = axis.String()
		}
	}

	return s
}
