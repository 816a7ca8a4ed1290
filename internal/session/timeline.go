package session

import (
	"fmt"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/storage"
)

// Frame is the cube after one replay step.
type Frame struct {
	Label   string
	Move    *rubik.Move
	Grid    [][][]rubik.Color
	History int
}

// Timeline replays the session one step at a time: every move of a rotate
// operation is its own step, scrambles and resets are single steps. The
// first frame is the solved cube.
func (s *Session) Timeline() ([]Frame, error) {
	cube, err := s.mgr.newCube(s.Info.Colors, s.Info.Size)
	if err != nil {
		return nil, err
	}

	frames := []Frame{{Label: "start", Grid: cube.FaceletColors()}}
	snap := func(label string, m *rubik.Move) {
		frames = append(frames, Frame{
			Label:   label,
			Move:    m,
			Grid:    cube.FaceletColors(),
			History: len(cube.Moves()),
		})
	}

	for _, op := range s.Ops {
		switch op.Kind {
		case storage.KindRotate:
			if op.MovesText == nil {
				continue
			}
			moves, err := rubik.ParseMoves(*op.MovesText)
			if err != nil {
				return nil, fmt.Errorf("operation %d: %w", op.Index, err)
			}
			for _, m := range moves {
				if err := cube.Apply(m); err != nil {
					return nil, fmt.Errorf("operation %d: %w", op.Index, err)
				}
				snap(m.Notation(), &m)
			}
		default:
			if err := replayOne(cube, op); err != nil {
				return nil, fmt.Errorf("operation %d: %w", op.Index, err)
			}
			snap(describeOp(op), nil)
		}
	}
	return frames, nil
}

func describeOp(op storage.Operation) string {
	switch op.Kind {
	case storage.KindScramble:
		return fmt.Sprintf("scramble %d (seed %d)", *op.ScrambleCount, *op.ScrambleSeed)
	case storage.KindResetHistory:
		return "reset history"
	default:
		return op.Kind
	}
}
