package cube

import (
	"fmt"

	"github.com/SeamusWaldron/rubik/internal/action"
	"github.com/SeamusWaldron/rubik/internal/notation"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// ApplyMove applies one move. On error the cube is left unchanged.
func (c *Cube) ApplyMove(m types.Move) error {
	p, err := c.table.Permutation(m)
	if err != nil {
		return err
	}
	c.gather(p)
	c.history = append(c.history, m)
	return nil
}

// ApplyMoves applies a sequence of moves as a single permutation. Every move
// is validated before any color changes, so on error the cube is left
// unchanged.
func (c *Cube) ApplyMoves(moves []types.Move) error {
	if len(moves) == 0 {
		return nil
	}
	if len(moves) == 1 {
		return c.ApplyMove(moves[0])
	}

	p, err := c.table.Compose(moves)
	if err != nil {
		return err
	}
	c.gather(p)
	c.history = append(c.history, moves...)
	return nil
}

// ValidateMoves checks that every move fits this cube without applying any.
func (c *Cube) ValidateMoves(moves []types.Move) error {
	for _, m := range moves {
		if err := c.table.Validate(m); err != nil {
			return err
		}
	}
	return nil
}

// ValidateScramble checks the scramble parameters without applying them.
func ValidateScramble(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: got %d", types.ErrInvalidScrambleCount, count)
	}
	return nil
}

// Rotate parses a whitespace-separated move sequence and applies it.
func (c *Cube) Rotate(text string) error {
	moves, err := notation.ParseSequence(text)
	if err != nil {
		return err
	}
	return c.ApplyMoves(moves)
}

// Scramble applies count random moves drawn from seed and clears the
// history. It returns the moves applied. The same (count, size, seed)
// always produces the same state.
func (c *Cube) Scramble(count int, seed uint64) ([]types.Move, error) {
	if err := ValidateScramble(count); err != nil {
		return nil, err
	}

	moves := notation.Sample(count, c.Size(), seed)
	if err := c.ApplyMoves(moves); err != nil {
		return nil, fmt.Errorf("failed to apply scramble: %w", err)
	}
	c.ResetHistory()
	return moves, nil
}

// gather replaces the state by its image through p.
func (c *Cube) gather(p action.Permutation) {
	p.Apply(c.scratch, c.state)
	c.state, c.scratch = c.scratch, c.state
}
