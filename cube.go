package rubik

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SeamusWaldron/rubik/internal/cube"
	"github.com/SeamusWaldron/rubik/internal/geometry"
	"github.com/SeamusWaldron/rubik/internal/notation"
	"github.com/SeamusWaldron/rubik/internal/render"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// Color identifies a facelet color: 1..6 index the cube's labels, 0 is unset.
type Color = types.Color

// Position is the geometric address of a facelet: its face (0 Up, 1 Left,
// 2 Front, 3 Right, 4 Back, 5 Down) and cubie coordinates.
type Position = geometry.Position

// Cube is an N×N×N cube with a move history.
// It is safe for concurrent use; moves are serialized.
type Cube struct {
	mu     sync.RWMutex
	engine *cube.Cube
	logger *slog.Logger

	onMove func(Move)
}

// New creates a solved cube. colors labels faces Up, Left, Front, Right,
// Back, Down in that order and must hold 6 distinct values; size must be at
// least 2.
//
// Example:
//
//	cube, err := rubik.New([]string{"U", "L", "C", "R", "B", "D"}, 3)
func New(colors []string, size int, opts ...Option) (*Cube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := cube.ValidateLabels(colors); err != nil {
		return nil, err
	}

	built := cfg.tables.Has(size)
	start := time.Now()
	table, err := cfg.tables.cache.Get(size)
	if err != nil {
		return nil, fmt.Errorf("failed to build move table: %w", err)
	}
	if !built {
		cfg.logger.Debug("built move table",
			"size", size,
			"moves", table.Len(),
			"elapsed", time.Since(start))
	}

	engine, err := cube.New(colors, table)
	if err != nil {
		return nil, err
	}

	return &Cube{
		engine: engine,
		logger: cfg.logger.With("size", size),
	}, nil
}

// OnMove registers a callback invoked for each move applied by Rotate or
// Apply. Scramble moves are not reported.
func (c *Cube) OnMove(cb func(Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMove = cb
}

// Size returns the cube size.
func (c *Cube) Size() int {
	return c.engine.Size()
}

// Colors returns the color labels in face order.
func (c *Cube) Colors() []string {
	return c.engine.Labels()
}

// Rotate parses a whitespace-separated move sequence and applies it.
// On error the cube is unchanged.
func (c *Cube) Rotate(moves string) error {
	parsed, err := notation.ParseSequence(moves)
	if err != nil {
		return err
	}
	return c.Apply(parsed...)
}

// Apply applies moves in order. On error the cube is unchanged.
func (c *Cube) Apply(moves ...Move) error {
	c.mu.Lock()
	err := c.engine.ApplyMoves(moves)
	cb := c.onMove
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("move rejected", "moves", notation.FormatSequence(moves), "error", err)
		return err
	}
	c.logger.Debug("applied moves", "count", len(moves), "moves", notation.FormatSequence(moves))

	if cb != nil {
		for _, m := range moves {
			cb(m)
		}
	}
	return nil
}

// Validate reports the error Apply would return for moves, without changing
// the cube.
func (c *Cube) Validate(moves ...Move) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.ValidateMoves(moves)
}

// ValidateScramble reports the error Scramble would return for count.
func ValidateScramble(count int) error {
	return cube.ValidateScramble(count)
}

// Scramble applies count random moves generated from seed, then clears the
// history. The same count, size and seed always give the same cube.
func (c *Cube) Scramble(count int, seed uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.engine.Scramble(count, seed); err != nil {
		return err
	}
	c.logger.Info("scrambled", "count", count, "seed", seed)
	return nil
}

// Moves returns the moves applied since creation, the last scramble or the
// last ResetHistory.
func (c *Cube) Moves() []Move {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.History()
}

// ResetHistory clears the move history; colors are unchanged.
func (c *Cube) ResetHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.ResetHistory()
}

// Facelets returns the color labels face-major as [face][a][b]. For each
// face, a and b are the two cubie coordinates that vary across it, in
// (x, y, z) order.
func (c *Cube) Facelets() [][][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	grid := c.engine.Facelets()
	out := make([][][]string, len(grid))
	for f, face := range grid {
		out[f] = make([][]string, len(face))
		for a, row := range face {
			out[f][a] = make([]string, len(row))
			for b, col := range row {
				out[f][a][b] = c.engine.Label(col)
			}
		}
	}
	return out
}

// FaceletColors returns the colors face-major as [face][a][b].
func (c *Cube) FaceletColors() [][][]Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.Facelets()
}

// CoordinatesAndState returns, for every facelet slot, its position and its
// current color. Both slices are copies.
func (c *Cube) CoordinatesAndState() ([]Position, []Color) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coords := append([]Position(nil), c.engine.Coordinates()...)
	return coords, c.engine.State()
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.IsSolved()
}

// Equal reports whether c and other have the same size and show the same
// colors. A nil other is never equal.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil {
		return false
	}
	if c == other {
		return true
	}
	// Never hold both locks at once.
	mine, theirs := c.snapshot(), other.snapshot()
	if len(mine) != len(theirs) {
		return false
	}
	for i := range mine {
		if mine[i] != theirs[i] {
			return false
		}
	}
	return true
}

func (c *Cube) snapshot() []Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.State()
}

// Solve is not implemented and always returns ErrUnsupported.
func (c *Cube) Solve(policy string) error {
	return c.engine.Solve(policy)
}

// String returns the cube drawn as an unfolded net of labels.
func (c *Cube) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return render.Net(c.engine.Facelets(), c.engine.Labels())
}
