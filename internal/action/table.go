// Package action derives the facelet permutation of every slice move of an
// N×N×N cube and stores them in an immutable Table.
package action

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/rubik/internal/geometry"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// Table maps every move of one cube size to its permutation.
// A Table is immutable and safe for concurrent use.
type Table struct {
	geo   *geometry.Geometry
	perms []Permutation
}

// BuildOption configures table construction.
type BuildOption func(*buildConfig)

type buildConfig struct {
	workers int
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers bounds the number of slices built concurrently.
// Values below 1 mean one worker.
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// Build computes the permutations of all 3·size·2 moves of geo's cube.
// Each (axis, slice) pair is built independently; the inverse orientation is
// derived from the forward one.
func Build(geo *geometry.Geometry, opts ...BuildOption) (*Table, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	size := geo.Size()
	t := &Table{
		geo:   geo,
		perms: make([]Permutation, len(types.Axes)*size*2),
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for _, axis := range types.Axes {
		for slice := 0; slice < size; slice++ {
			g.Go(func() error {
				fwd, err := buildForward(geo, axis, slice)
				if err != nil {
					return err
				}
				t.perms[t.index(axis, slice, types.Forward)] = fwd
				t.perms[t.index(axis, slice, types.Inverse)] = fwd.Inverse()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// buildForward computes the forward permutation of one slice: every slot in
// the slice gathers from the slot its position rotates onto, every other slot
// is fixed.
func buildForward(geo *geometry.Geometry, axis types.Axis, slice int) (Permutation, error) {
	n := geo.Size() - 1
	perm := Identity(geo.Len())

	for slot, p := range geo.Positions() {
		if p.Coord(axis) != slice {
			continue
		}
		img := rotate(p, axis, n)
		j, ok := geo.Slot(img)
		if !ok || img.Coord(axis) != slice {
			return nil, fmt.Errorf("rotation %v%d maps %v outside the slice (%v)", axis, slice, p, img)
		}
		perm[slot] = int32(j)
	}

	if !perm.isBijection() {
		return nil, fmt.Errorf("rotation %v%d is not a bijection", axis, slice)
	}
	return perm, nil
}

// index locates a move in perms.
func (t *Table) index(axis types.Axis, slice int, o types.Orientation) int {
	return (int(axis)*t.geo.Size()+slice)*2 + int(o)
}

// Size returns the cube size the table was built for.
func (t *Table) Size() int {
	return t.geo.Size()
}

// Geometry returns the geometry the table was built from.
func (t *Table) Geometry() *geometry.Geometry {
	return t.geo
}

// Len returns the number of moves in the table.
func (t *Table) Len() int {
	return len(t.perms)
}

// Validate checks that m names a move of this table.
func (t *Table) Validate(m types.Move) error {
	if !m.Axis.Valid() || !m.Orientation.Valid() {
		return fmt.Errorf("%w: %+v", types.ErrMoveOutOfRange, m)
	}
	if m.Slice < 0 || m.Slice >= t.geo.Size() {
		return fmt.Errorf("%w: slice %d of %s, size is %d", types.ErrMoveOutOfRange, m.Slice, m.Notation(), t.geo.Size())
	}
	return nil
}

// Permutation returns the permutation of m. The result is shared and must
// not be modified.
func (t *Table) Permutation(m types.Move) (Permutation, error) {
	if err := t.Validate(m); err != nil {
		return nil, err
	}
	return t.perms[t.index(m.Axis, m.Slice, m.Orientation)], nil
}

// Compose returns the single permutation equivalent to applying moves in
// order. An empty sequence yields the identity.
func (t *Table) Compose(moves []types.Move) (Permutation, error) {
	result := Identity(t.geo.Len())
	for _, m := range moves {
		p, err := t.Permutation(m)
		if err != nil {
			return nil, err
		}
		result = result.Then(p)
	}
	return result, nil
}

// Moves enumerates every move of the table in table order.
func (t *Table) Moves() []types.Move {
	moves := make([]types.Move, 0, len(t.perms))
	for _, axis := range types.Axes {
		for slice := 0; slice < t.geo.Size(); slice++ {
			moves = append(moves,
				types.Move{Axis: axis, Slice: slice, Orientation: types.Forward},
				types.Move{Axis: axis, Slice: slice, Orientation: types.Inverse},
			)
		}
	}
	return moves
}
