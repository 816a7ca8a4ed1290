package notation

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/rubik/pkg/types"
)

// Sample draws count moves uniformly over axis, slice and orientation for a
// cube of the given size. The same (count, size, seed) always yields the
// same moves.
func Sample(count, size int, seed uint64) []types.Move {
	if count <= 0 || size <= 0 {
		return []types.Move{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	moves := make([]types.Move, count)
	for i := range moves {
		moves[i] = types.Move{
			Axis:        types.Axes[rng.IntN(len(types.Axes))],
			Slice:       rng.IntN(size),
			Orientation: types.Orientation(rng.IntN(2)),
		}
	}
	return moves
}
