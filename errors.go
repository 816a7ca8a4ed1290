package rubik

import "github.com/SeamusWaldron/rubik/pkg/types"

// Sentinel errors for the rubik package. Match them with errors.Is.
var (
	// Construction errors
	ErrInvalidColorSet = types.ErrInvalidColorSet
	ErrInvalidSize     = types.ErrInvalidSize

	// Move errors
	ErrMoveParse      = types.ErrMoveParse
	ErrMoveOutOfRange = types.ErrMoveOutOfRange

	// Scramble errors
	ErrInvalidScrambleCount = types.ErrInvalidScrambleCount

	// Returned by Solve
	ErrUnsupported = types.ErrUnsupported
)
