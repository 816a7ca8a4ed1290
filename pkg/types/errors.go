package types

import "errors"

// Sentinel errors shared by every layer.
var (
	// Construction errors
	ErrInvalidColorSet = errors.New("rubik: expected 6 distinct colors")
	ErrInvalidSize     = errors.New("rubik: size must be at least 2")

	// Move errors
	ErrMoveParse      = errors.New("rubik: invalid move notation")
	ErrMoveOutOfRange = errors.New("rubik: move out of range")

	// Scrambling errors
	ErrInvalidScrambleCount = errors.New("rubik: scramble count must not be negative")

	// Solving is not implemented
	ErrUnsupported = errors.New("rubik: unsupported operation")
)
