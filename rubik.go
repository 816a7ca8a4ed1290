// Package rubik models N×N×N Rubik's cubes turned by slice moves.
//
// # Features
//
//   - Cubes of any size from 2×2×2 upward
//   - Slice moves about the X, Y and Z axes in either orientation
//   - Precomputed move permutations shared between cubes of the same size
//   - Deterministic seeded scrambles
//   - Move history and read-only facelet/coordinate views for renderers
//
// # Quick Start
//
//	cube, err := rubik.New([]string{"W", "O", "G", "R", "B", "Y"}, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Turn slice 0 about X, then undo it
//	cube.Rotate("X0 X0i")
//
//	// Scramble deterministically
//	cube.Scramble(200, 42)
//
//	fmt.Println(cube)
//
// # Move Notation
//
// A move is an axis letter, a slice index and an optional inverse marker:
//
//	X0    // slice 0 about X, forward
//	Y3i   // slice 3 about Y, inverse
//	Z12'  // any trailing text marks the inverse
//
// Slices are numbered from the Left (X), Back (Y) and Down (Z) faces.
//
// # Solving
//
// Solving is not implemented: Solve always returns ErrUnsupported.
package rubik
