package rubik

// Move constructors for convenience.
//
// Example:
//
//	cube.Apply(rubik.X(0), rubik.Y(1), rubik.XPrime(0), rubik.YPrime(1))

// X returns the forward turn of a slice about X.
func X(slice int) Move { return Move{Axis: AxisX, Slice: slice, Orientation: Forward} }

// XPrime returns the inverse turn of a slice about X.
func XPrime(slice int) Move { return Move{Axis: AxisX, Slice: slice, Orientation: Inverse} }

// Y returns the forward turn of a slice about Y.
func Y(slice int) Move { return Move{Axis: AxisY, Slice: slice, Orientation: Forward} }

// YPrime returns the inverse turn of a slice about Y.
func YPrime(slice int) Move { return Move{Axis: AxisY, Slice: slice, Orientation: Inverse} }

// Z returns the forward turn of a slice about Z.
func Z(slice int) Move { return Move{Axis: AxisZ, Slice: slice, Orientation: Forward} }

// ZPrime returns the inverse turn of a slice about Z.
func ZPrime(slice int) Move { return Move{Axis: AxisZ, Slice: slice, Orientation: Inverse} }

// Commutator returns a b a' b' for two sequences.
func Commutator(a, b []Move) []Move {
	out := make([]Move, 0, 2*(len(a)+len(b)))
	out = append(out, a...)
	out = append(out, b...)
	out = append(out, inverseOf(a)...)
	out = append(out, inverseOf(b)...)
	return out
}

// Invert returns the sequence that undoes moves.
func Invert(moves []Move) []Move {
	return inverseOf(moves)
}

func inverseOf(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
