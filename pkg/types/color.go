package types

// Color identifies a facelet color by label index: 1..6 for the six labels of
// a cube, 0 for unset.
type Color uint8

// Unset marks a slot with no color assigned.
const Unset Color = 0

// NumFaces is the number of faces of a cube, and the number of colors.
const NumFaces = 6

// ColorForFace returns the color that face f carries on a fresh cube.
func ColorForFace(f int) Color {
	return Color(f + 1)
}

// Index returns the label index of c, or -1 when c is Unset or out of range.
func (c Color) Index() int {
	if c == Unset || int(c) > NumFaces {
		return -1
	}
	return int(c) - 1
}
