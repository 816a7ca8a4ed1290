// Package render draws a cube as an unfolded net of faces:
//
//	      U
//	L  F  R  B
//	      D
//
// Each face is drawn as seen from outside the cube, with Up above Front and
// Down below it.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/rubik/internal/geometry"
	"github.com/SeamusWaldron/rubik/pkg/types"
)

// orientation tells how a face's [a][b] grid maps to screen rows and columns.
type orientation struct {
	flipCol bool // column c shows a = size-1-c
	flipRow bool // row r shows b = size-1-r
}

var faceOrientations = [types.NumFaces]orientation{
	geometry.Up:    {flipCol: false, flipRow: false},
	geometry.Left:  {flipCol: false, flipRow: true},
	geometry.Front: {flipCol: false, flipRow: true},
	geometry.Right: {flipCol: true, flipRow: true},
	geometry.Back:  {flipCol: true, flipRow: true},
	geometry.Down:  {flipCol: false, flipRow: true},
}

// palette holds one background per color index.
var palette = [types.NumFaces]lipgloss.Color{
	lipgloss.Color("15"),  // white
	lipgloss.Color("208"), // orange
	lipgloss.Color("34"),  // green
	lipgloss.Color("196"), // red
	lipgloss.Color("27"),  // blue
	lipgloss.Color("226"), // yellow
}

// Screen returns face f of grid as screen rows of colors.
func Screen(grid [][][]types.Color, f int) [][]types.Color {
	face := grid[f]
	size := len(face)
	o := faceOrientations[f]

	rows := make([][]types.Color, size)
	for r := range rows {
		rows[r] = make([]types.Color, size)
		b := r
		if o.flipRow {
			b = size - 1 - r
		}
		for c := range rows[r] {
			a := c
			if o.flipCol {
				a = size - 1 - c
			}
			rows[r][c] = face[a][b]
		}
	}
	return rows
}

// PadLabels pads labels to a common width.
func PadLabels(labels []string) []string {
	width := 0
	for _, l := range labels {
		width = max(width, lipgloss.Width(l))
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l + strings.Repeat(" ", width-lipgloss.Width(l))
	}
	return out
}

// Net draws grid as plain text using labels for colors. Every line has the
// same width.
func Net(grid [][][]types.Color, labels []string) string {
	padded := PadLabels(labels)
	cell := func(col types.Color) string {
		if i := col.Index(); i >= 0 && i < len(padded) {
			return padded[i]
		}
		return strings.Repeat("?", lipgloss.Width(padded[0]))
	}
	return draw(grid, cell, lipgloss.Width(padded[0]))
}

// StyledNet draws grid with a colored block per facelet.
func StyledNet(grid [][][]types.Color) string {
	styles := make([]lipgloss.Style, len(palette))
	for i, bg := range palette {
		styles[i] = lipgloss.NewStyle().Background(bg)
	}
	unset := lipgloss.NewStyle().Background(lipgloss.Color("0"))

	cell := func(col types.Color) string {
		if i := col.Index(); i >= 0 {
			return styles[i].Render("  ")
		}
		return unset.Render("  ")
	}
	return draw(grid, cell, 2)
}

// draw lays the faces out as a net; width is the display width of one cell.
func draw(grid [][][]types.Color, cell func(types.Color) string, width int) string {
	size := len(grid[geometry.Up])
	blank := strings.Repeat(" ", width*size)

	screens := make([][][]types.Color, types.NumFaces)
	for f := range screens {
		screens[f] = Screen(grid, f)
	}

	faceRow := func(f, r int) string {
		var b strings.Builder
		for _, col := range screens[f][r] {
			b.WriteString(cell(col))
		}
		return b.String()
	}

	var lines []string
	for r := 0; r < size; r++ {
		lines = append(lines, strings.Join([]string{blank, faceRow(geometry.Up, r), blank, blank}, " "))
	}
	for r := 0; r < size; r++ {
		lines = append(lines, strings.Join([]string{
			faceRow(geometry.Left, r),
			faceRow(geometry.Front, r),
			faceRow(geometry.Right, r),
			faceRow(geometry.Back, r),
		}, " "))
	}
	for r := 0; r < size; r++ {
		lines = append(lines, strings.Join([]string{blank, faceRow(geometry.Down, r), blank, blank}, " "))
	}
	return strings.Join(lines, "\n")
}
