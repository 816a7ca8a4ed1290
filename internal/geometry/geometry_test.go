package geometry

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/rubik/pkg/types"
)

func TestNewRejectsSmallSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := New(size); !errors.Is(err, types.ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestSlotPositionBijection(t *testing.T) {
	for _, size := range []int{2, 3, 5, 8} {
		g, err := New(size)
		if err != nil {
			t.Fatalf("New(%d): %v", size, err)
		}
		if g.Len() != 6*size*size {
			t.Errorf("size %d: Len() = %d, want %d", size, g.Len(), 6*size*size)
		}

		seen := make(map[Position]bool)
		for slot, p := range g.Positions() {
			if seen[p] {
				t.Fatalf("size %d: position %v enumerated twice", size, p)
			}
			seen[p] = true

			got, ok := g.Slot(p)
			if !ok || got != slot {
				t.Errorf("size %d: Slot(%v) = %d,%v want %d", size, p, got, ok, slot)
			}
			if g.FaceOf(slot) != p.Face {
				t.Errorf("size %d: FaceOf(%d) = %d, want %d", size, slot, g.FaceOf(slot), p.Face)
			}
		}
	}
}

func TestSlotRejectsInteriorPositions(t *testing.T) {
	g, _ := New(3)
	bad := []Position{
		{Face: Up, X: 1, Y: 1, Z: 1},
		{Face: Left, X: 2, Y: 0, Z: 0},
		{Face: Front, X: 0, Y: 0, Z: 0},
		{Face: 6, X: 0, Y: 0, Z: 0},
		{Face: Down, X: 3, Y: 0, Z: 0},
	}
	for _, p := range bad {
		if _, ok := g.Slot(p); ok {
			t.Errorf("Slot(%v) should be rejected", p)
		}
	}
}

// Each outer layer holds one full face plus 4·size facelets of the
// neighbouring faces; inner layers hold only the 4·size ring.
func TestLayerPopulation(t *testing.T) {
	for _, size := range []int{2, 3, 5, 20} {
		g, _ := New(size)
		for _, axis := range types.Axes {
			counts := make([]int, size)
			for _, p := range g.Positions() {
				counts[p.Coord(axis)]++
			}
			for layer, c := range counts {
				want := 4 * size
				if layer == 0 || layer == size-1 {
					want += size * size
				}
				if c != want {
					t.Errorf("size %d axis %v layer %d: %d facelets, want %d", size, axis, layer, c, want)
				}
			}
		}
	}
}

func TestInitialState(t *testing.T) {
	g, _ := New(4)
	state := g.InitialState()
	counts := make(map[types.Color]int)
	for slot, c := range state {
		if c != types.ColorForFace(g.FaceOf(slot)) {
			t.Fatalf("slot %d has color %d, want %d", slot, c, types.ColorForFace(g.FaceOf(slot)))
		}
		counts[c]++
	}
	for f := 0; f < types.NumFaces; f++ {
		if counts[types.ColorForFace(f)] != 16 {
			t.Errorf("color %d appears %d times, want 16", f+1, counts[types.ColorForFace(f)])
		}
	}
}
