package rubik

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/SeamusWaldron/rubik/internal/logging"
)

var testColors = []string{"U", "L", "C", "R", "B", "D"}

func newTestCube(t *testing.T, size int) *Cube {
	t.Helper()
	c, err := New(testColors, size)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return c
}

func TestNewCubeIsSolved(t *testing.T) {
	for size := 2; size <= 5; size++ {
		c := newTestCube(t, size)
		if !c.IsSolved() {
			t.Errorf("new %dx%d cube should be solved", size, size)
		}
		if len(c.Moves()) != 0 {
			t.Errorf("new cube should have no history")
		}
		if c.Size() != size {
			t.Errorf("Size() = %d, want %d", c.Size(), size)
		}
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	if _, err := New(testColors, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("size 1: got %v, want ErrInvalidSize", err)
	}
	if _, err := New([]string{"a", "b", "c"}, 3); !errors.Is(err, ErrInvalidColorSet) {
		t.Errorf("3 colors: got %v, want ErrInvalidColorSet", err)
	}
	if _, err := New([]string{"a", "b", "c", "d", "e", "a"}, 3); !errors.Is(err, ErrInvalidColorSet) {
		t.Errorf("duplicate colors: got %v, want ErrInvalidColorSet", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := newTestCube(t, 3)
	if err := c.Rotate("X0"); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("cube should not be solved after X0")
	}
}

func TestFourTurnsReturnToInitialState(t *testing.T) {
	c := newTestCube(t, 3)
	_, initial := newTestCube(t, 3).CoordinatesAndState()
	if err := c.Rotate("X0 X0 X0 X0"); err != nil {
		t.Fatal(err)
	}
	_, state := c.CoordinatesAndState()
	for i := range initial {
		if state[i] != initial[i] {
			t.Fatalf("slot %d = %d, want %d", i, state[i], initial[i])
		}
	}
	if got := FormatMoves(c.Moves()); got != "X0 X0 X0 X0" {
		t.Errorf("Moves() = %q", got)
	}
}

func TestFourTurnsReturnToSolved_AllSlices(t *testing.T) {
	for size := 2; size <= 4; size++ {
		for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
			for slice := 0; slice < size; slice++ {
				c := newTestCube(t, size)
				m := Move{Axis: axis, Slice: slice}
				if err := c.Apply(m, m, m, m); err != nil {
					t.Fatal(err)
				}
				if !c.IsSolved() {
					t.Errorf("size %d: %s x 4 should return to solved", size, m)
				}
			}
		}
	}
}

// Right and Up face turns commute back to solved after six repetitions.
func TestCommutator_6Times_ReturnsToSolved(t *testing.T) {
	c := newTestCube(t, 3)
	seq := Commutator([]Move{X(2)}, []Move{Z(2)})
	for i := 0; i < 6; i++ {
		if err := c.Apply(seq...); err != nil {
			t.Fatal(err)
		}
		if i < 5 && c.IsSolved() {
			t.Fatalf("solved after %d repetitions, want 6", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("commutator x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestForwardThenInverse(t *testing.T) {
	c := newTestCube(t, 3)
	if err := c.Rotate("X1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Rotate("X1i"); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("X1 X1i should return to solved")
	}
	if got := FormatMoves(c.Moves()); got != "X1 X1i" {
		t.Errorf("Moves() = %q, want %q", got, "X1 X1i")
	}
	c.ResetHistory()
	if len(c.Moves()) != 0 {
		t.Error("ResetHistory should clear moves")
	}
	if !c.IsSolved() {
		t.Error("ResetHistory should not change colors")
	}
}

func TestScrambleAndReverse(t *testing.T) {
	c := newTestCube(t, 4)
	if err := c.Scramble(50, 7); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Fatal("scrambled cube should not be solved")
	}
	if len(c.Moves()) != 0 {
		t.Error("Scramble should leave an empty history")
	}
	if err := c.Apply(Invert(ScrambleMoves(50, 4, 7))...); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("undoing the scramble moves should solve the cube")
	}
}

func TestScrambleDeterministic(t *testing.T) {
	a := newTestCube(t, 5)
	b := newTestCube(t, 5)
	if err := a.Scramble(100, 12345); err != nil {
		t.Fatal(err)
	}
	if err := b.Scramble(100, 12345); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("same seed should give the same cube")
	}

	other := newTestCube(t, 5)
	if err := other.Scramble(100, 54321); err != nil {
		t.Fatal(err)
	}
	if a.Equal(other) {
		t.Error("different seeds should give different cubes")
	}
}

func TestScrambleZeroAndNegative(t *testing.T) {
	c := newTestCube(t, 3)
	if err := c.Scramble(0, 1); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("zero-move scramble should leave the cube solved")
	}
	if err := c.Scramble(-1, 1); !errors.Is(err, ErrInvalidScrambleCount) {
		t.Errorf("got %v, want ErrInvalidScrambleCount", err)
	}
}

func TestRotateErrorsLeaveCubeUnchanged(t *testing.T) {
	c := newTestCube(t, 3)
	if err := c.Rotate("X0"); err != nil {
		t.Fatal(err)
	}
	_, before := c.CoordinatesAndState()

	if err := c.Rotate("Y1 W2"); !errors.Is(err, ErrMoveParse) {
		t.Errorf("W2: got %v, want ErrMoveParse", err)
	}
	if err := c.Rotate("Y1 X3"); !errors.Is(err, ErrMoveOutOfRange) {
		t.Errorf("X3: got %v, want ErrMoveOutOfRange", err)
	}
	if err := c.Rotate("Y1 Z99999999999999999999999"); !errors.Is(err, ErrMoveOutOfRange) {
		t.Errorf("huge slice: got %v, want ErrMoveOutOfRange", err)
	}

	_, after := c.CoordinatesAndState()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("slot %d changed after a failed rotation", i)
		}
	}
	if got := FormatMoves(c.Moves()); got != "X0" {
		t.Errorf("history = %q, want %q", got, "X0")
	}
}

func TestFaceletsUseLabels(t *testing.T) {
	c := newTestCube(t, 3)
	grid := c.Facelets()
	if len(grid) != 6 {
		t.Fatalf("%d faces, want 6", len(grid))
	}
	for f, face := range grid {
		for _, row := range face {
			for _, label := range row {
				if label != testColors[f] {
					t.Errorf("face %d shows %q, want %q", f, label, testColors[f])
				}
			}
		}
	}

	// Facelets is a copy
	grid[0][0][0] = "changed"
	if c.Facelets()[0][0][0] != "U" {
		t.Error("modifying Facelets() result should not affect the cube")
	}
}

func TestCoordinatesAndState(t *testing.T) {
	c := newTestCube(t, 4)
	coords, state := c.CoordinatesAndState()
	if len(coords) != 6*16 || len(state) != 6*16 {
		t.Fatalf("got %d coords and %d colors, want %d", len(coords), len(state), 6*16)
	}
	for i, p := range coords {
		if int(state[i]) != p.Face+1 {
			t.Errorf("slot %d on face %d has color %d", i, p.Face, state[i])
		}
	}
}

func TestOnMoveCallback(t *testing.T) {
	c := newTestCube(t, 3)
	var seen []Move
	c.OnMove(func(m Move) { seen = append(seen, m) })

	if err := c.Rotate("X0 Y2i"); err != nil {
		t.Fatal(err)
	}
	if err := c.Scramble(10, 1); err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(seen); got != "X0 Y2i" {
		t.Errorf("callback saw %q, want %q", got, "X0 Y2i")
	}
}

func TestEqual(t *testing.T) {
	a := newTestCube(t, 3)
	b := newTestCube(t, 3)
	if !a.Equal(b) || !a.Equal(a) {
		t.Error("solved cubes of one size should be equal")
	}
	if a.Equal(nil) {
		t.Error("a cube should not equal nil")
	}
	if a.Equal(newTestCube(t, 4)) {
		t.Error("cubes of different sizes should not be equal")
	}
	if err := b.Rotate("Z0"); err != nil {
		t.Fatal(err)
	}
	if a.Equal(b) {
		t.Error("a turned cube should differ from a solved one")
	}
}

func TestConcurrentCrossEqual(t *testing.T) {
	a := newTestCube(t, 3)
	b := newTestCube(t, 3)
	var wg sync.WaitGroup
	for _, pair := range [][2]*Cube{{a, b}, {b, a}} {
		wg.Add(2)
		go func(x, y *Cube) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				x.Equal(y)
			}
		}(pair[0], pair[1])
		go func(x *Cube) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if err := x.Rotate("X1 X1i"); err != nil {
					t.Error(err)
					return
				}
			}
		}(pair[0])
	}
	wg.Wait()
	if !a.Equal(b) {
		t.Error("balanced rotations should leave both cubes solved")
	}
}

func TestValidate(t *testing.T) {
	c := newTestCube(t, 3)
	if err := c.Validate(X(0), Z(2)); err != nil {
		t.Errorf("valid moves: %v", err)
	}
	if err := c.Validate(X(0), Y(3)); !errors.Is(err, ErrMoveOutOfRange) {
		t.Errorf("got %v, want ErrMoveOutOfRange", err)
	}
	if len(c.Moves()) != 0 || !c.IsSolved() {
		t.Error("Validate should not change the cube")
	}
}

func TestSolveUnsupported(t *testing.T) {
	c := newTestCube(t, 3)
	if err := c.Solve("beginner"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}

func TestStringDrawsNet(t *testing.T) {
	c := newTestCube(t, 3)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 9 {
		t.Fatalf("%d lines, want 9", len(lines))
	}
	if !strings.Contains(lines[4], "LLL CCC RRR BBB") {
		t.Errorf("middle row = %q", lines[4])
	}
}

func TestTableCacheSharedBySize(t *testing.T) {
	tables := NewTableCache(2)
	if tables.Has(6) {
		t.Fatal("new cache should be empty")
	}
	if _, err := New(testColors, 6, WithTableCache(tables)); err != nil {
		t.Fatal(err)
	}
	if !tables.Has(6) {
		t.Error("table for size 6 should be cached after New")
	}
	if err := tables.Warm(2, 3); err != nil {
		t.Fatal(err)
	}
	if !tables.Has(2) || !tables.Has(3) {
		t.Error("Warm should build the requested sizes")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelDebug)

	c, err := New(testColors, 3, WithLogger(logger), WithTableCache(NewTableCache(0)))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Scramble(5, 9); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "built move table") {
		t.Errorf("missing table build log in %q", out)
	}
	if !strings.Contains(out, "scrambled") {
		t.Errorf("missing scramble log in %q", out)
	}
}

func TestConcurrentRotations(t *testing.T) {
	c := newTestCube(t, 3)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if err := c.Rotate("Y1 Y1i"); err != nil {
					t.Error(err)
					return
				}
				_ = c.Facelets()
			}
		}()
	}
	wg.Wait()

	if !c.IsSolved() {
		t.Error("balanced concurrent rotations should leave the cube solved")
	}
	if len(c.Moves()) != 8*25*2 {
		t.Errorf("history has %d moves, want %d", len(c.Moves()), 8*25*2)
	}
}
