package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/storage"
)

var colors = []string{"W", "O", "G", "R", "B", "Y"}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	db, err := storage.Open(filepath.Join(dir, "rubik.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sf, err := NewStateFile(filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatalf("NewStateFile: %v", err)
	}
	return NewManager(db, sf, rubik.NewTableCache(0), nil)
}

func TestCreateMakesActive(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Active(); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("got %v, want ErrNoActiveSession", err)
	}

	s, err := m.Create(3, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.ActiveID() != s.ID() {
		t.Errorf("ActiveID = %q, want %q", m.ActiveID(), s.ID())
	}
	if !s.Cube().IsSolved() {
		t.Error("new session cube should be solved")
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Create(1, colors, ""); !errors.Is(err, rubik.ErrInvalidSize) {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
	list, err := m.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("invalid session should not be stored")
	}
}

func TestReopenReplaysLog(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Create(4, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Scramble(30, 99); err != nil {
		t.Fatal(err)
	}
	if err := s.Rotate("X0 Y3i Z1"); err != nil {
		t.Fatal(err)
	}
	if err := s.ResetHistory(); err != nil {
		t.Fatal(err)
	}
	if err := s.Rotate("Z2i"); err != nil {
		t.Fatal(err)
	}

	reopened, err := m.Active()
	if err != nil {
		t.Fatal(err)
	}
	if !reopened.Cube().Equal(s.Cube()) {
		t.Error("replayed cube differs from the live cube")
	}
	if got := rubik.FormatMoves(reopened.Cube().Moves()); got != "Z2i" {
		t.Errorf("replayed history = %q, want %q", got, "Z2i")
	}
	if len(reopened.Ops) != 4 {
		t.Errorf("%d operations, want 4", len(reopened.Ops))
	}
}

func TestRejectedMovesAreNotLogged(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Create(3, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Rotate("X0 X9"); !errors.Is(err, rubik.ErrMoveOutOfRange) {
		t.Errorf("got %v, want ErrMoveOutOfRange", err)
	}
	if err := s.Rotate("Q1"); !errors.Is(err, rubik.ErrMoveParse) {
		t.Errorf("got %v, want ErrMoveParse", err)
	}
	if err := s.Scramble(-3, 1); !errors.Is(err, rubik.ErrInvalidScrambleCount) {
		t.Errorf("got %v, want ErrInvalidScrambleCount", err)
	}
	if len(s.Ops) != 0 {
		t.Errorf("%d operations logged, want 0", len(s.Ops))
	}

	reopened, err := m.Open(s.ID())
	if err != nil {
		t.Fatal(err)
	}
	if !reopened.Cube().IsSolved() {
		t.Error("cube should still be solved")
	}
}

func TestUseAndDelete(t *testing.T) {
	m := newTestManager(t)
	first, err := m.Create(2, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Create(3, colors, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Use(first.ID()); err != nil {
		t.Fatal(err)
	}
	active, err := m.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active.Info.Size != 2 {
		t.Errorf("active size = %d, want 2", active.Info.Size)
	}

	if err := m.Use("missing"); !errors.Is(err, storage.ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}

	if err := m.Delete(first.ID()); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Active(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("deleting the active session should clear it, got %v", err)
	}
	if _, err := m.Open(second.ID()); err != nil {
		t.Errorf("other sessions should survive: %v", err)
	}
}

func TestStateFilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	sf, err := NewStateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if sf.HasActiveSession() {
		t.Error("fresh state should have no active session")
	}
	if err := sf.SetActiveSession("abc"); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewStateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ActiveSessionID() != "abc" {
		t.Errorf("ActiveSessionID = %q, want abc", loaded.ActiveSessionID())
	}
}

func TestTimeline(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Create(3, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Scramble(10, 5); err != nil {
		t.Fatal(err)
	}
	if err := s.Rotate("X0 Y1"); err != nil {
		t.Fatal(err)
	}

	frames, err := s.Timeline()
	if err != nil {
		t.Fatal(err)
	}
	// start, scramble, X0, Y1
	if len(frames) != 4 {
		t.Fatalf("%d frames, want 4", len(frames))
	}
	if frames[1].Move != nil || frames[2].Move == nil || frames[2].Move.Notation() != "X0" {
		t.Errorf("unexpected frames %+v", frames)
	}
	if frames[3].History != 2 {
		t.Errorf("last frame history = %d, want 2", frames[3].History)
	}

	want := s.Cube().FaceletColors()
	last := frames[len(frames)-1].Grid
	for f := range want {
		for a := range want[f] {
			for b := range want[f][a] {
				if last[f][a][b] != want[f][a][b] {
					t.Fatalf("last frame differs from the cube at face %d", f)
				}
			}
		}
	}
}

func TestFailedLogWriteLeavesCubeUnchanged(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Create(3, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Rotate("X0"); err != nil {
		t.Fatal(err)
	}
	_, before := s.Cube().CoordinatesAndState()

	m.db.Close()

	if err := s.Rotate("Y1"); err == nil {
		t.Fatal("Rotate should fail when the log cannot be written")
	}
	if err := s.Scramble(20, 3); err == nil {
		t.Fatal("Scramble should fail when the log cannot be written")
	}
	if err := s.ResetHistory(); err == nil {
		t.Fatal("ResetHistory should fail when the log cannot be written")
	}

	_, after := s.Cube().CoordinatesAndState()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("slot %d changed after a failed log write", i)
		}
	}
	if got := rubik.FormatMoves(s.Cube().Moves()); got != "X0" {
		t.Errorf("history = %q, want %q", got, "X0")
	}
	if len(s.Ops) != 1 {
		t.Errorf("%d ops recorded, want 1", len(s.Ops))
	}
}
