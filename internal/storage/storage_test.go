package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var colors = []string{"W", "O", "G", "R", "B", "Y"}

func TestOpenMigrates(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != LatestVersion() {
		t.Errorf("version = %d, want %d", version, LatestVersion())
	}

	// Re-applying is a no-op
	if err := db.MigrateUp(); err != nil {
		t.Errorf("second MigrateUp: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	id, err := NewSessionRepository(db).Create(4, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	s, err := NewSessionRepository(db).Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size != 4 {
		t.Errorf("Size = %d, want 4", s.Size)
	}
}

func TestSessionCreateGet(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create(5, colors, "practice")
	if err != nil {
		t.Fatal(err)
	}
	s, err := repo.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.SessionID != id || s.Size != 5 {
		t.Errorf("got %+v", s)
	}
	if s.Notes == nil || *s.Notes != "practice" {
		t.Errorf("Notes = %v, want practice", s.Notes)
	}
	for i := range colors {
		if s.Colors[i] != colors[i] {
			t.Errorf("Colors[%d] = %q, want %q", i, s.Colors[i], colors[i])
		}
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSessionGetMissing(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	if _, err := repo.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
	last, err := repo.GetLast()
	if err != nil || last != nil {
		t.Errorf("GetLast on empty db = %v, %v", last, err)
	}
}

func TestSessionListNewestFirst(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	var ids []string
	for size := 2; size <= 4; size++ {
		id, err := repo.Create(size, colors, "")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	list, err := repo.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("%d sessions, want 3", len(list))
	}
	if list[0].SessionID != ids[2] {
		t.Errorf("newest session should be listed first")
	}

	last, err := repo.GetLast()
	if err != nil {
		t.Fatal(err)
	}
	if last.SessionID != ids[2] {
		t.Errorf("GetLast = %s, want %s", last.SessionID, ids[2])
	}

	limited, err := repo.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d", len(limited))
	}
}

func TestOperationsAppendInOrder(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	ops := NewOperationRepository(db)

	id, err := sessions.Create(3, colors, "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ops.AppendScramble(id, 25, 1<<63+5); err != nil {
		t.Fatal(err)
	}
	if _, err := ops.AppendRotate(id, "X0 Y1i"); err != nil {
		t.Fatal(err)
	}
	if _, err := ops.AppendResetHistory(id); err != nil {
		t.Fatal(err)
	}

	log, err := ops.GetBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 3 {
		t.Fatalf("%d operations, want 3", len(log))
	}
	for i, op := range log {
		if op.Index != i {
			t.Errorf("op %d has index %d", i, op.Index)
		}
	}

	if log[0].Kind != KindScramble || *log[0].ScrambleCount != 25 || *log[0].ScrambleSeed != 1<<63+5 {
		t.Errorf("scramble op = %+v", log[0])
	}
	if log[1].Kind != KindRotate || *log[1].MovesText != "X0 Y1i" {
		t.Errorf("rotate op = %+v", log[1])
	}
	if log[2].Kind != KindResetHistory || log[2].MovesText != nil {
		t.Errorf("reset op = %+v", log[2])
	}

	n, err := ops.Count(id)
	if err != nil || n != 3 {
		t.Errorf("Count = %d, %v", n, err)
	}
}

func TestOperationsRequireSession(t *testing.T) {
	ops := NewOperationRepository(openTestDB(t))
	if _, err := ops.AppendRotate("missing", "X0"); err == nil {
		t.Error("appending to a missing session should fail")
	}
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	ops := NewOperationRepository(db)

	id, err := sessions.Create(3, colors, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ops.AppendRotate(id, "Z2"); err != nil {
		t.Fatal(err)
	}
	if err := sessions.Delete(id); err != nil {
		t.Fatal(err)
	}
	n, err := ops.Count(id)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("%d operations left after delete", n)
	}
}
