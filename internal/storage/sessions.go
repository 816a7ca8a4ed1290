package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session ID has no row.
var ErrSessionNotFound = errors.New("session not found")

// Session is one cube and its creation parameters.
type Session struct {
	SessionID string
	Size      int
	Colors    []string
	CreatedAt time.Time
	Notes     *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(size int, colors []string, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	colorsJSON, err := json.Marshal(colors)
	if err != nil {
		return "", fmt.Errorf("failed to encode colors: %w", err)
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err = r.db.Exec(`
		INSERT INTO sessions (session_id, size, colors, created_at, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, size, string(colorsJSON), createdAt.Format(timeFormat), notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Get retrieves a session by ID. Returns ErrSessionNotFound if missing.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, size, colors, created_at, notes
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent session, or nil if there are none.
func (r *SessionRepository) GetLast() (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, size, colors, created_at, notes
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, size, colors, created_at, notes
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its operations (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var colorsJSON, createdAtStr string

	if err := row.Scan(&s.SessionID, &s.Size, &colorsJSON, &createdAtStr, &s.Notes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(colorsJSON), &s.Colors); err != nil {
		return nil, fmt.Errorf("failed to decode colors: %w", err)
	}
	s.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
	return &s, nil
}
