// Package session keeps cubes between CLI invocations. Each session is
// stored as its creation parameters plus an ordered operation log; opening a
// session replays the log through the rubik API.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/logging"
	"github.com/SeamusWaldron/rubik/internal/storage"
)

// ErrNoActiveSession is returned when no session has been selected.
var ErrNoActiveSession = errors.New("no active session (run 'rubik new' first)")

// Manager creates and opens sessions.
type Manager struct {
	db        *storage.DB
	stateFile *StateFile
	tables    *rubik.TableCache
	logger    *slog.Logger

	sessionRepo *storage.SessionRepository
	opRepo      *storage.OperationRepository
}

// NewManager creates a session manager. stateFile may be nil, in which case
// no session is ever active.
func NewManager(db *storage.DB, stateFile *StateFile, tables *rubik.TableCache, logger *slog.Logger) *Manager {
	if tables == nil {
		tables = rubik.NewTableCache(0)
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Manager{
		db:          db,
		stateFile:   stateFile,
		tables:      tables,
		logger:      logger,
		sessionRepo: storage.NewSessionRepository(db),
		opRepo:      storage.NewOperationRepository(db),
	}
}

// Create starts a new session with a solved cube and makes it active.
func (m *Manager) Create(size int, colors []string, notes string) (*Session, error) {
	// Validate before writing anything.
	cube, err := m.newCube(colors, size)
	if err != nil {
		return nil, err
	}

	id, err := m.sessionRepo.Create(size, colors, notes)
	if err != nil {
		return nil, err
	}
	info, err := m.sessionRepo.Get(id)
	if err != nil {
		return nil, err
	}

	if m.stateFile != nil {
		if err := m.stateFile.SetActiveSession(id); err != nil {
			m.logger.Warn("failed to save active session", "error", err)
		}
	}
	m.logger.Info("created session", "session", id, "size", size)

	return &Session{Info: *info, cube: cube, mgr: m}, nil
}

// Open loads a session and replays its log.
func (m *Manager) Open(sessionID string) (*Session, error) {
	info, err := m.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	ops, err := m.opRepo.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}

	cube, err := m.newCube(info.Colors, info.Size)
	if err != nil {
		return nil, err
	}
	if err := Replay(cube, ops); err != nil {
		return nil, fmt.Errorf("failed to replay session %s: %w", sessionID, err)
	}
	m.logger.Debug("opened session", "session", sessionID, "operations", len(ops))

	return &Session{Info: *info, Ops: ops, cube: cube, mgr: m}, nil
}

// Active opens the session named by the state file.
func (m *Manager) Active() (*Session, error) {
	if m.stateFile == nil || !m.stateFile.HasActiveSession() {
		return nil, ErrNoActiveSession
	}
	return m.Open(m.stateFile.ActiveSessionID())
}

// Use makes an existing session active.
func (m *Manager) Use(sessionID string) error {
	if _, err := m.sessionRepo.Get(sessionID); err != nil {
		return err
	}
	if m.stateFile == nil {
		return nil
	}
	return m.stateFile.SetActiveSession(sessionID)
}

// List returns recent sessions, newest first.
func (m *Manager) List(limit int) ([]storage.Session, error) {
	return m.sessionRepo.List(limit)
}

// Delete removes a session and its log.
func (m *Manager) Delete(sessionID string) error {
	if err := m.sessionRepo.Delete(sessionID); err != nil {
		return err
	}
	if m.stateFile != nil && m.stateFile.ActiveSessionID() == sessionID {
		return m.stateFile.ClearActiveSession()
	}
	return nil
}

// ActiveID returns the active session ID, or "" if none.
func (m *Manager) ActiveID() string {
	if m.stateFile == nil {
		return ""
	}
	return m.stateFile.ActiveSessionID()
}

func (m *Manager) newCube(colors []string, size int) (*rubik.Cube, error) {
	return rubik.New(colors, size,
		rubik.WithTableCache(m.tables),
		rubik.WithLogger(m.logger))
}

// Session is an open session: its stored parameters, its log and the cube
// the log produces.
type Session struct {
	Info storage.Session
	Ops  []storage.Operation

	mu   sync.Mutex
	cube *rubik.Cube
	mgr  *Manager
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.Info.SessionID
}

// Cube returns the session's cube. Changes made directly on it are not
// persisted.
func (s *Session) Cube() *rubik.Cube {
	return s.cube
}

// Rotate logs moves and applies them. Rejected moves are neither logged nor
// applied, and a failed log write leaves the cube unchanged.
func (s *Session) Rotate(moves string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parsed, err := rubik.ParseMoves(moves)
	if err != nil {
		return err
	}
	if len(parsed) == 0 {
		return nil
	}
	if err := s.cube.Validate(parsed...); err != nil {
		return err
	}
	if err := s.record(s.mgr.opRepo.AppendRotate(s.ID(), rubik.FormatMoves(parsed))); err != nil {
		return err
	}
	return s.cube.Apply(parsed...)
}

// Scramble logs the scramble parameters and scrambles the cube.
func (s *Session) Scramble(count int, seed uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := rubik.ValidateScramble(count); err != nil {
		return err
	}
	if err := s.record(s.mgr.opRepo.AppendScramble(s.ID(), count, seed)); err != nil {
		return err
	}
	return s.cube.Scramble(count, seed)
}

// ResetHistory logs the reset and clears the move history.
func (s *Session) ResetHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record(s.mgr.opRepo.AppendResetHistory(s.ID())); err != nil {
		return err
	}
	s.cube.ResetHistory()
	return nil
}

func (s *Session) record(op *storage.Operation, err error) error {
	if err != nil {
		return fmt.Errorf("failed to log operation: %w", err)
	}
	s.Ops = append(s.Ops, *op)
	return nil
}

// Replay applies ops to cube in order.
func Replay(cube *rubik.Cube, ops []storage.Operation) error {
	for _, op := range ops {
		if err := replayOne(cube, op); err != nil {
			return fmt.Errorf("operation %d (%s): %w", op.Index, op.Kind, err)
		}
	}
	return nil
}

func replayOne(cube *rubik.Cube, op storage.Operation) error {
	switch op.Kind {
	case storage.KindRotate:
		if op.MovesText == nil {
			return errors.New("rotate without moves")
		}
		return cube.Rotate(*op.MovesText)
	case storage.KindScramble:
		if op.ScrambleCount == nil || op.ScrambleSeed == nil {
			return errors.New("scramble without parameters")
		}
		return cube.Scramble(*op.ScrambleCount, *op.ScrambleSeed)
	case storage.KindResetHistory:
		cube.ResetHistory()
		return nil
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}
