package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Operation kinds recorded in the log.
const (
	KindRotate       = "rotate"
	KindScramble     = "scramble"
	KindResetHistory = "reset_history"
)

// Operation is one entry of a session's log.
type Operation struct {
	OpID          int64
	SessionID     string
	Index         int
	Kind          string
	MovesText     *string
	ScrambleCount *int
	ScrambleSeed  *uint64
	CreatedAt     time.Time
}

// OperationRepository provides append and read access to operation logs.
type OperationRepository struct {
	db *DB
}

// NewOperationRepository creates a new operation repository.
func NewOperationRepository(db *DB) *OperationRepository {
	return &OperationRepository{db: db}
}

// AppendRotate logs a rotation of movesText.
func (r *OperationRepository) AppendRotate(sessionID, movesText string) (*Operation, error) {
	return r.append(sessionID, KindRotate, &movesText, nil, nil)
}

// AppendScramble logs a scramble of count moves from seed.
func (r *OperationRepository) AppendScramble(sessionID string, count int, seed uint64) (*Operation, error) {
	return r.append(sessionID, KindScramble, nil, &count, &seed)
}

// AppendResetHistory logs a history reset.
func (r *OperationRepository) AppendResetHistory(sessionID string) (*Operation, error) {
	return r.append(sessionID, KindResetHistory, nil, nil, nil)
}

func (r *OperationRepository) append(sessionID, kind string, moves *string, count *int, seed *uint64) (*Operation, error) {
	op := &Operation{
		SessionID:     sessionID,
		Kind:          kind,
		MovesText:     moves,
		ScrambleCount: count,
		ScrambleSeed:  seed,
		CreatedAt:     time.Now().UTC(),
	}

	// SQLite integers are signed; seeds are stored bit for bit.
	var seedArg *int64
	if seed != nil {
		s := int64(*seed)
		seedArg = &s
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		err := tx.QueryRow(
			"SELECT COALESCE(MAX(op_index), -1) + 1 FROM operations WHERE session_id = ?",
			sessionID,
		).Scan(&op.Index)
		if err != nil {
			return fmt.Errorf("failed to get next index: %w", err)
		}

		result, err := tx.Exec(`
			INSERT INTO operations (session_id, op_index, kind, moves_text, scramble_count, scramble_seed, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, sessionID, op.Index, kind, moves, count, seedArg, op.CreatedAt.Format(timeFormat))
		if err != nil {
			return fmt.Errorf("failed to create operation: %w", err)
		}

		op.OpID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get operation ID: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

// GetBySession retrieves a session's operations in log order.
func (r *OperationRepository) GetBySession(sessionID string) ([]Operation, error) {
	rows, err := r.db.Query(`
		SELECT op_id, session_id, op_index, kind, moves_text, scramble_count, scramble_seed, created_at
		FROM operations
		WHERE session_id = ?
		ORDER BY op_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}
	defer rows.Close()

	var ops []Operation
	for rows.Next() {
		var op Operation
		var seed sql.NullInt64
		var count sql.NullInt64
		var createdAtStr string

		err := rows.Scan(&op.OpID, &op.SessionID, &op.Index, &op.Kind,
			&op.MovesText, &count, &seed, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}

		if count.Valid {
			c := int(count.Int64)
			op.ScrambleCount = &c
		}
		if seed.Valid {
			s := uint64(seed.Int64)
			op.ScrambleSeed = &s
		}
		op.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
		ops = append(ops, op)
	}

	return ops, rows.Err()
}

// Count returns the number of operations for a session.
func (r *OperationRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM operations WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count operations: %w", err)
	}
	return count, nil
}
