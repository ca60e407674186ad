package statecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

const assignmentSchema = `
CREATE TABLE IF NOT EXISTS assignment_state (
	outing_id    TEXT PRIMARY KEY,
	assignments  TEXT NOT NULL,
	last_updated TEXT NOT NULL
)`

// SQLiteStore keeps drafts in a local SQLite file, the default backend for
// single-instance deployments.
type SQLiteStore struct {
	db     *sqlx.DB
	expiry time.Duration
	clock  func() time.Time
}

// OpenSQLite opens (and creates if needed) the state database at path.
func OpenSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db %s: %w", path, err)
	}
	return db, nil
}

// NewSQLiteStore prepares the schema and returns a store over db. A nil clock
// defaults to time.Now.
func NewSQLiteStore(db *sqlx.DB, expiry time.Duration, clock func() time.Time) (*SQLiteStore, error) {
	if clock == nil {
		clock = time.Now
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	if _, err := db.Exec(assignmentSchema); err != nil {
		return nil, fmt.Errorf("prepare assignment_state schema: %w", err)
	}
	return &SQLiteStore{db: db, expiry: expiry, clock: clock}, nil
}

type assignmentRow struct {
	OutingID    string `db:"outing_id"`
	Assignments string `db:"assignments"`
	LastUpdated string `db:"last_updated"`
}

func (s *SQLiteStore) Load(ctx context.Context, outingID string) (*models.AssignmentState, error) {
	var row assignmentRow
	err := s.db.GetContext(ctx, &row,
		`SELECT outing_id, assignments, last_updated FROM assignment_state WHERE outing_id = ?`, outingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load assignment state %s: %w", outingID, err)
	}

	lastUpdated, err := time.Parse(time.RFC3339Nano, row.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("parse assignment timestamp for %s: %w", outingID, err)
	}

	var assignments map[string]string
	if err := json.Unmarshal([]byte(row.Assignments), &assignments); err != nil {
		return nil, fmt.Errorf("decode assignment state %s: %w", outingID, err)
	}

	state := &models.AssignmentState{Assignments: assignments, LastUpdated: lastUpdated}
	if expired(state, s.clock(), s.expiry) {
		return nil, nil
	}
	return state, nil
}

func (s *SQLiteStore) Save(ctx context.Context, outingID string, assignments map[string]string) (*models.AssignmentState, error) {
	if assignments == nil {
		assignments = map[string]string{}
	}
	payload, err := json.Marshal(assignments)
	if err != nil {
		return nil, fmt.Errorf("encode assignment state %s: %w", outingID, err)
	}

	now := s.clock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assignment_state (outing_id, assignments, last_updated) VALUES (?, ?, ?)
		 ON CONFLICT(outing_id) DO UPDATE SET assignments = excluded.assignments, last_updated = excluded.last_updated`,
		outingID, string(payload), now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("save assignment state %s: %w", outingID, err)
	}

	return &models.AssignmentState{Assignments: assignments, LastUpdated: now}, nil
}

func (s *SQLiteStore) Clear(ctx context.Context, outingIDs ...string) error {
	if len(outingIDs) == 0 {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM assignment_state`); err != nil {
			return fmt.Errorf("clear assignment state: %w", err)
		}
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM assignment_state WHERE outing_id IN (?)`, outingIDs)
	if err != nil {
		return fmt.Errorf("build clear query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("clear assignment state: %w", err)
	}
	return nil
}
