package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/geekpro798/rivetly-backend/internal/syncgw/domain"
)

// ContextStore persists synced project contexts, one row per
// (user_firebase_uid, project_name). Successive syncs overwrite, never
// accumulate.
type ContextStore struct {
	db *sql.DB
}

func NewContextStore(db *sql.DB) *ContextStore {
	return &ContextStore{db: db}
}

// Upsert writes the context payload for a user's project.
func (s *ContextStore) Upsert(ctx context.Context, userID, projectName string, payload json.RawMessage, updatedAt time.Time) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user firebase uid required")
	}
	if strings.TrimSpace(projectName) == "" {
		return fmt.Errorf("project name required")
	}
	if len(payload) == 0 {
		return fmt.Errorf("payload required")
	}

	const q = `
INSERT INTO user_contexts (user_firebase_uid, project_name, context_snapshot, updated_at)
VALUES ($1, $2, $3::jsonb, $4)
ON CONFLICT (user_firebase_uid, project_name)
DO UPDATE SET context_snapshot = EXCLUDED.context_snapshot, updated_at = EXCLUDED.updated_at;
`
	_, err := s.db.ExecContext(ctx, q, userID, projectName, string(payload), updatedAt)
	if err != nil {
		return fmt.Errorf("upsert user context: %w", err)
	}
	return nil
}

// Get returns the stored context payload for a user's project.
func (s *ContextStore) Get(ctx context.Context, userID, projectName string) (json.RawMessage, error) {
	const q = `
SELECT context_snapshot::text
FROM user_contexts
WHERE user_firebase_uid = $1 AND project_name = $2;
`
	var text string
	err := s.db.QueryRowContext(ctx, q, userID, projectName).Scan(&text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContextNotFound
		}
		return nil, err
	}
	return json.RawMessage(text), nil
}

// List returns the project names a user has synced, newest first.
func (s *ContextStore) List(ctx context.Context, userID string) ([]string, error) {
	const q = `
SELECT project_name
FROM user_contexts
WHERE user_firebase_uid = $1
ORDER BY updated_at DESC;
`
	rows, err := s.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
