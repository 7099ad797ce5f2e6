package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	rules "github.com/geekpro798/rivetly-backend/internal/rules/domain"
	syncdomain "github.com/geekpro798/rivetly-backend/internal/syncgw/domain"
)

const (
	lastExportKeyPrefix = "rivetly:lastexport:" // rivetly:lastexport:{user_id}
	stagedKeyPrefix     = "rivetly:staged:"     // hash per user, field = project name
	lastExportTTL       = 30 * 24 * time.Hour
	stagedTTL           = 7 * 24 * time.Hour // staged retries older than this are stale
)

// Repo handles Redis operations for per-user session state: the last-export
// record and sync payloads staged after transport failures.
type Repo struct {
	client *redis.Client
}

func NewRepo(client *redis.Client) *Repo {
	return &Repo{client: client}
}

// RecordLastExport overwrites the user's last-export record.
func (r *Repo) RecordLastExport(ctx context.Context, userID string, rec rules.LastExport) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal last export: %w", err)
	}
	return r.client.Set(ctx, r.lastExportKey(userID), data, lastExportTTL).Err()
}

// GetLastExport returns the user's last-export record, if one exists.
func (r *Repo) GetLastExport(ctx context.Context, userID string) (rules.LastExport, bool, error) {
	data, err := r.client.Get(ctx, r.lastExportKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rules.LastExport{}, false, nil
		}
		return rules.LastExport{}, false, err
	}

	var rec rules.LastExport
	if err := json.Unmarshal(data, &rec); err != nil {
		return rules.LastExport{}, false, fmt.Errorf("failed to unmarshal last export: %w", err)
	}
	return rec, true, nil
}

// StageSync keeps a failed sync payload locally so it can be retried. One
// entry per project; a newer failure overwrites an older one.
func (r *Repo) StageSync(ctx context.Context, userID, projectName string, payload json.RawMessage) error {
	entry := syncdomain.StagedSync{
		ProjectName: projectName,
		Payload:     payload,
		StagedAt:    time.Now().UnixMilli(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal staged sync: %w", err)
	}

	key := r.stagedKey(userID)
	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, projectName, data)
	pipe.Expire(ctx, key, stagedTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// ListStaged returns all staged syncs for a user.
func (r *Repo) ListStaged(ctx context.Context, userID string) ([]syncdomain.StagedSync, error) {
	fields, err := r.client.HGetAll(ctx, r.stagedKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]syncdomain.StagedSync, 0, len(fields))
	for _, raw := range fields {
		var entry syncdomain.StagedSync
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal staged sync: %w", err)
		}
		out = append(out, entry)
	}
	return out, nil
}

// StagedUserIDs returns the ids of users with at least one staged sync,
// scanning rather than KEYS so a large keyspace never blocks Redis.
func (r *Repo) StagedUserIDs(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, stagedKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			out = append(out, strings.TrimPrefix(key, stagedKeyPrefix))
		}
		cursor = next
		if cursor == 0 {
			return out, nil
		}
	}
}

// ClearStaged removes a staged sync after a successful retry.
func (r *Repo) ClearStaged(ctx context.Context, userID, projectName string) error {
	return r.client.HDel(ctx, r.stagedKey(userID), projectName).Err()
}

func (r *Repo) lastExportKey(userID string) string {
	return lastExportKeyPrefix + userID
}

func (r *Repo) stagedKey(userID string) string {
	return stagedKeyPrefix + userID
}
