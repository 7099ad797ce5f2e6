package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/geekpro798/rivetly-backend/internal/syncgw/domain"
)

// Progress stages reported to the caller during a sync.
const (
	StageOptimizing = "optimizing"
	StageSyncing    = "syncing"
)

// ObjectStore is the bulk store for offloaded payloads.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// ContextStore is the queryable metadata store, unique on (user, project).
type ContextStore interface {
	Upsert(ctx context.Context, userID, projectName string, payload json.RawMessage, updatedAt time.Time) error
	Get(ctx context.Context, userID, projectName string) (json.RawMessage, error)
}

// Stasher keeps a failed sync locally so it can be retried later.
type Stasher interface {
	StageSync(ctx context.Context, userID, projectName string, payload json.RawMessage) error
}

// Gateway implements the smart-sync offload policy: contexts whose heavy
// sub-field exceeds the threshold have that field uploaded to the object store
// and replaced by a reference before the metadata upsert.
type Gateway struct {
	objects  ObjectStore
	contexts ContextStore
	staged   Stasher
	now      func() time.Time
}

func NewGateway(objects ObjectStore, contexts ContextStore, staged Stasher) *Gateway {
	return &Gateway{objects: objects, contexts: contexts, staged: staged, now: time.Now}
}

func NewGatewayWithClock(objects ObjectStore, contexts ContextStore, staged Stasher, now func() time.Time) *Gateway {
	return &Gateway{objects: objects, contexts: contexts, staged: staged, now: now}
}

// SmartSync uploads the context for (userID, projectName), offloading the
// heavy sub-field first when it is over the threshold. An empty userID fails
// with ErrAuthSessionMissing before any network call. Transport failures stage
// the slimmed payload locally for retry and are returned wrapped; an object
// upload that succeeded before a failed upsert is simply orphaned, uploads
// being idempotent-by-key and cheap to redo.
func (g *Gateway) SmartSync(ctx context.Context, userID, projectName string, sc domain.SyncContext, onProgress func(stage string)) error {
	if userID == "" {
		return domain.ErrAuthSessionMissing
	}

	if g.objects != nil && len(sc.IDEPhysicalContext) > 0 && ChooseTier(len(sc.IDEPhysicalContext)) == TierOffloaded {
		progress(onProgress, StageOptimizing)

		key := g.objectKey(projectName)
		if err := g.objects.Put(ctx, key, sc.IDEPhysicalContext); err != nil {
			g.stage(ctx, userID, projectName, sc)
			return fmt.Errorf("offload upload: %w", err)
		}

		ref := domain.HeavyRef{
			StorageType: domain.StorageTypeR2,
			Ref:         key,
			Size:        len(sc.IDEPhysicalContext),
			Timestamp:   g.now().UnixMilli(),
		}
		raw, err := json.Marshal(ref)
		if err != nil {
			return fmt.Errorf("marshal heavy ref: %w", err)
		}
		sc.IDEPhysicalContext = raw
	}

	progress(onProgress, StageSyncing)

	payload, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}
	if err := g.contexts.Upsert(ctx, userID, projectName, payload, g.now()); err != nil {
		g.stage(ctx, userID, projectName, sc)
		return fmt.Errorf("context upsert: %w", err)
	}
	return nil
}

// SmartLoad resolves an offloaded heavy sub-field back to its inline payload.
// Fetch failure is non-fatal: the reference stays in place and downstream
// consumers must tolerate it.
func (g *Gateway) SmartLoad(ctx context.Context, sc domain.SyncContext) domain.SyncContext {
	ref, ok := domain.AsHeavyRef(sc.IDEPhysicalContext)
	if !ok || g.objects == nil {
		return sc
	}

	body, err := g.objects.Get(ctx, ref.Ref)
	if err != nil {
		log.Printf("[syncgw] heavy payload fetch failed for ref=%s: %v", ref.Ref, err)
		return sc
	}
	sc.IDEPhysicalContext = body
	return sc
}

// Load fetches the stored context for a project and resolves any heavy
// reference in it.
func (g *Gateway) Load(ctx context.Context, userID, projectName string) (domain.SyncContext, error) {
	if userID == "" {
		return domain.SyncContext{}, domain.ErrAuthSessionMissing
	}

	payload, err := g.contexts.Get(ctx, userID, projectName)
	if err != nil {
		return domain.SyncContext{}, err
	}

	var sc domain.SyncContext
	if err := json.Unmarshal(payload, &sc); err != nil {
		return domain.SyncContext{}, fmt.Errorf("unmarshal context: %w", err)
	}
	return g.SmartLoad(ctx, sc), nil
}

// objectKey namespaces uploads by project, timestamp, and a random suffix.
// The suffix avoids same-millisecond collisions; it is not cryptographic.
func (g *Gateway) objectKey(projectName string) string {
	suffix := uuid.New().String()[:13]
	return fmt.Sprintf("snapshots/%s/%d-%s.json", projectName, g.now().UnixMilli(), suffix)
}

func (g *Gateway) stage(ctx context.Context, userID, projectName string, sc domain.SyncContext) {
	if g.staged == nil {
		return
	}
	payload, err := json.Marshal(sc)
	if err != nil {
		return
	}
	if err := g.staged.StageSync(ctx, userID, projectName, payload); err != nil {
		log.Printf("[syncgw] local staging failed for project=%s: %v", projectName, err)
	}
}

func progress(fn func(string), stage string) {
	if fn != nil {
		fn(stage)
	}
}
