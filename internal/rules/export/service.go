package export

import (
	"context"
	"log"
	"time"

	"github.com/geekpro798/rivetly-backend/internal/rules/domain"
	"github.com/geekpro798/rivetly-backend/internal/rules/platform"
	"github.com/geekpro798/rivetly-backend/internal/rules/snapshot"
)

// CandidateRuleFiles are the file names scanned when recovering a snapshot
// from an existing workspace.
var CandidateRuleFiles = []string{".cursorrules", ".traerules", ".windsurfrules"}

// SessionStore keeps the per-user last-export record. Set on every export,
// read only for display and debugging.
type SessionStore interface {
	RecordLastExport(ctx context.Context, userID string, rec domain.LastExport) error
	GetLastExport(ctx context.Context, userID string) (domain.LastExport, bool, error)
}

// Renderer is satisfied by renderer.Renderer.
type Renderer interface {
	Render(sel domain.Selection) string
}

type Service struct {
	renderer Renderer
	sessions SessionStore
	now      func() time.Time
}

func NewService(r Renderer, sessions SessionStore) *Service {
	return &Service{renderer: r, sessions: sessions, now: time.Now}
}

func NewServiceWithClock(r Renderer, sessions SessionStore, now func() time.Time) *Service {
	return &Service{renderer: r, sessions: sessions, now: now}
}

// Export renders the selection, applies the platform envelope with an embedded
// snapshot, and records the export in session state. A session-store failure
// does not fail the export; the record is bookkeeping, not data.
func (s *Service) Export(ctx context.Context, userID string, sel domain.Selection) domain.RenderedDocument {
	base := s.renderer.Render(sel)
	now := s.now()

	snap := domain.Snapshot{
		Mode:        sel.ModeID,
		SelectedIDs: sel.SelectedIDs,
		Timestamp:   now.UnixMilli(),
		Platform:    platform.Resolve(sel.PlatformID).ID,
	}
	doc := platform.ProcessOutput(base, snap, sel.Locale)

	if s.sessions != nil && userID != "" {
		rec := domain.LastExport{Platform: snap.Platform, Timestamp: now.UnixMilli()}
		if err := s.sessions.RecordLastExport(ctx, userID, rec); err != nil {
			log.Printf("[export] last-export record failed for user=%s: %v", userID, err)
		}
	}

	return doc
}

// Preview renders without envelope or bookkeeping.
func (s *Service) Preview(sel domain.Selection) string {
	return s.renderer.Render(sel)
}

// Restore scans raw rule-file text for an embedded snapshot. Absent and
// malformed snapshots are both reported as not found.
func (s *Service) Restore(text string) (domain.Snapshot, bool) {
	return snapshot.FromDocument(text)
}

// LastExport returns the user's most recent export record, if any.
func (s *Service) LastExport(ctx context.Context, userID string) (domain.LastExport, bool, error) {
	if s.sessions == nil {
		return domain.LastExport{}, false, nil
	}
	return s.sessions.GetLastExport(ctx, userID)
}

// NewCustomConstraint derives the stable id for a user-created rule.
func (s *Service) NewCustomConstraint(label, prompt string) domain.CustomConstraint {
	return domain.CustomConstraint{
		ID:     domain.NewCustomRuleID(prompt, s.now()),
		Label:  label,
		Prompt: prompt,
	}
}
