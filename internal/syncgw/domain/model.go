package domain

import (
	"encoding/json"

	rules "github.com/geekpro798/rivetly-backend/internal/rules/domain"
)

// SyncContext is the project context document synced to the cloud. JSON field
// names match the rows the web client writes, so both sides stay compatible.
// IDEPhysicalContext is opaque to the gateway apart from its size: it holds
// whatever the IDE captured (open file, selection, diagnostics) or, after
// offload, a HeavyRef.
type SyncContext struct {
	Mode               string                   `json:"mode"`
	SelectedIDs        []string                 `json:"selectedIds"`
	CustomConstraints  []rules.CustomConstraint `json:"customConstraints,omitempty"`
	IDEPhysicalContext json.RawMessage          `json:"idePhysicalContext,omitempty"`
}

// HeavyRef replaces an offloaded payload inside a SyncContext.
type HeavyRef struct {
	StorageType string `json:"storageType"`
	Ref         string `json:"ref"`
	Size        int    `json:"size"`
	Timestamp   int64  `json:"timestamp"`
}

// StorageTypeR2 is the only storage tier currently written.
const StorageTypeR2 = "R2"

// AsHeavyRef reports whether raw is a reference record rather than an inline
// payload.
func AsHeavyRef(raw json.RawMessage) (HeavyRef, bool) {
	if len(raw) == 0 {
		return HeavyRef{}, false
	}
	var ref HeavyRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return HeavyRef{}, false
	}
	if ref.StorageType != StorageTypeR2 || ref.Ref == "" {
		return HeavyRef{}, false
	}
	return ref, true
}

// StagedSync is a context kept locally after a failed sync, for later retry.
type StagedSync struct {
	ProjectName string          `json:"project_name"`
	Payload     json.RawMessage `json:"payload"`
	StagedAt    int64           `json:"staged_at"`
}
