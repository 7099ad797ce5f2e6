package snapshot

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/geekpro798/rivetly-backend/internal/rules/domain"
)

// Encode packs a selection snapshot into an opaque ASCII token safe to embed
// inside comment syntax of any target file: JSON, percent-escaped, base64.
// The wire form matches what every Rivetly client emits and parses.
func Encode(mode string, selectedIDs []string, platform string, now time.Time) string {
	snap := domain.Snapshot{
		Mode:        mode,
		SelectedIDs: selectedIDs,
		Timestamp:   now.UnixMilli(),
		Platform:    platform,
	}
	raw, _ := json.Marshal(snap)
	return base64.StdEncoding.EncodeToString([]byte(escapeURIComponent(string(raw))))
}

// EncodeSnapshot serializes an already-built snapshot, preserving its timestamp.
func EncodeSnapshot(snap domain.Snapshot) string {
	raw, _ := json.Marshal(snap)
	return base64.StdEncoding.EncodeToString([]byte(escapeURIComponent(string(raw))))
}

// Decode reverses Encode. A malformed token yields ErrNoSnapshot, never a panic.
func Decode(token string) (domain.Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	unescaped, err := unescapeURIComponent(string(raw))
	if err != nil {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(unescaped), &snap); err != nil {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	return snap, nil
}

// FromDocument scans raw rule-file text for an embedded snapshot and decodes
// it. Absence and malformed presence both report false.
func FromDocument(text string) (domain.Snapshot, bool) {
	token, ok := Extract(text)
	if !ok {
		return domain.Snapshot{}, false
	}
	snap, err := Decode(token)
	if err != nil {
		return domain.Snapshot{}, false
	}
	return snap, true
}
