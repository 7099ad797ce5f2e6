package domain

// CustomConstraint is a user-created rule. It is added and removed whole,
// never edited in place.
type CustomConstraint struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// Selection is the sole input to rendering. Two renders of the same Selection
// taken at the same moment produce identical output.
type Selection struct {
	ModeID            string             `json:"mode"`
	SelectedIDs       []string           `json:"selected_ids"`
	CustomConstraints []CustomConstraint `json:"custom_constraints"`
	PlatformID        string             `json:"platform"`
	Locale            string             `json:"locale"`
}

// HasSelected reports whether id is among the selected ids.
func (s Selection) HasSelected(id string) bool {
	for _, v := range s.SelectedIDs {
		if v == id {
			return true
		}
	}
	return false
}

// Snapshot is the compact restorable record embedded in rendered output.
// Field names match the wire form produced by every Rivetly client.
type Snapshot struct {
	Mode        string   `json:"m"`
	SelectedIDs []string `json:"ids"`
	Timestamp   int64    `json:"ts"`
	Platform    string   `json:"p"`
}

// RenderedDocument is derived output, regenerated on every selection change.
type RenderedDocument struct {
	Content  string `json:"content"`
	FileName string `json:"file_name"`
}

// LastExport records the most recent export action for a user. It exists for
// display and debugging only; nothing reads it back into rendering.
type LastExport struct {
	Platform  string `json:"platform"`
	Timestamp int64  `json:"timestamp"`
}
