package platform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpro798/rivetly-backend/internal/rules/domain"
	"github.com/geekpro798/rivetly-backend/internal/rules/snapshot"
)

func TestResolve(t *testing.T) {
	t.Run("known platforms map to their rule files", func(t *testing.T) {
		assert.Equal(t, ".cursorrules", Resolve("CURSOR").File)
		assert.Equal(t, ".traerules", Resolve("TRAE").File)
		assert.Equal(t, ".windsurfrules", Resolve("WINDSURF").File)
		assert.Equal(t, ".github/copilot-instructions.md", Resolve("VSCODE").File)
		assert.Equal(t, "instructions.md", Resolve("OTHERS").File)
	})

	t.Run("resolution is case insensitive", func(t *testing.T) {
		assert.Equal(t, Cursor, Resolve("cursor").ID)
	})

	t.Run("unknown falls back to generic", func(t *testing.T) {
		p := Resolve("zed")
		assert.Equal(t, Others, p.ID)
		assert.Equal(t, "instructions.md", p.File)
		assert.False(t, Known("zed"))
	})
}

func TestFileBased(t *testing.T) {
	assert.True(t, FileBased("CURSOR"))
	assert.True(t, FileBased("windsurf"))
	assert.False(t, FileBased("OTHERS"))
	assert.False(t, FileBased("some-chat-tool"))
}

func testSnapshot(platformID string) domain.Snapshot {
	return domain.Snapshot{
		Mode:        "feature",
		SelectedIDs: []string{"strict_ts", "concise"},
		Timestamp:   1700000000000,
		Platform:    platformID,
	}
}

func TestProcessOutputCursor(t *testing.T) {
	doc := ProcessOutput("BASE CONTENT", testSnapshot(Cursor), "en")

	assert.Equal(t, ".cursorrules", doc.FileName)
	assert.True(t, strings.HasPrefix(doc.Content, "BASE CONTENT\n\n### 🧠 Continuity\n"))
	assert.Contains(t, doc.Content, "<!-- RIVETLY_SNAPSHOT_START\n")
	assert.Contains(t, doc.Content, "\nRIVETLY_SNAPSHOT_END -->")

	// The trailing comment block must decode back to the selections.
	snap, ok := snapshot.FromDocument(doc.Content)
	require.True(t, ok)
	assert.Equal(t, "feature", snap.Mode)
	assert.Equal(t, []string{"strict_ts", "concise"}, snap.SelectedIDs)
}

func TestProcessOutputCursorChinese(t *testing.T) {
	doc := ProcessOutput("BASE", testSnapshot(Trae), "zh")
	assert.Equal(t, ".traerules", doc.FileName)
	assert.Contains(t, doc.Content, "### 🧠 连续记忆")
}

func TestProcessOutputWindsurf(t *testing.T) {
	doc := ProcessOutput("BASE CONTENT", testSnapshot(Windsurf), "en")

	assert.Equal(t, ".windsurfrules", doc.FileName)
	assert.True(t, strings.HasPrefix(doc.Content, "# TASK CONTEXT\n- Mode: feature\n- Snapshot: {"))
	assert.True(t, strings.HasSuffix(doc.Content, "\n\nBASE CONTENT"))
	assert.NotContains(t, doc.Content, "RIVETLY_SNAPSHOT_START")
}

func TestProcessOutputVSCode(t *testing.T) {
	doc := ProcessOutput("BASE", testSnapshot(VSCode), "en")
	assert.Equal(t, ".github/copilot-instructions.md", doc.FileName)
	assert.True(t, strings.HasPrefix(doc.Content, "## 🧠 Session Context\n\n\n"))
}

func TestProcessOutputGeneric(t *testing.T) {
	t.Run("resume header, no snapshot block", func(t *testing.T) {
		doc := ProcessOutput("BASE", testSnapshot(Others), "en")
		assert.Equal(t, "instructions.md", doc.FileName)
		assert.Equal(t, "[RESUME: feature]\nBASE", doc.Content)
		_, ok := snapshot.FromDocument(doc.Content)
		assert.False(t, ok)
	})

	t.Run("chinese resume header", func(t *testing.T) {
		doc := ProcessOutput("BASE", testSnapshot(Others), "zh")
		assert.Equal(t, "[记忆恢复: feature]\nBASE", doc.Content)
	})

	t.Run("unknown platform takes the generic path", func(t *testing.T) {
		doc := ProcessOutput("BASE", testSnapshot("zed"), "en")
		assert.Equal(t, "instructions.md", doc.FileName)
		assert.Equal(t, "[RESUME: feature]\nBASE", doc.Content)
	})
}
