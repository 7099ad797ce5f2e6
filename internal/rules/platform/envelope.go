package platform

import (
	"encoding/json"
	"strings"

	"github.com/geekpro798/rivetly-backend/internal/catalog"
	"github.com/geekpro798/rivetly-backend/internal/rules/domain"
	"github.com/geekpro798/rivetly-backend/internal/rules/snapshot"
)

// ProcessOutput applies the per-platform export envelope to a rendered body
// and embeds the restorable snapshot where the platform supports it.
//
//   - Cursor/Trae write standalone rule files, so the token hides in a trailing
//     comment block after the semantic body.
//   - Windsurf gets the snapshot up top as a task summary to steer Flow mode.
//   - VS Code output only carries a session-context heading; Copilot rejects
//     oversized instruction files.
//   - Everything else is treated as chat-paste: a resume line, no token.
func ProcessOutput(base string, snap domain.Snapshot, locale string) domain.RenderedDocument {
	p := Resolve(snap.Platform)
	isZh := catalog.NormalizeLocale(locale) == catalog.LocaleZH

	var content string
	switch p.ID {
	case Cursor, Trae:
		heading := "### 🧠 Continuity"
		if isZh {
			heading = "### 🧠 连续记忆"
		}
		token := snapshot.EncodeSnapshot(snap)
		content = base + "\n\n" + heading + "\n<!-- " + snapshot.CommentStartMarker + "\n" +
			token + "\n" + snapshot.CommentEndMarker + " -->\n"

	case Windsurf:
		raw, _ := json.Marshal(snap)
		var b strings.Builder
		if isZh {
			b.WriteString("# 任务上下文\n- 模式: " + snap.Mode + "\n- 快照: ")
		} else {
			b.WriteString("# TASK CONTEXT\n- Mode: " + snap.Mode + "\n- Snapshot: ")
		}
		b.Write(raw)
		b.WriteString("\n\n")
		b.WriteString(base)
		content = b.String()

	case VSCode:
		content = "## 🧠 Session Context\n\n\n" + base

	default:
		if isZh {
			content = "[记忆恢复: " + snap.Mode + "]\n" + base
		} else {
			content = "[RESUME: " + snap.Mode + "]\n" + base
		}
	}

	return domain.RenderedDocument{Content: content, FileName: p.File}
}
