package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/geekpro798/rivetly-backend/internal/catalog"
	"github.com/geekpro798/rivetly-backend/internal/rules/domain"
)

// Renderer turns a Selection into the final instruction document. Pure apart
// from the clock, which feeds the date line only.
type Renderer struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func New(cat *catalog.Catalog) *Renderer {
	return &Renderer{catalog: cat, now: time.Now}
}

// NewWithClock lets tests pin the date line.
func NewWithClock(cat *catalog.Catalog, now func() time.Time) *Renderer {
	return &Renderer{catalog: cat, now: now}
}

// Render produces the platform-formatted instruction document for a selection.
// Unknown constraint ids are skipped silently; an empty selection still yields
// a valid document with an empty constraints block.
func (r *Renderer) Render(sel domain.Selection) string {
	mode := r.catalog.Mode(sel.ModeID)
	locale := catalog.NormalizeLocale(sel.Locale)
	date := r.now().Format("2006-01-02")

	var desc string
	if locale == catalog.LocaleZH {
		desc = fmt.Sprintf("模式: %s | 规则: %d项 | 日期: %s", mode.Label(locale), len(sel.SelectedIDs), date)
	} else {
		desc = fmt.Sprintf("Mode: %s | Rules: %d | Date: %s", mode.Label(locale), len(sel.SelectedIDs), date)
	}

	var b strings.Builder

	// Role and task mode carry the strongest semantic weight, so they lead.
	b.WriteString("# ROLE: Full-stack Senior Architect (Efficiency & Quality Focus) [!] \n")
	b.WriteString("## PRIMARY GOAL: " + strings.ToUpper(sel.ModeID) + " MODE ACTIVE \n\n")

	b.WriteString("<rules>\n")
	b.WriteString("- [CRITICAL] Prioritize clean architecture and DRY principles.\n")
	b.WriteString("- Always ensure new features include error handling and basic logging.\n")
	b.WriteString("</rules>\n\n")

	b.WriteString("<constraints>\n")

	// Catalog constraints emit in catalog declaration order regardless of the
	// order ids were toggled in.
	for _, con := range r.catalog.Constraints() {
		if !sel.HasSelected(con.ID) {
			continue
		}
		negative := ""
		if con.NegativePrompt != "" {
			negative = " [NEGATIVE: " + con.NegativePrompt + "]"
		}
		fmt.Fprintf(&b, "- %s: %s%s\n", con.Label(locale), con.Prompt, negative)
	}

	for _, rule := range sel.CustomConstraints {
		if sel.HasSelected(rule.ID) {
			b.WriteString("- Custom Rule: " + wrapUserPrompt(rule.Prompt) + "\n")
		}
	}

	if sel.HasSelected(catalog.ContinuityMemoryID) {
		b.WriteString("\n### 🤖 AUTOMATED BEHAVIORS\n<automation>\n")
		b.WriteString("  1. **On Startup**: Check for 'CONTEXT.md' or R2 snapshot. If found, ask: \"Detected Continuity Memory. Sync latest progress from R2?\"\n")
		b.WriteString("  2. **On Task Completion**: When user says \"done\" or \"thanks\", suggest: \"Task complete. Run 'Sync Progress' to save snapshot to R2?\"\n")
		b.WriteString("</automation>\n")
	}

	b.WriteString("</constraints>\n")
	body := b.String()

	if strings.EqualFold(sel.PlatformID, "windsurf") {
		return windsurfEnvelope(desc, body)
	}

	return "# Rivetly AI Config\n# " + desc + "\n\n" + body
}

// windsurfEnvelope wraps the body in Windsurf's structured memories block,
// indenting every body line under the instruction_set tag.
func windsurfEnvelope(desc, body string) string {
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return "# Windsurf AI Rules\n# " + desc + "\n\n<memories>\n  <instruction_set>\n" +
		strings.Join(lines, "\n") + "\n  </instruction_set>\n</memories>"
}
