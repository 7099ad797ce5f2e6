package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/geekpro798/rivetly-backend/internal/auth"
	"github.com/geekpro798/rivetly-backend/internal/catalog"
	"github.com/geekpro798/rivetly-backend/internal/rules/domain"
	"github.com/geekpro798/rivetly-backend/internal/rules/export"
	"github.com/geekpro798/rivetly-backend/internal/rules/platform"
)

type Handler struct {
	catalog *catalog.Catalog
	export  *export.Service
}

func NewHandler(cat *catalog.Catalog, exp *export.Service) *Handler {
	return &Handler{catalog: cat, export: exp}
}

func (h *Handler) getCatalog(c *gin.Context) {
	locale := catalog.NormalizeLocale(c.Query("locale"))

	constraints := make([]constraintResp, 0, len(h.catalog.Constraints()))
	for _, con := range h.catalog.Constraints() {
		constraints = append(constraints, constraintResp{
			ID:             con.ID,
			Label:          con.Label(locale),
			Prompt:         con.Prompt,
			NegativePrompt: con.NegativePrompt,
		})
	}

	modes := make([]modeResp, 0, len(h.catalog.Modes()))
	for _, m := range h.catalog.Modes() {
		modes = append(modes, modeResp{
			ID:          m.ID,
			Label:       m.Label(locale),
			Recommended: m.RecommendedConstraintIDs,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"modes":       modes,
		"constraints": constraints,
		"platforms":   platform.All(),
	})
}

func (h *Handler) render(c *gin.Context) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	content := h.export.Preview(req.toSelection())
	c.JSON(http.StatusOK, gin.H{"ok": true, "content": content})
}

// exportRules writes a platform-enveloped rule file. The platform id must name
// a real target; a misspelled id silently falling back to the generic envelope
// would drop the snapshot the client expects to restore from later.
func (h *Handler) exportRules(c *gin.Context) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Platform != "" && !platform.Known(req.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrUnknownPlatform.Error()})
		return
	}

	userID := auth.UserFirebaseUID(c)
	doc := h.export.Export(c.Request.Context(), userID, req.toSelection())
	c.JSON(http.StatusOK, gin.H{"ok": true, "content": doc.Content, "file_name": doc.FileName})
}

// restore scans uploaded rule-file text for an embedded snapshot. A document
// without one is not an error; found=false tells the caller to use defaults.
func (h *Handler) restore(c *gin.Context) {
	var req restoreReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	snap, found := h.export.Restore(req.Content)
	if !found {
		c.JSON(http.StatusOK, gin.H{"ok": true, "found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "found": true, "snapshot": snap})
}

func (h *Handler) createCustom(c *gin.Context) {
	var req newCustomReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	rule := h.export.NewCustomConstraint(strings.TrimSpace(req.Label), req.Prompt)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "constraint": rule})
}

func (h *Handler) lastExport(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	rec, found, err := h.export.LastExport(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"ok": true, "found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "found": true, "last_export": rec})
}
