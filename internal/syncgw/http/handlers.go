package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/geekpro798/rivetly-backend/internal/auth"
	"github.com/geekpro798/rivetly-backend/internal/session"
	"github.com/geekpro798/rivetly-backend/internal/syncgw/domain"
	"github.com/geekpro798/rivetly-backend/internal/syncgw/service"
)

type Handler struct {
	gateway *service.Gateway
	staged  *session.Repo
}

func NewHandler(gw *service.Gateway, staged *session.Repo) *Handler {
	return &Handler{gateway: gw, staged: staged}
}

// sync upserts the project context, offloading heavy payloads first. The
// progress stages crossed during the call are echoed back so the client can
// show what happened.
func (h *Handler) sync(c *gin.Context) {
	projectName := strings.TrimSpace(c.Param("project"))
	if projectName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "project name required"})
		return
	}

	var sc domain.SyncContext
	if err := c.ShouldBindJSON(&sc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserFirebaseUID(c)
	stages := make([]string, 0, 2)

	err := h.gateway.SmartSync(c.Request.Context(), userID, projectName, sc, func(stage string) {
		stages = append(stages, stage)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAuthSessionMissing) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Auth session missing"})
			return
		}
		// Transport failure: the payload was staged locally for retry.
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error(), "staged": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "stages": stages})
}

func (h *Handler) load(c *gin.Context) {
	projectName := strings.TrimSpace(c.Param("project"))
	userID := auth.UserFirebaseUID(c)

	sc, err := h.gateway.Load(c.Request.Context(), userID, projectName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthSessionMissing):
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Auth session missing"})
		case errors.Is(err, domain.ErrContextNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "context not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "context": sc})
}

func (h *Handler) listStaged(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	items, err := h.staged.ListStaged(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "staged": items})
}

func (h *Handler) clearStaged(c *gin.Context) {
	projectName := strings.TrimSpace(c.Param("project"))
	userID := auth.UserFirebaseUID(c)

	if err := h.staged.ClearStaged(c.Request.Context(), userID, projectName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
