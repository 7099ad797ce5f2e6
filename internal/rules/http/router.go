package http

import "github.com/gin-gonic/gin"

// Register mounts the rules endpoints on a route group.
func Register(g *gin.RouterGroup, h *Handler) {
	g.GET("/catalog", h.getCatalog)
	g.POST("/render", h.render)
	g.POST("/export", h.exportRules)
	g.POST("/restore", h.restore)
	g.POST("/custom-constraints", h.createCustom)
	g.GET("/last-export", h.lastExport)
}
