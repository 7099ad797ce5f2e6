package http

import "github.com/gin-gonic/gin"

// Register mounts the sync endpoints on a route group.
func Register(g *gin.RouterGroup, h *Handler) {
	g.PUT("/contexts/:project", h.sync)
	g.GET("/contexts/:project", h.load)
	g.GET("/staged", h.listStaged)
	g.DELETE("/staged/:project", h.clearStaged)
}
