package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/availability", h.Availability)

	group := g.Group("/bookings")
	{
		group.POST("", h.Create)
		group.POST("/cancel", h.Cancel)
		group.GET("/mine", authMiddleware, h.Mine)
	}
}
