package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/http/middleware"
)

// NewRouter wires the API routes. ws may be nil when the WebSocket
// surface is not served.
func NewRouter(moveHandler *MoveHandler, ws gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	api := router.Group("/api")
	{
		api.GET("/health", Health)
		api.POST("/move", moveHandler.BestMove)
		api.POST("/legal", moveHandler.IsLegal)
		api.POST("/status", moveHandler.Status)
	}

	// WebSocket Route (origin checked by the upgrader)
	if ws != nil {
		router.GET("/ws", ws)
	}

	return router
}
