package server

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the validation handler into a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.HandleHealth)

	api := r.Group("/api/v1")
	{
		api.POST("/validate", h.HandleValidate)
	}
	return r
}
