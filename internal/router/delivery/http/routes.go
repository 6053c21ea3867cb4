package http

import (
	"vision-gateway/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The routed
// endpoints sit behind rate limiting because every hit can reach a hosted
// model.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	queries := rg.Group("/queries")
	{
		queries.POST("", mw.Auth(), mw.RateLimit(), h.Query)
		queries.POST("/manual", mw.Auth(), mw.RateLimit(), h.Manual)
	}

	results := rg.Group("/results")
	{
		results.POST("/:id/score", mw.Auth(), mw.RateLimit(), h.Score)
	}

	rg.GET("/models", h.Models)
}
