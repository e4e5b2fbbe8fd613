// Package api exposes the HTTP handlers under /api.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/service"
)

// Services are the dependencies of the handlers.
type Services struct {
	Recipes    service.IRecipeService
	Pantry     service.IPantryService
	Favorites  service.IFavoriteService
	Shopping   service.IShoppingService
	Generation service.IGenerationService
}

// Options tune route registration.
type Options struct {
	// GenerateMiddleware runs before the generate handler.
	GenerateMiddleware []gin.HandlerFunc
	HealthChecks       map[string]HealthCheck
}

// RegisterRoutes mounts every endpoint on router.
func RegisterRoutes(router *gin.Engine, svc Services, opts Options) {
	useJSONFieldNames()

	health := NewHealthHandler(opts.HealthChecks)
	router.GET("/health", health.Health)

	group := router.Group("/api")
	group.GET("/health", health.Health)

	NewGenerateHandler(svc.Generation).RegisterRoutes(group, opts.GenerateMiddleware...)
	NewRecipeHandler(svc.Recipes).RegisterRoutes(group)
	NewIngredientHandler(svc.Pantry).RegisterRoutes(group)
	NewFavoriteHandler(svc.Favorites).RegisterRoutes(group)
	NewShoppingHandler(svc.Shopping).RegisterRoutes(group)
}
