package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/service"
)

type GenerateHandler struct {
	generation service.IGenerationService
}

func NewGenerateHandler(generation service.IGenerationService) *GenerateHandler {
	return &GenerateHandler{generation: generation}
}

type generateRequest struct {
	Ingredients         []string         `json:"ingredients" binding:"required,min=1,dive,required"`
	Cuisine             string           `json:"cuisine"`
	Difficulty          model.Difficulty `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	MaxCookingTime      int              `json:"maxCookingTime" binding:"min=0"`
	Servings            int              `json:"servings" binding:"min=0"`
	DietaryRestrictions []string         `json:"dietaryRestrictions"`
	Count               *int             `json:"count" binding:"omitempty,min=1,max=5"`
}

// RegisterRoutes mounts the generate endpoint behind the given middleware,
// typically the rate limiter.
func (h *GenerateHandler) RegisterRoutes(router *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, middleware...), h.Generate)
	router.POST("/recipes/generate", handlers...)
}

// Generate asks the model for count recipes and returns the ones that were
// stored. Fewer recipes than requested, including none, is still a success.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	count := service.DefaultGenerateCount
	if req.Count != nil {
		count = *req.Count
	}

	recipes, err := h.generation.Generate(c.Request.Context(), service.GenerateParams{
		Ingredients:         req.Ingredients,
		Cuisine:             req.Cuisine,
		Difficulty:          req.Difficulty,
		MaxCookingTime:      req.MaxCookingTime,
		Servings:            req.Servings,
		DietaryRestrictions: req.DietaryRestrictions,
	}, count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}
