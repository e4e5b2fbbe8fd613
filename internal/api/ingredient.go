package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/service"
)

type IngredientHandler struct {
	pantry service.IPantryService
}

func NewIngredientHandler(pantry service.IPantryService) *IngredientHandler {
	return &IngredientHandler{pantry: pantry}
}

type addIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.POST("", h.AddIngredient)
		ingredients.DELETE("/:id", h.RemoveIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	items, err := h.pantry.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *IngredientHandler) AddIngredient(c *gin.Context) {
	var req addIngredientRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.pantry.AddIngredient(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *IngredientHandler) RemoveIngredient(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.pantry.RemoveIngredient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
