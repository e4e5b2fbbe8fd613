package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/service"
)

type ShoppingHandler struct {
	shopping service.IShoppingService
}

func NewShoppingHandler(shopping service.IShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping}
}

type addShoppingItemRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
	RecipeID   uint   `json:"recipeId" binding:"required"`
	RecipeName string `json:"recipeName" binding:"required"`
}

type updateShoppingItemRequest struct {
	Purchased *bool `json:"purchased" binding:"required"`
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	shopping := router.Group("/shopping")
	{
		shopping.GET("", h.ListItems)
		shopping.POST("", h.AddItem)
		shopping.DELETE("/:id", h.RemoveItem)
		shopping.PATCH("/:id", h.UpdateItem)
	}
}

func (h *ShoppingHandler) ListItems(c *gin.Context) {
	items, err := h.shopping.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ShoppingHandler) AddItem(c *gin.Context) {
	var req addShoppingItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.shopping.AddItem(c.Request.Context(), req.Ingredient, req.RecipeID, req.RecipeName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ShoppingHandler) RemoveItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.shopping.RemoveItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateItem sets the purchased flag. Unknown ids are ignored.
func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req updateShoppingItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.shopping.SetPurchased(c.Request.Context(), id, *req.Purchased); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
