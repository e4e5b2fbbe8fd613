package service

import (
	"context"
	"strings"

	"github.com/pageza/pantrychef/backend/internal/apperror"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/store"
)

// ShoppingService manages the shopping list.
type ShoppingService struct {
	shopping store.ShoppingStore
}

func NewShoppingService(shopping store.ShoppingStore) *ShoppingService {
	return &ShoppingService{shopping: shopping}
}

func (s *ShoppingService) ListItems(ctx context.Context) ([]model.ShoppingListItem, error) {
	items, err := s.shopping.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to list shopping items")
	}
	return items, nil
}

// AddItem adds an ingredient for a recipe. The recipe is not looked up;
// recipeName is stored as given so the item outlives the recipe.
func (s *ShoppingService) AddItem(ctx context.Context, ingredient string, recipeID uint, recipeName string) (model.ShoppingListItem, error) {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return model.ShoppingListItem{}, apperror.Validation("ingredient is required").WithDetails([]apperror.FieldDetail{{
			Field:   "ingredient",
			Rule:    "required",
			Message: "ingredient is required",
		}})
	}

	item, err := s.shopping.Add(ctx, ingredient, recipeID, strings.TrimSpace(recipeName))
	if err != nil {
		return model.ShoppingListItem{}, apperror.Wrap(apperror.CodeInternal, err, "failed to add shopping item")
	}
	return item, nil
}

func (s *ShoppingService) RemoveItem(ctx context.Context, id uint) error {
	if err := s.shopping.Remove(ctx, id); err != nil {
		return apperror.Wrap(apperror.CodeInternal, err, "failed to remove shopping item")
	}
	return nil
}

func (s *ShoppingService) SetPurchased(ctx context.Context, id uint, purchased bool) error {
	if err := s.shopping.SetPurchased(ctx, id, purchased); err != nil {
		return apperror.Wrap(apperror.CodeInternal, err, "failed to update shopping item")
	}
	return nil
}
