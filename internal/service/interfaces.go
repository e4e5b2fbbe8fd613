package service

import (
	"context"
	"time"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (model.Recipe, error)
	CreateRecipe(ctx context.Context, draft model.RecipeDraft) (model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uint) error
	SearchRecipes(ctx context.Context, ingredients []string) ([]model.Recipe, error)
	Availability(ctx context.Context, id uint) (*Availability, error)
	AddMissingToShopping(ctx context.Context, id uint) ([]model.ShoppingListItem, error)
}

// IPantryService defines the interface for pantry operations
type IPantryService interface {
	ListIngredients(ctx context.Context) ([]model.UserIngredient, error)
	AddIngredient(ctx context.Context, name string) (model.UserIngredient, error)
	RemoveIngredient(ctx context.Context, id uint) error
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	ListFavorites(ctx context.Context) ([]model.FavoriteWithRecipe, error)
	AddFavorite(ctx context.Context, recipeID uint, savedAt *time.Time) (model.FavoriteRecipe, error)
	RemoveFavorite(ctx context.Context, recipeID uint) error
}

// IShoppingService defines the interface for shopping list operations
type IShoppingService interface {
	ListItems(ctx context.Context) ([]model.ShoppingListItem, error)
	AddItem(ctx context.Context, ingredient string, recipeID uint, recipeName string) (model.ShoppingListItem, error)
	RemoveItem(ctx context.Context, id uint) error
	SetPurchased(ctx context.Context, id uint, purchased bool) error
}

// IGenerationService defines the interface for AI recipe generation
type IGenerationService interface {
	Generate(ctx context.Context, params GenerateParams, count int) ([]model.Recipe, error)
}
