// Package store persists recipes, pantry entries, favorites and shopping
// list items. Two implementations exist: an in-process MemoryStore and a
// GormStore backed by SQLite or Postgres.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// ErrNotFound is returned when a lookup by id finds nothing.
var ErrNotFound = errors.New("record not found")

type RecipeStore interface {
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id uint) (model.Recipe, error)
	Create(ctx context.Context, draft model.RecipeDraft) (model.Recipe, error)
	// SearchByIngredients returns recipes with at least one ingredient
	// covered by names. An empty names list returns the whole catalog.
	SearchByIngredients(ctx context.Context, names []string) ([]model.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

type PantryStore interface {
	List(ctx context.Context) ([]model.UserIngredient, error)
	// Add returns the existing entry when name is already present,
	// compared case-insensitively.
	Add(ctx context.Context, name string) (model.UserIngredient, error)
	Remove(ctx context.Context, id uint) error
}

type FavoriteStore interface {
	// List joins each favorite with its recipe. Favorites whose recipe is
	// gone are skipped.
	List(ctx context.Context) ([]model.FavoriteWithRecipe, error)
	Add(ctx context.Context, recipeID uint, savedAt time.Time) (model.FavoriteRecipe, error)
	Remove(ctx context.Context, recipeID uint) error
}

type ShoppingStore interface {
	List(ctx context.Context) ([]model.ShoppingListItem, error)
	// Add is idempotent on the lower-cased ingredient and recipe id.
	Add(ctx context.Context, ingredient string, recipeID uint, recipeName string) (model.ShoppingListItem, error)
	Remove(ctx context.Context, id uint) error
	SetPurchased(ctx context.Context, id uint, purchased bool) error
}

// Store bundles the four stores of one backend.
type Store struct {
	Recipes   RecipeStore
	Pantry    PantryStore
	Favorites FavoriteStore
	Shopping  ShoppingStore
}
