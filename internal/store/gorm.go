package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// NewGormStore returns stores backed by db. The schema must already be
// migrated.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Recipes:   &gormRecipes{db},
		Pantry:    &gormPantry{db},
		Favorites: &gormFavorites{db},
		Shopping:  &gormShopping{db},
	}
}

type gormRecipes struct{ db *gorm.DB }

func (s *gormRecipes) List(ctx context.Context) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (s *gormRecipes) Get(ctx context.Context, id uint) (model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Recipe{}, ErrNotFound
		}
		return model.Recipe{}, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

func (s *gormRecipes) Create(ctx context.Context, draft model.RecipeDraft) (model.Recipe, error) {
	recipe := draft.ToRecipe()
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return model.Recipe{}, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// SearchByIngredients filters in Go; substring containment in both
// directions has no useful index.
func (s *gormRecipes) SearchByIngredients(ctx context.Context, names []string) ([]model.Recipe, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByIngredients(all, names), nil
}

func (s *gormRecipes) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&model.Recipe{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

type gormPantry struct{ db *gorm.DB }

func (s *gormPantry) List(ctx context.Context) ([]model.UserIngredient, error) {
	items := []model.UserIngredient{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return items, nil
}

func (s *gormPantry) findByName(ctx context.Context, name string) (model.UserIngredient, bool, error) {
	var item model.UserIngredient
	err := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).Order("id ASC").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserIngredient{}, false, nil
	}
	if err != nil {
		return model.UserIngredient{}, false, fmt.Errorf("failed to look up ingredient: %w", err)
	}
	return item, true, nil
}

func (s *gormPantry) Add(ctx context.Context, name string) (model.UserIngredient, error) {
	if existing, ok, err := s.findByName(ctx, name); err != nil || ok {
		return existing, err
	}

	item := model.UserIngredient{Name: name}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		// A concurrent insert may have won the unique index.
		if existing, ok, lookupErr := s.findByName(ctx, name); lookupErr == nil && ok {
			return existing, nil
		}
		return model.UserIngredient{}, fmt.Errorf("failed to add ingredient: %w", err)
	}
	return item, nil
}

func (s *gormPantry) Remove(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&model.UserIngredient{}, id).Error; err != nil {
		return fmt.Errorf("failed to remove ingredient: %w", err)
	}
	return nil
}

type gormFavorites struct{ db *gorm.DB }

func (s *gormFavorites) List(ctx context.Context) ([]model.FavoriteWithRecipe, error) {
	db := s.db.WithContext(ctx)

	var favorites []model.FavoriteRecipe
	if err := db.Order("id ASC").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if len(favorites) == 0 {
		return []model.FavoriteWithRecipe{}, nil
	}

	ids := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.RecipeID)
	}

	recipes := []model.Recipe{}
	if err := db.Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load favorite recipes: %w", err)
	}
	byID := make(map[uint]model.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	log := zerolog.Ctx(ctx)
	result := make([]model.FavoriteWithRecipe, 0, len(favorites))
	for _, f := range favorites {
		recipe, ok := byID[f.RecipeID]
		if !ok {
			log.Warn().Uint("favorite_id", f.ID).Uint("recipe_id", f.RecipeID).Msg("skipping favorite of missing recipe")
			continue
		}
		result = append(result, model.FavoriteWithRecipe{FavoriteRecipe: f, Recipe: recipe})
	}
	return result, nil
}

func (s *gormFavorites) findByRecipe(ctx context.Context, recipeID uint) (model.FavoriteRecipe, bool, error) {
	var fav model.FavoriteRecipe
	err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FavoriteRecipe{}, false, nil
	}
	if err != nil {
		return model.FavoriteRecipe{}, false, fmt.Errorf("failed to look up favorite: %w", err)
	}
	return fav, true, nil
}

func (s *gormFavorites) Add(ctx context.Context, recipeID uint, savedAt time.Time) (model.FavoriteRecipe, error) {
	if existing, ok, err := s.findByRecipe(ctx, recipeID); err != nil || ok {
		return existing, err
	}

	fav := model.FavoriteRecipe{RecipeID: recipeID, SavedAt: savedAt}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if existing, ok, lookupErr := s.findByRecipe(ctx, recipeID); lookupErr == nil && ok {
			return existing, nil
		}
		return model.FavoriteRecipe{}, fmt.Errorf("failed to add favorite: %w", err)
	}
	return fav, nil
}

func (s *gormFavorites) Remove(ctx context.Context, recipeID uint) error {
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&model.FavoriteRecipe{}).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

type gormShopping struct{ db *gorm.DB }

func (s *gormShopping) List(ctx context.Context) ([]model.ShoppingListItem, error) {
	items := []model.ShoppingListItem{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	return items, nil
}

func (s *gormShopping) find(ctx context.Context, ingredient string, recipeID uint) (model.ShoppingListItem, bool, error) {
	var item model.ShoppingListItem
	err := s.db.WithContext(ctx).
		Where("LOWER(ingredient) = LOWER(?) AND recipe_id = ?", ingredient, recipeID).
		Order("id ASC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShoppingListItem{}, false, nil
	}
	if err != nil {
		return model.ShoppingListItem{}, false, fmt.Errorf("failed to look up shopping item: %w", err)
	}
	return item, true, nil
}

func (s *gormShopping) Add(ctx context.Context, ingredient string, recipeID uint, recipeName string) (model.ShoppingListItem, error) {
	if existing, ok, err := s.find(ctx, ingredient, recipeID); err != nil || ok {
		return existing, err
	}

	item := model.ShoppingListItem{Ingredient: ingredient, RecipeID: recipeID, RecipeName: recipeName}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		if existing, ok, lookupErr := s.find(ctx, ingredient, recipeID); lookupErr == nil && ok {
			return existing, nil
		}
		return model.ShoppingListItem{}, fmt.Errorf("failed to add shopping item: %w", err)
	}
	return item, nil
}

func (s *gormShopping) Remove(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&model.ShoppingListItem{}, id).Error; err != nil {
		return fmt.Errorf("failed to remove shopping item: %w", err)
	}
	return nil
}

func (s *gormShopping) SetPurchased(ctx context.Context, id uint, purchased bool) error {
	err := s.db.WithContext(ctx).
		Model(&model.ShoppingListItem{}).
		Where("id = ?", id).
		Update("purchased", purchased).Error
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	return nil
}
