package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pageza/pantrychef/backend/internal/apperror"
	"github.com/pageza/pantrychef/backend/internal/matcher"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/store"
)

// Cooking time buckets accepted by RecipeFilter.TimeBucket.
const (
	TimeAll     = "all"
	TimeUnder15 = "under-15"
	Time15To30  = "15-30"
	Time30To60  = "30-60"
	TimeOver60  = "over-60"
)

// RecipeFilter narrows the catalog listing. Empty fields do not filter.
type RecipeFilter struct {
	Cuisine    string
	TimeBucket string
}

// Availability splits a recipe's ingredients against the pantry.
type Availability struct {
	RecipeID  uint     `json:"recipeId"`
	Available []string `json:"available"`
	Missing   []string `json:"missing"`
}

// ValidTimeBucket reports whether bucket is a known cooking time bucket.
func ValidTimeBucket(bucket string) bool {
	switch bucket {
	case "", TimeAll, TimeUnder15, Time15To30, Time30To60, TimeOver60:
		return true
	}
	return false
}

func inTimeBucket(minutes int, bucket string) bool {
	switch bucket {
	case TimeUnder15:
		return minutes < 15
	case Time15To30:
		return minutes >= 15 && minutes <= 30
	case Time30To60:
		return minutes > 30 && minutes <= 60
	case TimeOver60:
		return minutes > 60
	default:
		return true
	}
}

// RecipeService handles recipe-related operations
type RecipeService struct {
	store *store.Store
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(s *store.Store) *RecipeService {
	return &RecipeService{store: s}
}

func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error) {
	if !ValidTimeBucket(filter.TimeBucket) {
		return nil, apperror.Validation("unknown cooking time bucket").WithDetails([]apperror.FieldDetail{{
			Field:   "time",
			Rule:    "oneof",
			Message: "time must be one of all, under-15, 15-30, 30-60, over-60",
		}})
	}

	recipes, err := s.store.Recipes.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to list recipes")
	}

	cuisine := strings.TrimSpace(filter.Cuisine)
	if strings.EqualFold(cuisine, TimeAll) {
		cuisine = ""
	}
	if cuisine == "" && (filter.TimeBucket == "" || filter.TimeBucket == TimeAll) {
		return recipes, nil
	}

	filtered := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if cuisine != "" && !strings.EqualFold(r.Cuisine, cuisine) {
			continue
		}
		if !inTimeBucket(r.CookingTime, filter.TimeBucket) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (model.Recipe, error) {
	recipe, err := s.store.Recipes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Recipe{}, apperror.NotFound("recipe")
		}
		return model.Recipe{}, apperror.Wrap(apperror.CodeInternal, err, "failed to get recipe")
	}
	return recipe, nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, draft model.RecipeDraft) (model.Recipe, error) {
	recipe, err := s.store.Recipes.Create(ctx, draft)
	if err != nil {
		return model.Recipe{}, apperror.Wrap(apperror.CodeInternal, err, "failed to create recipe")
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe. Favorites and shopping items that
// reference it are left alone.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.store.Recipes.Delete(ctx, id); err != nil {
		return apperror.Wrap(apperror.CodeInternal, err, "failed to delete recipe")
	}
	return nil
}

func (s *RecipeService) SearchRecipes(ctx context.Context, ingredients []string) ([]model.Recipe, error) {
	recipes, err := s.store.Recipes.SearchByIngredients(ctx, ingredients)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to search recipes")
	}
	return recipes, nil
}

func (s *RecipeService) pantryNames(ctx context.Context) ([]string, error) {
	items, err := s.store.Pantry.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to list pantry")
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names, nil
}

// Availability partitions the recipe's ingredients against the pantry.
func (s *RecipeService) Availability(ctx context.Context, id uint) (*Availability, error) {
	recipe, missing, available, err := s.partition(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Availability{RecipeID: recipe.ID, Available: available, Missing: missing}, nil
}

// AddMissingToShopping puts every ingredient the pantry does not cover on
// the shopping list. Items already listed for the recipe are returned as is.
func (s *RecipeService) AddMissingToShopping(ctx context.Context, id uint) ([]model.ShoppingListItem, error) {
	recipe, missing, _, err := s.partition(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]model.ShoppingListItem, 0, len(missing))
	for _, ingredient := range missing {
		item, err := s.store.Shopping.Add(ctx, ingredient, recipe.ID, recipe.Name)
		if err != nil {
			return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to add shopping item")
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *RecipeService) partition(ctx context.Context, id uint) (recipe model.Recipe, missing, available []string, err error) {
	recipe, err = s.GetRecipe(ctx, id)
	if err != nil {
		return model.Recipe{}, nil, nil, err
	}
	pantry, err := s.pantryNames(ctx)
	if err != nil {
		return model.Recipe{}, nil, nil, err
	}
	available, missing = matcher.Partition(pantry, recipe.Ingredients)
	return recipe, missing, available, nil
}
