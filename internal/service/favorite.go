package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pageza/pantrychef/backend/internal/apperror"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/store"
)

// FavoriteService manages saved recipes.
type FavoriteService struct {
	recipes   *RecipeService
	favorites store.FavoriteStore
	now       func() time.Time
}

func NewFavoriteService(recipes *RecipeService, favorites store.FavoriteStore) *FavoriteService {
	return &FavoriteService{recipes: recipes, favorites: favorites, now: time.Now}
}

func (s *FavoriteService) ListFavorites(ctx context.Context) ([]model.FavoriteWithRecipe, error) {
	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to list favorites")
	}
	return favorites, nil
}

// AddFavorite saves recipeID. savedAt defaults to the current time. The
// recipe must exist; saving it again returns the original favorite.
func (s *FavoriteService) AddFavorite(ctx context.Context, recipeID uint, savedAt *time.Time) (model.FavoriteRecipe, error) {
	if _, err := s.recipes.GetRecipe(ctx, recipeID); err != nil {
		return model.FavoriteRecipe{}, err
	}

	at := s.now().UTC()
	if savedAt != nil && !savedAt.IsZero() {
		at = savedAt.UTC()
	}

	fav, err := s.favorites.Add(ctx, recipeID, at)
	if err != nil {
		return model.FavoriteRecipe{}, apperror.Wrap(apperror.CodeInternal, err, "failed to add favorite")
	}
	zerolog.Ctx(ctx).Debug().Uint("recipe_id", recipeID).Msg("recipe favorited")
	return fav, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, recipeID uint) error {
	if err := s.favorites.Remove(ctx, recipeID); err != nil {
		return apperror.Wrap(apperror.CodeInternal, err, "failed to remove favorite")
	}
	return nil
}
