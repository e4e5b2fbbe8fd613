package service

import (
	"context"
	"strings"

	"github.com/pageza/pantrychef/backend/internal/apperror"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/store"
)

// PantryService manages the ingredients the user owns.
type PantryService struct {
	pantry store.PantryStore
}

func NewPantryService(pantry store.PantryStore) *PantryService {
	return &PantryService{pantry: pantry}
}

func (s *PantryService) ListIngredients(ctx context.Context) ([]model.UserIngredient, error) {
	items, err := s.pantry.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to list ingredients")
	}
	return items, nil
}

// AddIngredient stores a trimmed name. Adding a name that differs only in
// case returns the entry already stored.
func (s *PantryService) AddIngredient(ctx context.Context, name string) (model.UserIngredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.UserIngredient{}, apperror.Validation("ingredient name is required").WithDetails([]apperror.FieldDetail{{
			Field:   "name",
			Rule:    "required",
			Message: "name is required",
		}})
	}

	item, err := s.pantry.Add(ctx, name)
	if err != nil {
		return model.UserIngredient{}, apperror.Wrap(apperror.CodeInternal, err, "failed to add ingredient")
	}
	return item, nil
}

func (s *PantryService) RemoveIngredient(ctx context.Context, id uint) error {
	if err := s.pantry.Remove(ctx, id); err != nil {
		return apperror.Wrap(apperror.CodeInternal, err, "failed to remove ingredient")
	}
	return nil
}
