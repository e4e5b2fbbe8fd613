package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pageza/pantrychef/backend/internal/matcher"
	"github.com/pageza/pantrychef/backend/internal/model"
)

// memoryDB is the shared state behind the in-memory stores. One lock
// guards all four tables so favorites can join recipes consistently.
type memoryDB struct {
	mu sync.RWMutex

	recipes     map[uint]model.Recipe
	ingredients map[uint]model.UserIngredient
	favorites   map[uint]model.FavoriteRecipe
	shopping    map[uint]model.ShoppingListItem

	nextRecipeID     uint
	nextIngredientID uint
	nextFavoriteID   uint
	nextShoppingID   uint
}

// NewMemoryStore returns empty stores that live in process memory.
func NewMemoryStore() *Store {
	db := &memoryDB{
		recipes:          make(map[uint]model.Recipe),
		ingredients:      make(map[uint]model.UserIngredient),
		favorites:        make(map[uint]model.FavoriteRecipe),
		shopping:         make(map[uint]model.ShoppingListItem),
		nextRecipeID:     1,
		nextIngredientID: 1,
		nextFavoriteID:   1,
		nextShoppingID:   1,
	}
	return &Store{
		Recipes:   &memoryRecipes{db},
		Pantry:    &memoryPantry{db},
		Favorites: &memoryFavorites{db},
		Shopping:  &memoryShopping{db},
	}
}

func cloneRecipe(r model.Recipe) model.Recipe {
	r.Ingredients = append(model.JSONBStringArray{}, r.Ingredients...)
	r.Instructions = append(model.JSONBStringArray{}, r.Instructions...)
	return r
}

func sortedKeys[V any](m map[uint]V) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type memoryRecipes struct{ db *memoryDB }

func (s *memoryRecipes) List(ctx context.Context) ([]model.Recipe, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	recipes := make([]model.Recipe, 0, len(s.db.recipes))
	for _, id := range sortedKeys(s.db.recipes) {
		recipes = append(recipes, cloneRecipe(s.db.recipes[id]))
	}
	return recipes, nil
}

func (s *memoryRecipes) Get(ctx context.Context, id uint) (model.Recipe, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	r, ok := s.db.recipes[id]
	if !ok {
		return model.Recipe{}, ErrNotFound
	}
	return cloneRecipe(r), nil
}

func (s *memoryRecipes) Create(ctx context.Context, draft model.RecipeDraft) (model.Recipe, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r := draft.ToRecipe()
	r.ID = s.db.nextRecipeID
	s.db.nextRecipeID++
	s.db.recipes[r.ID] = r
	return cloneRecipe(r), nil
}

func (s *memoryRecipes) SearchByIngredients(ctx context.Context, names []string) ([]model.Recipe, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByIngredients(all, names), nil
}

func (s *memoryRecipes) Delete(ctx context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	delete(s.db.recipes, id)
	return nil
}

// filterByIngredients keeps recipes that match names. Without any usable
// name the catalog is returned unfiltered.
func filterByIngredients(recipes []model.Recipe, names []string) []model.Recipe {
	if !matcher.HasEntries(names) {
		return recipes
	}
	matched := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matcher.Matches(names, r.Ingredients) {
			matched = append(matched, r)
		}
	}
	return matched
}

type memoryPantry struct{ db *memoryDB }

func (s *memoryPantry) List(ctx context.Context) ([]model.UserIngredient, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	items := make([]model.UserIngredient, 0, len(s.db.ingredients))
	for _, id := range sortedKeys(s.db.ingredients) {
		items = append(items, s.db.ingredients[id])
	}
	return items, nil
}

func (s *memoryPantry) Add(ctx context.Context, name string) (model.UserIngredient, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.ingredients {
		if strings.EqualFold(existing.Name, name) {
			return existing, nil
		}
	}

	item := model.UserIngredient{ID: s.db.nextIngredientID, Name: name}
	s.db.nextIngredientID++
	s.db.ingredients[item.ID] = item
	return item, nil
}

func (s *memoryPantry) Remove(ctx context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	delete(s.db.ingredients, id)
	return nil
}

type memoryFavorites struct{ db *memoryDB }

func (s *memoryFavorites) List(ctx context.Context) ([]model.FavoriteWithRecipe, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	log := zerolog.Ctx(ctx)
	favorites := make([]model.FavoriteWithRecipe, 0, len(s.db.favorites))
	for _, id := range sortedKeys(s.db.favorites) {
		fav := s.db.favorites[id]
		recipe, ok := s.db.recipes[fav.RecipeID]
		if !ok {
			log.Warn().Uint("favorite_id", fav.ID).Uint("recipe_id", fav.RecipeID).Msg("skipping favorite of missing recipe")
			continue
		}
		favorites = append(favorites, model.FavoriteWithRecipe{FavoriteRecipe: fav, Recipe: cloneRecipe(recipe)})
	}
	return favorites, nil
}

func (s *memoryFavorites) Add(ctx context.Context, recipeID uint, savedAt time.Time) (model.FavoriteRecipe, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.favorites {
		if existing.RecipeID == recipeID {
			return existing, nil
		}
	}

	fav := model.FavoriteRecipe{ID: s.db.nextFavoriteID, RecipeID: recipeID, SavedAt: savedAt}
	s.db.nextFavoriteID++
	s.db.favorites[fav.ID] = fav
	return fav, nil
}

func (s *memoryFavorites) Remove(ctx context.Context, recipeID uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for id, fav := range s.db.favorites {
		if fav.RecipeID == recipeID {
			delete(s.db.favorites, id)
		}
	}
	return nil
}

type memoryShopping struct{ db *memoryDB }

func (s *memoryShopping) List(ctx context.Context) ([]model.ShoppingListItem, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	items := make([]model.ShoppingListItem, 0, len(s.db.shopping))
	for _, id := range sortedKeys(s.db.shopping) {
		items = append(items, s.db.shopping[id])
	}
	return items, nil
}

func (s *memoryShopping) Add(ctx context.Context, ingredient string, recipeID uint, recipeName string) (model.ShoppingListItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.shopping {
		if existing.RecipeID == recipeID && strings.EqualFold(existing.Ingredient, ingredient) {
			return existing, nil
		}
	}

	item := model.ShoppingListItem{
		ID:         s.db.nextShoppingID,
		Ingredient: ingredient,
		RecipeID:   recipeID,
		RecipeName: recipeName,
	}
	s.db.nextShoppingID++
	s.db.shopping[item.ID] = item
	return item, nil
}

func (s *memoryShopping) Remove(ctx context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	delete(s.db.shopping, id)
	return nil
}

func (s *memoryShopping) SetPurchased(ctx context.Context, id uint, purchased bool) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	item, ok := s.db.shopping[id]
	if !ok {
		return nil
	}
	item.Purchased = purchased
	s.db.shopping[item.ID] = item
	return nil
}
