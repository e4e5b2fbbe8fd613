package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/internal/apperror"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/store"
)

func seededServices(t *testing.T) (*store.Store, *RecipeService) {
	t.Helper()
	s := store.NewMemoryStore()
	_, err := store.Seed(context.Background(), s.Recipes)
	require.NoError(t, err)
	return s, NewRecipeService(s)
}

func TestListRecipesFilters(t *testing.T) {
	_, svc := seededServices(t)
	ctx := context.Background()

	all, err := svc.ListRecipes(ctx, RecipeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	italian, err := svc.ListRecipes(ctx, RecipeFilter{Cuisine: "italian"})
	require.NoError(t, err)
	require.Len(t, italian, 1)
	assert.Equal(t, "Pasta Primavera", italian[0].Name)

	// Sample cooking times are 35, 20 and 25 minutes.
	quick, err := svc.ListRecipes(ctx, RecipeFilter{TimeBucket: Time15To30})
	require.NoError(t, err)
	assert.Len(t, quick, 2)

	longer, err := svc.ListRecipes(ctx, RecipeFilter{TimeBucket: Time30To60})
	require.NoError(t, err)
	require.Len(t, longer, 1)
	assert.Equal(t, "Chicken Tikka Masala", longer[0].Name)

	none, err := svc.ListRecipes(ctx, RecipeFilter{TimeBucket: TimeUnder15, Cuisine: "all"})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.ListRecipes(ctx, RecipeFilter{TimeBucket: "forever"})
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestInTimeBucketBoundaries(t *testing.T) {
	cases := []struct {
		minutes int
		bucket  string
		want    bool
	}{
		{14, TimeUnder15, true},
		{15, TimeUnder15, false},
		{15, Time15To30, true},
		{30, Time15To30, true},
		{30, Time30To60, false},
		{31, Time30To60, true},
		{60, Time30To60, true},
		{60, TimeOver60, false},
		{61, TimeOver60, true},
		{500, TimeAll, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inTimeBucket(tc.minutes, tc.bucket), "%d in %s", tc.minutes, tc.bucket)
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	_, svc := seededServices(t)
	_, err := svc.GetRecipe(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestAvailabilityAndShopping(t *testing.T) {
	s, svc := seededServices(t)
	ctx := context.Background()

	pantry := NewPantryService(s.Pantry)
	for _, name := range []string{"Chicken", "tomatoes", "basil"} {
		_, err := pantry.AddIngredient(ctx, name)
		require.NoError(t, err)
	}

	avail, err := svc.Availability(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), avail.RecipeID)
	assert.Equal(t, []string{"chicken breast", "tomatoes"}, avail.Available)
	assert.Equal(t, []string{"garlic", "coconut milk", "garam masala", "ground cumin", "onions", "ginger"}, avail.Missing)

	items, err := svc.AddMissingToShopping(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, "Chicken Tikka Masala", items[0].RecipeName)

	again, err := svc.AddMissingToShopping(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, items, again)

	listed, err := s.Shopping.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 6)

	_, err = svc.AddMissingToShopping(ctx, 99)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestSearchRecipes(t *testing.T) {
	_, svc := seededServices(t)
	ctx := context.Background()

	found, err := svc.SearchRecipes(ctx, []string{"pasta"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Pasta Primavera", found[0].Name)

	all, err := svc.SearchRecipes(ctx, []string{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateAndDeleteRecipe(t *testing.T) {
	s, svc := seededServices(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, *validDraft("Soup"))
	require.NoError(t, err)
	assert.Equal(t, uint(4), created.ID)

	favorites := NewFavoriteService(svc, s.Favorites)
	_, err = favorites.AddFavorite(ctx, created.ID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, created.ID))
	_, err = svc.GetRecipe(ctx, created.ID)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))

	listed, err := favorites.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestPantryService(t *testing.T) {
	s := store.NewMemoryStore()
	svc := NewPantryService(s.Pantry)
	ctx := context.Background()

	rice, err := svc.AddIngredient(ctx, "  Rice ")
	require.NoError(t, err)
	assert.Equal(t, "Rice", rice.Name)

	dup, err := svc.AddIngredient(ctx, "rice")
	require.NoError(t, err)
	assert.Equal(t, rice.ID, dup.ID)
	assert.Equal(t, "Rice", dup.Name)

	_, err = svc.AddIngredient(ctx, "   ")
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))

	require.NoError(t, svc.RemoveIngredient(ctx, rice.ID))
	items, err := svc.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFavoriteService(t *testing.T) {
	s, recipes := seededServices(t)
	svc := NewFavoriteService(recipes, s.Favorites)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	fav, err := svc.AddFavorite(ctx, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, fixed, fav.SavedAt)

	explicit := time.Date(2024, 12, 25, 8, 0, 0, 0, time.UTC)
	again, err := svc.AddFavorite(ctx, 2, &explicit)
	require.NoError(t, err)
	assert.Equal(t, fav, again)

	_, err = svc.AddFavorite(ctx, 404, nil)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))

	listed, err := svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Pasta Primavera", listed[0].Recipe.Name)

	require.NoError(t, svc.RemoveFavorite(ctx, 2))
	require.NoError(t, svc.RemoveFavorite(ctx, 2))
}

func TestShoppingService(t *testing.T) {
	s := store.NewMemoryStore()
	svc := NewShoppingService(s.Shopping)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "Flour", 7, "Bread")
	require.NoError(t, err)
	dup, err := svc.AddItem(ctx, "flour", 7, "Bread")
	require.NoError(t, err)
	assert.Equal(t, item.ID, dup.ID)

	_, err = svc.AddItem(ctx, "", 7, "Bread")
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))

	require.NoError(t, svc.SetPurchased(ctx, item.ID, true))
	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Purchased)

	require.NoError(t, svc.RemoveItem(ctx, item.ID))
	items, err = svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ShoppingListItem{}, items)
}
