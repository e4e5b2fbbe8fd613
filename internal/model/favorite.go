package model

import "time"

// FavoriteRecipe marks a recipe as saved. There is at most one per recipe.
type FavoriteRecipe struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RecipeID uint      `gorm:"not null;uniqueIndex" json:"recipeId"`
	SavedAt  time.Time `gorm:"not null" json:"savedAt"`
}

func (FavoriteRecipe) TableName() string {
	return "favorite_recipes"
}

// FavoriteWithRecipe is a favorite joined with the recipe it points to.
type FavoriteWithRecipe struct {
	FavoriteRecipe
	Recipe Recipe `json:"recipe"`
}
