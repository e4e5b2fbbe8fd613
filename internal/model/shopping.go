package model

// ShoppingListItem is an ingredient to buy for a recipe. RecipeName is a
// copy taken when the item was added, so it survives recipe deletion.
type ShoppingListItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Ingredient string `gorm:"not null" json:"ingredient"`
	RecipeID   uint   `gorm:"not null;index" json:"recipeId"`
	RecipeName string `gorm:"not null" json:"recipeName"`
	Purchased  bool   `gorm:"not null;default:false" json:"purchased"`
}

func (ShoppingListItem) TableName() string {
	return "shopping_list_items"
}
