package model

// UserIngredient is an ingredient the user has in their pantry.
type UserIngredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName keeps the table name used by the migrations.
func (UserIngredient) TableName() string {
	return "user_ingredients"
}
