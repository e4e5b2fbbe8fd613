package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Difficulty is the effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// MaxRating is five stars expressed in tenths.
const MaxRating = 50

// JSONBStringArray is a string slice stored as a JSON array column.
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONBStringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a catalog entry. Rating is stored as tenths of a 0-5 star scale.
type Recipe struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	CookingTime  int              `gorm:"not null" json:"cookingTime"`
	Servings     int              `gorm:"not null" json:"servings"`
	Difficulty   Difficulty       `gorm:"size:10;not null" json:"difficulty"`
	Cuisine      string           `gorm:"not null" json:"cuisine"`
	Rating       int              `gorm:"not null;default:0" json:"rating"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null" json:"instructions"`
	ImageURL     string           `gorm:"not null" json:"imageUrl"`
}

// RecipeDraft is a recipe that has not been assigned an id yet. It is the
// input of recipe creation and the output of AI generation.
type RecipeDraft struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	CookingTime  int        `json:"cookingTime" binding:"min=0"`
	Servings     int        `json:"servings" binding:"min=0"`
	Difficulty   Difficulty `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Cuisine      string     `json:"cuisine"`
	Rating       int        `json:"rating" binding:"min=0,max=50"`
	Ingredients  []string   `json:"ingredients" binding:"required,min=1,dive,required"`
	Instructions []string   `json:"instructions" binding:"required,min=1,dive,required"`
	ImageURL     string     `json:"imageUrl" binding:"omitempty,url"`
}

// ToRecipe builds an unsaved Recipe from the draft.
func (d RecipeDraft) ToRecipe() Recipe {
	return Recipe{
		Name:         d.Name,
		Description:  d.Description,
		CookingTime:  d.CookingTime,
		Servings:     d.Servings,
		Difficulty:   d.Difficulty,
		Cuisine:      d.Cuisine,
		Rating:       d.Rating,
		Ingredients:  append(JSONBStringArray{}, d.Ingredients...),
		Instructions: append(JSONBStringArray{}, d.Instructions...),
		ImageURL:     d.ImageURL,
	}
}
