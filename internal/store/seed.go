package store

import (
	"context"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// SampleRecipes is the starter catalog loaded into an empty store.
func SampleRecipes() []model.RecipeDraft {
	return []model.RecipeDraft{
		{
			Name:        "Chicken Tikka Masala",
			Description: "A rich and creamy Indian curry featuring tender chunks of chicken in a spiced tomato-based sauce.",
			CookingTime: 35,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Cuisine:     "Indian",
			Rating:      47,
			Ingredients: []string{
				"chicken breast", "tomatoes", "garlic", "coconut milk",
				"garam masala", "ground cumin", "onions", "ginger",
			},
			Instructions: []string{
				"Season chicken with salt, pepper, and half the garam masala. Heat oil in a large pan over medium-high heat.",
				"Cook chicken pieces until golden brown on all sides, about 6-8 minutes. Remove and set aside.",
				"In the same pan, sauté garlic until fragrant. Add remaining spices and cook for 30 seconds.",
				"Add diced tomatoes and coconut milk. Simmer for 10 minutes until sauce thickens.",
				"Return chicken to pan and simmer for 5 more minutes. Serve hot with rice and garnish with cilantro.",
			},
			ImageURL: "https://images.unsplash.com/photo-1565557623262-b51c2513a641?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		},
		{
			Name:        "Pasta Primavera",
			Description: "Fresh colorful vegetable pasta with herbs and parmesan cheese.",
			CookingTime: 20,
			Servings:    3,
			Difficulty:  model.DifficultyEasy,
			Cuisine:     "Italian",
			Rating:      45,
			Ingredients: []string{
				"pasta", "bell peppers", "tomatoes", "garlic",
				"parmesan cheese", "olive oil", "basil", "zucchini",
			},
			Instructions: []string{
				"Cook pasta according to package directions until al dente.",
				"Heat olive oil in a large skillet and sauté garlic until fragrant.",
				"Add bell peppers and zucchini, cook for 5 minutes until tender-crisp.",
				"Add tomatoes and cook for 2-3 minutes until heated through.",
				"Toss with cooked pasta, fresh basil, and parmesan cheese. Serve immediately.",
			},
			ImageURL: "https://images.unsplash.com/photo-1551183053-bf91a1d81141?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		},
		{
			Name:        "Garlic Herb Chicken",
			Description: "Perfectly seasoned roasted chicken with fresh herbs and garlic.",
			CookingTime: 25,
			Servings:    4,
			Difficulty:  model.DifficultyEasy,
			Cuisine:     "American",
			Rating:      49,
			Ingredients: []string{
				"chicken breast", "garlic", "fresh herbs", "olive oil",
				"lemon", "salt", "pepper",
			},
			Instructions: []string{
				"Preheat oven to 425°F (220°C).",
				"Mix minced garlic, chopped herbs, olive oil, salt, and pepper in a bowl.",
				"Rub the herb mixture all over the chicken breasts.",
				"Place in a baking dish and roast for 20-25 minutes until cooked through.",
				"Let rest for 5 minutes, then slice and serve with lemon wedges.",
			},
			ImageURL: "https://images.unsplash.com/photo-1532550907401-a500c9a57435?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		},
	}
}

// Seed creates the sample recipes when the catalog is empty. It reports
// how many recipes were created.
func Seed(ctx context.Context, recipes RecipeStore) (int, error) {
	existing, err := recipes.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, draft := range SampleRecipes() {
		if _, err := recipes.Create(ctx, draft); err != nil {
			return i, err
		}
	}
	return len(SampleRecipes()), nil
}
