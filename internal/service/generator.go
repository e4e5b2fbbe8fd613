package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// DefaultImageURL is used when a generated recipe has no usable image.
const DefaultImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"

// Generation request limits.
const (
	DefaultGenerateCount = 3
	MaxGenerateCount     = 5
)

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("empty response from model")

// GenerateParams describes the recipes the user wants generated.
type GenerateParams struct {
	Ingredients         []string         `json:"ingredients" binding:"required,min=1,dive,required"`
	Cuisine             string           `json:"cuisine"`
	Difficulty          model.Difficulty `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	MaxCookingTime      int              `json:"maxCookingTime" binding:"min=0"`
	Servings            int              `json:"servings" binding:"min=0"`
	DietaryRestrictions []string         `json:"dietaryRestrictions"`
}

// RecipeGenerator produces one recipe draft per call.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, params GenerateParams) (*model.RecipeDraft, error)
	Provider() string
}

// BuildPrompt renders the instruction sent to the model.
func BuildPrompt(params GenerateParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a healthy recipe using these ingredients: %s.\n\n", strings.Join(params.Ingredients, ", "))
	b.WriteString("Requirements:\n")
	b.WriteString("- Focus on healthy, nutritious cooking\n")
	b.WriteString("- Use at least 3 of the provided ingredients\n")

	if params.Cuisine != "" {
		fmt.Fprintf(&b, "- Make it %s cuisine\n", params.Cuisine)
	} else {
		b.WriteString("- Any cuisine style\n")
	}
	if params.Difficulty != "" {
		fmt.Fprintf(&b, "- Difficulty level: %s\n", params.Difficulty)
	} else {
		b.WriteString("- Easy to Medium difficulty\n")
	}
	if params.MaxCookingTime > 0 {
		fmt.Fprintf(&b, "- Maximum cooking time: %d minutes\n", params.MaxCookingTime)
	} else {
		b.WriteString("- Under 45 minutes\n")
	}
	if params.Servings > 0 {
		fmt.Fprintf(&b, "- Serves %d people\n", params.Servings)
	} else {
		b.WriteString("- Serves 4 people\n")
	}
	if len(params.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "- Dietary restrictions: %s\n", strings.Join(params.DietaryRestrictions, ", "))
	}

	b.WriteString(`
Return a JSON object with exactly this structure:
{
  "name": "Recipe Name",
  "description": "Brief appetizing description focusing on health benefits",
  "cookingTime": number (in minutes),
  "servings": number,
  "difficulty": "Easy" | "Medium" | "Hard",
  "cuisine": "cuisine type",
  "rating": number (40-50, representing 4.0-5.0 stars * 10),
  "ingredients": ["ingredient 1", "ingredient 2", ...],
  "instructions": ["step 1", "step 2", ...],
  "imageUrl": "`)
	b.WriteString(DefaultImageURL)
	b.WriteString(`"
}

Make it creative and healthy while using the available ingredients efficiently.`)
	return b.String()
}

// generatedRecipe is the loosely typed shape models actually return.
// Numbers may arrive as floats.
type generatedRecipe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CookingTime  float64  `json:"cookingTime"`
	Servings     float64  `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Cuisine      string   `json:"cuisine"`
	Rating       float64  `json:"rating"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ImageURL     string   `json:"imageUrl"`
}

// ParseDraft decodes model output into a draft. Markdown code fences
// around the JSON are tolerated.
func ParseDraft(raw string) (*model.RecipeDraft, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var g generatedRecipe
	if err := json.Unmarshal([]byte(text), &g); err != nil {
		return nil, fmt.Errorf("failed to parse recipe JSON: %w", err)
	}

	return &model.RecipeDraft{
		Name:         strings.TrimSpace(g.Name),
		Description:  strings.TrimSpace(g.Description),
		CookingTime:  int(math.Round(g.CookingTime)),
		Servings:     int(math.Round(g.Servings)),
		Difficulty:   model.Difficulty(strings.TrimSpace(g.Difficulty)),
		Cuisine:      strings.TrimSpace(g.Cuisine),
		Rating:       ratingTenths(g.Rating),
		Ingredients:  compact(g.Ingredients),
		Instructions: compact(g.Instructions),
		ImageURL:     strings.TrimSpace(g.ImageURL),
	}, nil
}

// ratingTenths accepts either a 0-5 star value or a value already in tenths.
func ratingTenths(r float64) int {
	if r > 0 && r <= 5 {
		r *= 10
	}
	return int(math.Round(r))
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// NormalizeDraft fills gaps the model left from the request and clamps
// values into range.
func NormalizeDraft(d *model.RecipeDraft, params GenerateParams) {
	if d.Servings <= 0 {
		d.Servings = params.Servings
		if d.Servings <= 0 {
			d.Servings = 4
		}
	}
	if d.Cuisine == "" {
		d.Cuisine = params.Cuisine
	}
	if difficulty, ok := parseDifficulty(string(d.Difficulty)); ok {
		d.Difficulty = difficulty
	} else if params.Difficulty != "" {
		d.Difficulty = params.Difficulty
	} else {
		d.Difficulty = model.DifficultyMedium
	}
	if d.CookingTime < 0 {
		d.CookingTime = 0
	}
	if d.Rating < 0 {
		d.Rating = 0
	}
	if d.Rating > model.MaxRating {
		d.Rating = model.MaxRating
	}
	if d.ImageURL == "" {
		d.ImageURL = DefaultImageURL
	}
}

func parseDifficulty(v string) (model.Difficulty, bool) {
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		if strings.EqualFold(v, string(d)) {
			return d, true
		}
	}
	return "", false
}
