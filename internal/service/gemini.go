package service

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/pageza/pantrychef/backend/internal/model"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var recipeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":         {Type: genai.TypeString},
		"description":  {Type: genai.TypeString},
		"cookingTime":  {Type: genai.TypeNumber},
		"servings":     {Type: genai.TypeNumber},
		"difficulty":   {Type: genai.TypeString, Enum: []string{"Easy", "Medium", "Hard"}},
		"cuisine":      {Type: genai.TypeString},
		"rating":       {Type: genai.TypeNumber},
		"ingredients":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"instructions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"imageUrl":     {Type: genai.TypeString},
	},
	Required: []string{
		"name", "description", "cookingTime", "servings", "difficulty",
		"cuisine", "rating", "ingredients", "instructions", "imageUrl",
	},
}

// GeminiGenerator generates recipes with the Gemini API.
type GeminiGenerator struct {
	models contentGenerator
	model  string
}

// NewGeminiGenerator creates a Gemini client for apiKey.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return newGeminiGenerator(client.Models, modelName), nil
}

func newGeminiGenerator(models contentGenerator, modelName string) *GeminiGenerator {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiGenerator{models: models, model: modelName}
}

func (g *GeminiGenerator) Provider() string {
	return "gemini"
}

func (g *GeminiGenerator) GenerateRecipe(ctx context.Context, params GenerateParams) (*model.RecipeDraft, error) {
	res, err := g.models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(BuildPrompt(params), genai.RoleUser),
	}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recipeSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generating content: %w", err)
	}
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	var text strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	draft, err := ParseDraft(text.String())
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return draft, nil
}
