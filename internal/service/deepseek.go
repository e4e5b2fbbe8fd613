package service

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/pageza/pantrychef/backend/internal/model"
)

const (
	DefaultDeepSeekURL   = "https://api.deepseek.com/v1"
	DefaultDeepSeekModel = "deepseek-chat"
)

const deepSeekSystemPrompt = "You are a professional chef and nutritionist. Respond with a single JSON object only."

// DeepSeekGenerator generates recipes through DeepSeek's OpenAI
// compatible chat completions API.
type DeepSeekGenerator struct {
	client openai.Client
	model  string
}

func NewDeepSeekGenerator(apiKey, baseURL, modelName string) *DeepSeekGenerator {
	if baseURL == "" {
		baseURL = DefaultDeepSeekURL
	}
	if modelName == "" {
		modelName = DefaultDeepSeekModel
	}
	return &DeepSeekGenerator{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithMaxRetries(0),
		),
		model: modelName,
	}
}

func (g *DeepSeekGenerator) Provider() string {
	return "deepseek"
}

func (g *DeepSeekGenerator) GenerateRecipe(ctx context.Context, params GenerateParams) (*model.RecipeDraft, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(deepSeekSystemPrompt),
			openai.UserMessage(BuildPrompt(params)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature: openai.Float(0.9),
	})
	if err != nil {
		return nil, fmt.Errorf("deepseek: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("deepseek: %w", ErrEmptyResponse)
	}

	draft, err := ParseDraft(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}
	return draft, nil
}
