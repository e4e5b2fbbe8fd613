package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/internal/apperror"
	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/store"
)

var testParams = GenerateParams{Ingredients: []string{"chicken", "rice", "peas"}}

func TestGenerateAllSucceed(t *testing.T) {
	s := store.NewMemoryStore()
	gen := new(MockGenerator)
	gen.On("GenerateRecipe", mock.Anything, testParams).Return(validDraft("Fried Rice"), nil).Times(3)

	svc := NewGenerationService(gen, s.Recipes, nil, nil)
	recipes, err := svc.Generate(context.Background(), testParams, 3)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	for i, r := range recipes {
		assert.Equal(t, uint(i+1), r.ID)
		assert.Equal(t, "Fried Rice", r.Name)
	}

	stored, err := s.Recipes.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 3)
	gen.AssertExpectations(t)
}

func TestGeneratePartialSuccess(t *testing.T) {
	s := store.NewMemoryStore()
	gen := new(MockGenerator)
	gen.On("GenerateRecipe", mock.Anything, testParams).Return(validDraft("Only One"), nil).Once()
	gen.On("GenerateRecipe", mock.Anything, testParams).Return(nil, errors.New("upstream timeout")).Twice()

	reg := prometheus.NewRegistry()
	svc := NewGenerationService(gen, s.Recipes, nil, metrics.New(reg))
	recipes, err := svc.Generate(context.Background(), testParams, 3)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Only One", recipes[0].Name)
	gen.AssertExpectations(t)
}

func TestGenerateAllFailReturnsEmpty(t *testing.T) {
	s := store.NewMemoryStore()
	gen := new(MockGenerator)
	gen.On("GenerateRecipe", mock.Anything, testParams).Return(nil, errors.New("boom"))

	svc := NewGenerationService(gen, s.Recipes, nil, nil)
	recipes, err := svc.Generate(context.Background(), testParams, 2)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
	gen.AssertNumberOfCalls(t, "GenerateRecipe", 2)
}

func TestGenerateDropsInvalidDrafts(t *testing.T) {
	s := store.NewMemoryStore()
	invalid := validDraft("No Steps")
	invalid.Instructions = nil

	gen := new(MockGenerator)
	gen.On("GenerateRecipe", mock.Anything, testParams).Return(invalid, nil)

	svc := NewGenerationService(gen, s.Recipes, nil, nil)
	recipes, err := svc.Generate(context.Background(), testParams, 1)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestGenerateClampsCount(t *testing.T) {
	s := store.NewMemoryStore()
	gen := new(MockGenerator)
	gen.On("GenerateRecipe", mock.Anything, testParams).Return(validDraft("Many"), nil)

	svc := NewGenerationService(gen, s.Recipes, nil, nil)
	recipes, err := svc.Generate(context.Background(), testParams, 9)
	require.NoError(t, err)
	assert.Len(t, recipes, MaxGenerateCount)

	recipes, err = svc.Generate(context.Background(), testParams, 0)
	require.NoError(t, err)
	assert.Len(t, recipes, DefaultGenerateCount)
}

func TestGenerateWithoutGenerator(t *testing.T) {
	svc := NewGenerationService(nil, store.NewMemoryStore().Recipes, nil, nil)
	assert.False(t, svc.Available())

	_, err := svc.Generate(context.Background(), testParams, 1)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeDependency, apperror.CodeOf(err))
}

func TestGenerateMirrorsImages(t *testing.T) {
	s := store.NewMemoryStore()
	gen := new(MockGenerator)
	gen.On("GenerateRecipe", mock.Anything, testParams).Return(validDraft("Pictured"), nil).Twice()

	images := new(MockImageMirror)
	images.On("Mirror", mock.Anything, "https://example.com/soup.jpg").
		Return("https://bucket.s3.us-east-1.amazonaws.com/recipe-images/x.jpg", nil).Once()
	images.On("Mirror", mock.Anything, "https://example.com/soup.jpg").
		Return("", errors.New("s3 down")).Once()

	svc := NewGenerationService(gen, s.Recipes, images, nil)
	recipes, err := svc.Generate(context.Background(), testParams, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	urls := []string{recipes[0].ImageURL, recipes[1].ImageURL}
	assert.ElementsMatch(t, []string{
		"https://bucket.s3.us-east-1.amazonaws.com/recipe-images/x.jpg",
		"https://example.com/soup.jpg",
	}, urls)
	images.AssertExpectations(t)
}
