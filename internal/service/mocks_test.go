package service

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// MockGenerator is a mock implementation of RecipeGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateRecipe(ctx context.Context, params GenerateParams) (*model.RecipeDraft, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Each caller gets its own copy since drafts are normalized in place.
	draft := *args.Get(0).(*model.RecipeDraft)
	return &draft, args.Error(1)
}

func (m *MockGenerator) Provider() string {
	return "mock"
}

// MockImageMirror is a mock implementation of ImageMirror
type MockImageMirror struct {
	mock.Mock
}

func (m *MockImageMirror) Mirror(ctx context.Context, imageURL string) (string, error) {
	args := m.Called(ctx, imageURL)
	return args.String(0), args.Error(1)
}

// MockObjectPutter is a mock implementation of ObjectPutter
type MockObjectPutter struct {
	mock.Mock
}

func (m *MockObjectPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}
