package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/pantrychef/backend/internal/apperror"
	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/store"
)

// GenerationService fans out recipe generation and persists the drafts
// that come back valid.
type GenerationService struct {
	generator RecipeGenerator
	recipes   store.RecipeStore
	images    ImageMirror
	metrics   *metrics.Metrics
	validate  *validator.Validate
}

// NewGenerationService wires a generator to the recipe store. generator
// may be nil, in which case every call fails with a dependency error.
// images may be nil to keep the URLs the model returned.
func NewGenerationService(generator RecipeGenerator, recipes store.RecipeStore, images ImageMirror, m *metrics.Metrics) *GenerationService {
	return &GenerationService{
		generator: generator,
		recipes:   recipes,
		images:    images,
		metrics:   m,
		validate:  NewValidator(),
	}
}

// NewValidator returns a validator reading the same `binding` tags gin uses.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

// Available reports whether a generator is configured.
func (s *GenerationService) Available() bool {
	return s.generator != nil
}

// Generate issues count generator calls concurrently. Failed or invalid
// drafts are logged and dropped; the rest are stored in call order.
func (s *GenerationService) Generate(ctx context.Context, params GenerateParams, count int) ([]model.Recipe, error) {
	if s.generator == nil {
		return nil, apperror.New(apperror.CodeDependency, "recipe generation is not configured")
	}
	if count <= 0 {
		count = DefaultGenerateCount
	}
	if count > MaxGenerateCount {
		count = MaxGenerateCount
	}

	log := zerolog.Ctx(ctx)
	provider := s.generator.Provider()
	drafts := make([]*model.RecipeDraft, count)

	var g errgroup.Group
	for i := 0; i < count; i++ {
		g.Go(func() error {
			drafts[i] = s.generateOne(ctx, params, provider, i)
			return nil
		})
	}
	_ = g.Wait()

	created := make([]model.Recipe, 0, count)
	for _, draft := range drafts {
		if draft == nil {
			continue
		}
		recipe, err := s.recipes.Create(ctx, *draft)
		if err != nil {
			return nil, apperror.Wrap(apperror.CodeInternal, err, "failed to save generated recipe")
		}
		created = append(created, recipe)
	}

	log.Info().
		Str("provider", provider).
		Int("requested", count).
		Int("created", len(created)).
		Msg("recipe generation finished")
	return created, nil
}

// generateOne runs a single slot. It returns nil when the slot produced
// nothing usable.
func (s *GenerationService) generateOne(ctx context.Context, params GenerateParams, provider string, slot int) *model.RecipeDraft {
	log := zerolog.Ctx(ctx).With().Str("provider", provider).Int("slot", slot).Logger()

	draft, err := s.generator.GenerateRecipe(ctx, params)
	if err != nil {
		log.Warn().Err(err).Msg("recipe generation failed")
		s.metrics.IncGeneration(provider, metrics.OutcomeFailure)
		return nil
	}

	NormalizeDraft(draft, params)
	if err := s.validate.Struct(draft); err != nil {
		log.Warn().Err(err).Str("name", draft.Name).Msg("generated recipe rejected")
		s.metrics.IncGeneration(provider, metrics.OutcomeInvalid)
		return nil
	}

	if s.images != nil {
		if mirrored, err := s.images.Mirror(ctx, draft.ImageURL); err != nil {
			log.Warn().Err(err).Str("image_url", draft.ImageURL).Msg("image mirroring failed, keeping original URL")
		} else {
			draft.ImageURL = mirrored
		}
	}

	s.metrics.IncGeneration(provider, metrics.OutcomeSuccess)
	return draft
}
