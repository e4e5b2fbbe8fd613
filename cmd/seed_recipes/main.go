package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/database"
	"github.com/pageza/pantrychef/backend/internal/logger"
	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/pageza/pantrychef/backend/internal/store"
)

const batchSize = service.MaxGenerateCount

// pantries are the ingredient sets used to prompt for extra recipes.
var pantries = []service.GenerateParams{
	{Ingredients: []string{"pasta", "tomatoes", "garlic", "basil"}, Cuisine: "Italian"},
	{Ingredients: []string{"chickpeas", "spinach", "coconut milk"}, Cuisine: "Indian"},
	{Ingredients: []string{"eggs", "bread", "milk"}, MaxCookingTime: 15},
	{Ingredients: []string{"salmon", "lemon", "dill"}, Difficulty: "Easy"},
	{Ingredients: []string{"tofu", "broccoli", "soy sauce", "ginger"}, Cuisine: "Chinese"},
	{Ingredients: []string{"black beans", "corn", "tortillas"}, Cuisine: "Mexican"},
	{Ingredients: []string{"quinoa", "kale", "feta"}, DietaryRestrictions: []string{"vegetarian"}},
	{Ingredients: []string{"beef", "potatoes", "carrots", "onions"}, MaxCookingTime: 90},
	{Ingredients: []string{"rice", "shrimp", "peas"}, Cuisine: "Spanish"},
	{Ingredients: []string{"oats", "banana", "peanut butter"}, DietaryRestrictions: []string{"vegan"}},
}

func main() {
	generate := flag.Int("generate", 0, "Number of extra recipes to generate with the configured LLM provider")
	flag.Parse()

	log := logger.New(logger.Options{ServiceName: "pantrychef-seed", Format: "console", Output: os.Stderr})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.StorageDriver == config.StorageMemory {
		log.Fatal().Msg("seeding needs STORAGE_DRIVER=postgres or sqlite")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.RunMigrations(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	stores := store.NewGormStore(db)

	seeded, err := store.Seed(ctx, stores.Recipes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed sample recipes")
	}
	log.Info().Int("recipes", seeded).Msg("sample recipes seeded")

	if *generate <= 0 {
		return
	}

	generator, err := service.NewGeneratorFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize recipe generator")
	}
	if generator == nil {
		log.Fatal().Str("provider", cfg.LLMProvider).Msg("no API key for the configured LLM provider")
	}
	generation := service.NewGenerationService(generator, stores.Recipes, nil, nil)

	created := 0
	for i := 0; created < *generate && ctx.Err() == nil; i++ {
		count := min(batchSize, *generate-created)
		params := pantries[i%len(pantries)]

		log.Info().Int("batch", i+1).Strs("ingredients", params.Ingredients).Msg("generating recipes")
		recipes, err := generation.Generate(ctx, params, count)
		if err != nil {
			log.Fatal().Err(err).Msg("recipe generation failed")
		}
		for _, r := range recipes {
			log.Info().Uint("id", r.ID).Str("name", r.Name).Msg("created recipe")
		}
		created += len(recipes)

		// Stop when a whole pass over the pantries produced nothing.
		if i+1 >= len(pantries) && created == 0 {
			log.Warn().Msg("generator returned no usable recipes, giving up")
			break
		}

		select {
		case <-ctx.Done():
		case <-time.After(2 * time.Second):
		}
	}

	log.Info().Int("recipes", created).Msg("generated recipes saved")
}
