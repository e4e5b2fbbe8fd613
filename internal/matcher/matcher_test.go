package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		pantry    []string
		recipe    []string
		available []string
		missing   []string
	}{
		{
			name:      "partial pantry",
			pantry:    []string{"chicken", "tomatoes"},
			recipe:    []string{"chicken breast", "tomatoes", "basil"},
			available: []string{"chicken breast", "tomatoes"},
			missing:   []string{"basil"},
		},
		{
			name:      "pantry name longer than ingredient",
			pantry:    []string{"fresh garlic cloves"},
			recipe:    []string{"garlic", "salt"},
			available: []string{"garlic"},
			missing:   []string{"salt"},
		},
		{
			name:      "case insensitive keeps recipe casing",
			pantry:    []string{"OLIVE OIL"},
			recipe:    []string{"Olive Oil", "Lemon"},
			available: []string{"Olive Oil"},
			missing:   []string{"Lemon"},
		},
		{
			name:      "empty pantry",
			pantry:    nil,
			recipe:    []string{"pasta", "basil"},
			available: []string{},
			missing:   []string{"pasta", "basil"},
		},
		{
			name:      "blank pantry entries are ignored",
			pantry:    []string{"", "   "},
			recipe:    []string{"pasta"},
			available: []string{},
			missing:   []string{"pasta"},
		},
		{
			name:      "empty recipe",
			pantry:    []string{"rice"},
			recipe:    nil,
			available: []string{},
			missing:   []string{},
		},
		{
			name:      "substring false positive is kept",
			pantry:    []string{"egg"},
			recipe:    []string{"eggplant"},
			available: []string{"eggplant"},
			missing:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, missing := Partition(tt.pantry, tt.recipe)
			assert.Equal(t, tt.available, available)
			assert.Equal(t, tt.missing, missing)
		})
	}
}

func TestPartitionCoversEveryIngredientOnce(t *testing.T) {
	pantry := []string{"onion", "pepper", "cheese"}
	recipe := []string{"red onion", "bell peppers", "parmesan cheese", "pasta", "pasta", "olive oil"}

	available, missing := Partition(pantry, recipe)

	assert.ElementsMatch(t, recipe, append(append([]string{}, available...), missing...))
	for _, a := range available {
		assert.NotContains(t, missing, a)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches([]string{"garlic"}, []string{"pasta", "garlic"}))
	assert.True(t, Matches([]string{"Chicken Breast Fillet"}, []string{"chicken breast"}))
	assert.False(t, Matches([]string{"beef"}, []string{"pasta", "garlic"}))
	assert.False(t, Matches(nil, []string{"pasta"}))
	assert.False(t, Matches([]string{"pasta"}, nil))
}

func TestHasEntries(t *testing.T) {
	assert.False(t, HasEntries(nil))
	assert.False(t, HasEntries([]string{" "}))
	assert.True(t, HasEntries([]string{"rice"}))
}
