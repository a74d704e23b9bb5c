package utils

import (
	"testing"
	"time"

	"devshelf/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleResources() []models.Resource {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Resource{
		{ID: 1, Name: "Charlie", CreatedAt: base.Add(2 * time.Hour), FavoriteCount: 0},
		{ID: 2, Name: "alpha", CreatedAt: base, FavoriteCount: 2},
		{ID: 3, Name: "Bravo", CreatedAt: base.Add(time.Hour), FavoriteCount: 1},
	}
}

func names(resources []models.Resource) []string {
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = r.Name
	}
	return out
}

func TestParseSortKey(t *testing.T) {
	key, ok := ParseSortKey("")
	assert.True(t, ok)
	assert.Equal(t, SortAlphabetical, key)

	key, ok = ParseSortKey("most_favorited")
	assert.True(t, ok)
	assert.Equal(t, SortMostFavorited, key)

	_, ok = ParseSortKey("bogus")
	assert.False(t, ok)
}

func TestSortResourcesAlphabetical(t *testing.T) {
	sorted := SortResources(SortAlphabetical, sampleResources())
	assert.Equal(t, []string{"alpha", "Bravo", "Charlie"}, names(sorted))
}

func TestSortResourcesByAge(t *testing.T) {
	sorted := SortResources(SortNewest, sampleResources())
	assert.Equal(t, []string{"Charlie", "Bravo", "alpha"}, names(sorted))

	sorted = SortResources(SortOldest, sampleResources())
	assert.Equal(t, []string{"alpha", "Bravo", "Charlie"}, names(sorted))
}

func TestSortResourcesMostFavorited(t *testing.T) {
	// Favorite counts {0, 2, 1} must order as 2-count, 1-count, 0-count.
	sorted := SortResources(SortMostFavorited, sampleResources())
	assert.Equal(t, []string{"alpha", "Bravo", "Charlie"}, names(sorted))
}

func TestSortResourcesLeavesInputUntouched(t *testing.T) {
	input := sampleResources()
	SortResources(SortAlphabetical, input)
	assert.Equal(t, []string{"Charlie", "alpha", "Bravo"}, names(input))
}
