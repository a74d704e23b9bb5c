package utils

import (
	"sort"
	"strings"

	"devshelf/internal/models"
)

// SortKey is a closed set of resource orderings. Query strings are mapped
// through ParseSortKey so an unrecognized value can never reach the switch
// in SortResources.
type SortKey int

const (
	SortAlphabetical SortKey = iota
	SortNewest
	SortOldest
	SortMostFavorited
)

// ParseSortKey maps the sort_by query value to a SortKey. The empty string
// means the default (alphabetical). Unknown values report ok=false and the
// caller keeps the collection's current order.
func ParseSortKey(s string) (SortKey, bool) {
	switch s {
	case "", "alphabetical":
		return SortAlphabetical, true
	case "newest":
		return SortNewest, true
	case "oldest":
		return SortOldest, true
	case "most_favorited":
		return SortMostFavorited, true
	}
	return SortAlphabetical, false
}

// SortResources returns a new slice ordered by the given key. The input is
// left untouched and no store access happens here. Sorting is stable, so
// ties under most_favorited keep their incoming order.
func SortResources(key SortKey, resources []models.Resource) []models.Resource {
	sorted := make([]models.Resource, len(resources))
	copy(sorted, resources)

	switch key {
	case SortAlphabetical:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortMostFavorited:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].FavoriteCount > sorted[j].FavoriteCount
		})
	}

	return sorted
}
