package services

import (
	"devshelf/internal/db"
	"devshelf/internal/models"
)

// ToggleFavorite flips the favorite edge between a user and a resource.
// Returns true when the edge was added, false when removed. Two calls in a
// row land back on the original state.
func ToggleFavorite(user *models.User, resource *models.Resource) (bool, error) {
	var count int64
	db.DB.Table("resource_favorites").
		Where("resource_id = ? AND user_id = ?", resource.ID, user.ID).
		Count(&count)

	if count > 0 {
		err := db.DB.Model(resource).Association("Favorites").Delete(user)
		return false, err
	}
	err := db.DB.Model(resource).Association("Favorites").Append(user)
	return true, err
}

// FillFavoriteCounts batch-fills FavoriteCount for a page of resources
// with a single grouped count over the join table.
func FillFavoriteCounts(resources []models.Resource) {
	if len(resources) == 0 {
		return
	}

	resourceIDs := make([]uint, len(resources))
	for i, r := range resources {
		resourceIDs[i] = r.ID
	}

	type countResult struct {
		ResourceID uint
		Count      int
	}
	var results []countResult
	db.DB.Table("resource_favorites").
		Select("resource_id, COUNT(*) as count").
		Where("resource_id IN ?", resourceIDs).
		Group("resource_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.ResourceID] = r.Count
	}

	for i := range resources {
		resources[i].FavoriteCount = countMap[resources[i].ID]
	}
}

// MarkFavorites sets IsFavorited on each resource for the given user.
// userID 0 (not signed in) leaves everything unmarked.
func MarkFavorites(userID uint, resources []models.Resource) {
	if userID == 0 || len(resources) == 0 {
		return
	}

	resourceIDs := make([]uint, len(resources))
	for i, r := range resources {
		resourceIDs[i] = r.ID
	}

	var favoritedIDs []uint
	db.DB.Table("resource_favorites").
		Where("user_id = ? AND resource_id IN ?", userID, resourceIDs).
		Pluck("resource_id", &favoritedIDs)

	favorited := make(map[uint]bool)
	for _, id := range favoritedIDs {
		favorited[id] = true
	}

	for i := range resources {
		resources[i].IsFavorited = favorited[resources[i].ID]
	}
}

// FavoritesForUser returns the resources a user has favorited, newest
// resource first.
func FavoritesForUser(userID uint) []models.Resource {
	var resources []models.Resource
	db.DB.Preload("Category").Preload("Keywords").
		Joins("JOIN resource_favorites rf ON rf.resource_id = resources.id").
		Where("rf.user_id = ?", userID).
		Order("resources.created_at DESC").
		Find(&resources)
	return resources
}
