package services

import (
	"errors"

	"devshelf/internal/db"
	"devshelf/internal/forms"
	"devshelf/internal/models"

	"gorm.io/gorm"
)

// Conflict errors surfaced to the user as a single notice. The duplicate
// checks run against the full resource/category set, approved or not.
var (
	ErrDuplicateURL      = errors.New("a resource with this URL already exists")
	ErrDuplicateName     = errors.New("a resource with this name already exists")
	ErrDuplicateCategory = errors.New("a category with this name already exists")
)

// CheckDuplicateResource rejects a submission whose URL or name exactly
// matches an existing resource. URL wins when both collide. excludeID
// skips the resource being edited; pass 0 for new submissions.
func CheckDuplicateResource(url, name string, excludeID uint) error {
	var count int64
	q := db.DB.Model(&models.Resource{}).Where("url = ?", url)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	q.Count(&count)
	if count > 0 {
		return ErrDuplicateURL
	}

	count = 0
	q = db.DB.Model(&models.Resource{}).Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	q.Count(&count)
	if count > 0 {
		return ErrDuplicateName
	}

	return nil
}

// SubmitResource creates a pending resource for the acting user. There is
// no auto-approval path: even superusers submit into the review queue.
// Resource row and keyword edges commit in one transaction.
func SubmitResource(actor *models.User, form *forms.ResourceForm) (*models.Resource, error) {
	resource := models.Resource{
		Name:        form.Name,
		Description: form.Description,
		URL:         form.URL,
		CategoryID:  form.CategoryID,
		UploaderID:  actor.ID,
		Approved:    false,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&resource).Error; err != nil {
			return err
		}
		keywords, err := upsertKeywords(tx, form.Keywords)
		if err != nil {
			return err
		}
		return tx.Model(&resource).Association("Keywords").Replace(keywords)
	})
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// UpdateResource applies an accepted edit. Every edit drops the resource
// back to pending for re-review, whoever submitted it.
func UpdateResource(resource *models.Resource, form *forms.ResourceForm) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        form.Name,
			"description": form.Description,
			"url":         form.URL,
			"category_id": form.CategoryID,
			"approved":    false,
		}
		if err := tx.Model(resource).Updates(updates).Error; err != nil {
			return err
		}
		keywords, err := upsertKeywords(tx, form.Keywords)
		if err != nil {
			return err
		}
		return tx.Model(resource).Association("Keywords").Replace(keywords)
	})
}

// SuggestCategory creates a category for the acting user. The name must be
// new case-insensitively across all categories, published or not. A
// superuser's suggestion publishes in the same operation; anyone else's
// waits for moderation.
func SuggestCategory(actor *models.User, name string) (*models.Category, error) {
	var count int64
	db.DB.Model(&models.Category{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return nil, ErrDuplicateCategory
	}

	category := models.Category{
		Name:      name,
		AuthorID:  actor.ID,
		Published: actor.IsSuperuser,
	}
	if err := db.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// upsertKeywords resolves tag names to Keyword rows, creating the missing
// ones inside the caller's transaction.
func upsertKeywords(tx *gorm.DB, names []string) ([]models.Keyword, error) {
	keywords := make([]models.Keyword, 0, len(names))
	for _, name := range names {
		var kw models.Keyword
		if err := tx.Where("name = ?", name).FirstOrCreate(&kw, models.Keyword{Name: name}).Error; err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}
	return keywords, nil
}
