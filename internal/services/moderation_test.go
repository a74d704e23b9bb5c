package services

import (
	"testing"

	"devshelf/internal/db"
	"devshelf/internal/forms"
	"devshelf/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the package-level DB for an in-memory sqlite instance.
// A single connection keeps every query on the same memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.ContactRequest{},
		&models.Category{},
		&models.Keyword{},
		&models.Resource{},
	))

	db.DB = gdb
}

func createUser(t *testing.T, email string, superuser bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:    email,
		Email:       email,
		Password:    "x",
		IsSuperuser: superuser,
	}
	require.NoError(t, db.DB.Create(user).Error)
	return user
}

func createCategory(t *testing.T, author *models.User, name string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, AuthorID: author.ID, Published: published}
	require.NoError(t, db.DB.Create(category).Error)
	return category
}

func resourceForm(name, url string, categoryID uint) *forms.ResourceForm {
	return &forms.ResourceForm{
		Name:        name,
		Description: "a description",
		URL:         url,
		CategoryID:  categoryID,
		Keywords:    []string{"go", "web"},
	}
}

func TestSubmitResourceCreatesPending(t *testing.T) {
	setupTestDB(t)
	admin := createUser(t, "admin@example.com", true)
	category := createCategory(t, admin, "Tools", true)

	// Even a superuser submits into the review queue.
	resource, err := SubmitResource(admin, resourceForm("GoLand", "https://jetbrains.com/go-land/", category.ID))
	require.NoError(t, err)
	require.False(t, resource.Approved)

	var stored models.Resource
	require.NoError(t, db.DB.Preload("Keywords").First(&stored, resource.ID).Error)
	require.False(t, stored.Approved)
	require.Len(t, stored.Keywords, 2)
}

func TestCheckDuplicateResource(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "u1@example.com", false)
	category := createCategory(t, user, "Tools", true)

	existing, err := SubmitResource(user, resourceForm("DupTest", "https://dup.com", category.ID))
	require.NoError(t, err)

	// Same URL loses first, even when the name also collides.
	require.ErrorIs(t, CheckDuplicateResource("https://dup.com", "DupTest", 0), ErrDuplicateURL)

	// Same name, different URL.
	require.ErrorIs(t, CheckDuplicateResource("https://other.com", "DupTest", 0), ErrDuplicateName)

	// The resource being edited is not its own duplicate.
	require.NoError(t, CheckDuplicateResource("https://dup.com", "DupTest", existing.ID))

	var count int64
	db.DB.Model(&models.Resource{}).Count(&count)
	require.Equal(t, int64(1), count)
}

func TestUpdateResourceResetsApproval(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "u1@example.com", false)
	category := createCategory(t, user, "Tools", true)

	resource, err := SubmitResource(user, resourceForm("E1", "https://e1.com", category.ID))
	require.NoError(t, err)
	require.NoError(t, db.DB.Model(resource).Update("approved", true).Error)

	form := resourceForm("E1 renamed", "https://e1.com", category.ID)
	form.Keywords = []string{"edit-tag"}
	require.NoError(t, UpdateResource(resource, form))

	var stored models.Resource
	require.NoError(t, db.DB.Preload("Keywords").First(&stored, resource.ID).Error)
	require.Equal(t, "E1 renamed", stored.Name)
	require.False(t, stored.Approved, "an accepted edit must drop back to pending")
	require.Len(t, stored.Keywords, 1)
	require.Equal(t, "edit-tag", stored.Keywords[0].Name)
}

func TestSuggestCategoryPublishRule(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "u1@example.com", false)
	admin := createUser(t, "admin@example.com", true)

	category, err := SuggestCategory(user, "NewCat")
	require.NoError(t, err)
	require.False(t, category.Published)

	published, err := SuggestCategory(admin, "AdminCat")
	require.NoError(t, err)
	require.True(t, published.Published)
}

func TestSuggestCategoryDuplicateIsCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "u1@example.com", false)

	_, err := SuggestCategory(user, "NewCat")
	require.NoError(t, err)

	// Unpublished categories still count against new suggestions.
	_, err = SuggestCategory(user, "newcat")
	require.ErrorIs(t, err, ErrDuplicateCategory)

	var count int64
	db.DB.Model(&models.Category{}).Count(&count)
	require.Equal(t, int64(1), count)
}
