package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"devshelf/internal/db"
	"devshelf/internal/forms"
	"devshelf/internal/middleware"
	"devshelf/internal/models"
	"devshelf/internal/services"
	"devshelf/internal/utils"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct{}

func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{}
}

// resourceView pairs a resource with its rendered description for the
// templates.
type resourceView struct {
	models.Resource
	DescriptionHTML template.HTML
}

func renderResources(resources []models.Resource) []resourceView {
	views := make([]resourceView, len(resources))
	for i, r := range resources {
		views[i] = resourceView{
			Resource:        r,
			DescriptionHTML: utils.RenderMarkdown(r.Description),
		}
	}
	return views
}

// publishedCategories is the category list for navigation and the
// submit/edit form selects.
func publishedCategories() []models.Category {
	var categories []models.Category
	db.DB.Where("published = ?", true).Order("name ASC").Find(&categories)
	return categories
}

// Index lists published categories ordered by name.
func (h *ResourceHandler) Index(c *gin.Context) {
	cacheKey := "category:index"
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if categories, ok := cached.([]models.Category); ok {
			Render(c, http.StatusOK, "index.html", gin.H{
				"Title":      "Categories",
				"Categories": categories,
			})
			return
		}
	}

	categories := publishedCategories()
	utils.GetCache().Set(cacheKey, categories, 1*time.Minute)

	Render(c, http.StatusOK, "index.html", gin.H{
		"Title":      "Categories",
		"Categories": categories,
	})
}

// CategoryDetail shows a published category and its approved resources,
// newest first, re-ordered by the sort_by query key when it is one we
// recognize. Favorite marks are looked up only for signed-in users.
func (h *ResourceHandler) CategoryDetail(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var category models.Category
	if err := db.DB.Where("id = ? AND published = ?", id, true).First(&category).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	var resources []models.Resource
	db.DB.Preload("Keywords").Preload("Uploader").
		Where("category_id = ? AND approved = ?", category.ID, true).
		Order("created_at DESC").
		Find(&resources)

	services.FillFavoriteCounts(resources)

	sortBy := c.Query("sort_by")
	if key, ok := utils.ParseSortKey(sortBy); ok {
		resources = utils.SortResources(key, resources)
	}

	userID := uint(0)
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}
	services.MarkFavorites(userID, resources)

	Render(c, http.StatusOK, "category.html", gin.H{
		"Title":     category.Name,
		"Category":  category,
		"Resources": renderResources(resources),
		"SortBy":    sortBy,
	})
}

func (h *ResourceHandler) ShowSubmit(c *gin.Context) {
	Render(c, http.StatusOK, "resource/submit.html", gin.H{
		"Title":      "Submit a resource",
		"Form":       &forms.ResourceForm{},
		"Categories": publishedCategories(),
	})
}

// bindResourceForm reads the submitted fields. Keywords arrive as one
// comma-separated input.
func bindResourceForm(c *gin.Context) *forms.ResourceForm {
	return &forms.ResourceForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: c.PostForm("description"),
		URL:         strings.TrimSpace(c.PostForm("url")),
		CategoryID:  uint(utils.StringToInt(c.PostForm("category"))),
		Keywords:    forms.ParseKeywords(c.PostForm("keywords")),
	}
}

// validateCategoryChoice rejects references to missing or unpublished
// categories, mirroring a select limited to published ones.
func validateCategoryChoice(form *forms.ResourceForm) {
	if form.CategoryID == 0 {
		return
	}
	var count int64
	db.DB.Model(&models.Category{}).
		Where("id = ? AND published = ?", form.CategoryID, true).
		Count(&count)
	if count == 0 {
		form.Errors.Add("category", "Select a valid category.")
	}
}

func conflictMessage(err error) string {
	switch err {
	case services.ErrDuplicateURL:
		return "A resource with this URL already exists."
	case services.ErrDuplicateName:
		return "A resource with this name already exists."
	}
	return "Could not save the resource. Please try again."
}

func (h *ResourceHandler) Submit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	form := bindResourceForm(c)
	valid := form.Validate()
	validateCategoryChoice(form)
	if !valid || len(form.Errors) > 0 {
		Render(c, http.StatusBadRequest, "resource/submit.html", gin.H{
			"Title":       "Submit a resource",
			"Form":        form,
			"KeywordsRaw": c.PostForm("keywords"),
			"Categories":  publishedCategories(),
		})
		return
	}

	if err := services.CheckDuplicateResource(form.URL, form.Name, 0); err != nil {
		Flash(c, "error", conflictMessage(err))
		c.Redirect(http.StatusFound, "/add")
		return
	}

	if _, err := services.SubmitResource(user, form); err != nil {
		Flash(c, "error", "Could not save the resource. Please try again.")
		c.Redirect(http.StatusFound, "/add")
		return
	}

	Flash(c, "success", "Resource submitted successfully and is awaiting approval.")
	c.Redirect(http.StatusFound, "/add")
}

// findOwnedResource loads a resource and checks the acting user owns it.
// Reports the reason it could not be used, already flashed.
func findOwnedResource(c *gin.Context, action string) (*models.Resource, bool) {
	user := middleware.CurrentUser(c)
	id := utils.StringToInt(c.Param("id"))

	var resource models.Resource
	if err := db.DB.Preload("Keywords").First(&resource, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Resource not found")
		return nil, false
	}

	if resource.UploaderID != user.ID {
		Flash(c, "error", fmt.Sprintf("You are not authorized to %s this resource.", action))
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	return &resource, true
}

func (h *ResourceHandler) ShowEdit(c *gin.Context) {
	resource, ok := findOwnedResource(c, "edit")
	if !ok {
		return
	}

	names := make([]string, len(resource.Keywords))
	for i, kw := range resource.Keywords {
		names[i] = kw.Name
	}

	form := &forms.ResourceForm{
		Name:        resource.Name,
		Description: resource.Description,
		URL:         resource.URL,
		CategoryID:  resource.CategoryID,
		Keywords:    names,
	}

	Render(c, http.StatusOK, "resource/edit.html", gin.H{
		"Title":       "Edit resource",
		"Resource":    resource,
		"Form":        form,
		"KeywordsRaw": strings.Join(names, ", "),
		"Categories":  publishedCategories(),
	})
}

func (h *ResourceHandler) Edit(c *gin.Context) {
	resource, ok := findOwnedResource(c, "edit")
	if !ok {
		return
	}

	form := bindResourceForm(c)
	valid := form.Validate()
	validateCategoryChoice(form)
	if !valid || len(form.Errors) > 0 {
		Render(c, http.StatusBadRequest, "resource/edit.html", gin.H{
			"Title":       "Edit resource",
			"Resource":    resource,
			"Form":        form,
			"KeywordsRaw": c.PostForm("keywords"),
			"Categories":  publishedCategories(),
		})
		return
	}

	if err := services.CheckDuplicateResource(form.URL, form.Name, resource.ID); err != nil {
		Flash(c, "error", conflictMessage(err))
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", resource.ID))
		return
	}

	if err := services.UpdateResource(resource, form); err != nil {
		Flash(c, "error", "Could not save the resource. Please try again.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", resource.ID))
		return
	}

	Flash(c, "success", "Resource updated successfully and is awaiting re-approval.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/category/%d", form.CategoryID))
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	resource, ok := findOwnedResource(c, "delete")
	if !ok {
		return
	}

	categoryID := resource.CategoryID

	// Drop edges first, then the row
	db.DB.Model(resource).Association("Favorites").Clear()
	db.DB.Model(resource).Association("Keywords").Clear()
	db.DB.Delete(resource)

	Flash(c, "success", "Resource deleted successfully.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/category/%d", categoryID))
}

// Favorite toggles the favorite edge for the signed-in user and bounces
// back to where the click came from.
func (h *ResourceHandler) Favorite(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := utils.StringToInt(c.Param("id"))

	var resource models.Resource
	if err := db.DB.First(&resource, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Resource not found")
		return
	}

	added, err := services.ToggleFavorite(user, &resource)
	if err != nil {
		Flash(c, "error", "Could not update your favorites. Please try again.")
	} else if added {
		Flash(c, "success", "Added to favorites.")
	} else {
		Flash(c, "success", "Removed from favorites.")
	}

	back := c.Request.Referer()
	if back == "" {
		back = fmt.Sprintf("/category/%d", resource.CategoryID)
	}
	c.Redirect(http.StatusFound, back)
}

func (h *ResourceHandler) ListFavorites(c *gin.Context) {
	user := middleware.CurrentUser(c)

	resources := services.FavoritesForUser(user.ID)
	services.FillFavoriteCounts(resources)
	for i := range resources {
		resources[i].IsFavorited = true
	}

	Render(c, http.StatusOK, "resource/favorites.html", gin.H{
		"Title":     "My favorites",
		"Resources": renderResources(resources),
	})
}

// Search runs the q/in/sort_by query over approved resources in published
// categories. The matching itself happens in memory over the candidate
// set so name, description and keyword fields share one code path.
func (h *ResourceHandler) Search(c *gin.Context) {
	query := c.Query("q")
	fields := utils.ParseSearchFields(c.QueryArray("in"))

	var candidates []models.Resource
	db.DB.Preload("Keywords").Preload("Category").
		Joins("JOIN categories ON categories.id = resources.category_id").
		Where("resources.approved = ? AND categories.published = ?", true, true).
		Order("resources.created_at DESC").
		Find(&candidates)

	results := utils.SearchResources(query, fields, candidates)
	services.FillFavoriteCounts(results)

	sortBy := c.Query("sort_by")
	if key, ok := utils.ParseSortKey(sortBy); ok {
		results = utils.SortResources(key, results)
	}

	userID := uint(0)
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}
	services.MarkFavorites(userID, results)

	Render(c, http.StatusOK, "search.html", gin.H{
		"Title":     "Search",
		"Query":     query,
		"Fields":    c.QueryArray("in"),
		"SortBy":    sortBy,
		"Resources": renderResources(results),
	})
}
