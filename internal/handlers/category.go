package handlers

import (
	"net/http"
	"strings"

	"devshelf/internal/forms"
	"devshelf/internal/middleware"
	"devshelf/internal/services"
	"devshelf/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) ShowSuggest(c *gin.Context) {
	Render(c, http.StatusOK, "category/suggest.html", gin.H{
		"Title": "Suggest a category",
		"Form":  &forms.CategoryForm{},
	})
}

// Suggest creates a category for the acting user. Superusers publish
// immediately, everyone else lands in the moderation queue.
func (h *CategoryHandler) Suggest(c *gin.Context) {
	user := middleware.CurrentUser(c)

	form := &forms.CategoryForm{
		Name: strings.TrimSpace(c.PostForm("name")),
	}
	if !form.Validate() {
		Render(c, http.StatusBadRequest, "category/suggest.html", gin.H{
			"Title": "Suggest a category",
			"Form":  form,
		})
		return
	}

	category, err := services.SuggestCategory(user, form.Name)
	if err == services.ErrDuplicateCategory {
		Flash(c, "error", "A category with this name already exists.")
		c.Redirect(http.StatusFound, "/suggest")
		return
	}
	if err != nil {
		Flash(c, "error", "Could not save the category. Please try again.")
		c.Redirect(http.StatusFound, "/suggest")
		return
	}

	// New published categories change the public index right away
	utils.GetCache().Delete("category:index")

	if category.Published {
		Flash(c, "success", "Category created and published.")
	} else {
		Flash(c, "success", "Category suggested and is awaiting review.")
	}
	c.Redirect(http.StatusFound, "/suggest")
}
