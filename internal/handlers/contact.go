package handlers

import (
	"net/http"

	"devshelf/internal/db"
	"devshelf/internal/forms"
	"devshelf/internal/models"
	"devshelf/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	mailService *services.MailService
}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{
		mailService: services.NewMailService(),
	}
}

func (h *ContactHandler) Show(c *gin.Context) {
	Render(c, http.StatusOK, "contact.html", gin.H{
		"Title": "Contact",
		"Form":  &forms.ContactForm{},
	})
}

// Submit persists a valid contact request and re-renders an empty form.
// Invalid input re-renders the bound form with field messages; nothing is
// saved either way until validation passes.
func (h *ContactHandler) Submit(c *gin.Context) {
	form := &forms.ContactForm{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if !form.Validate() {
		Flash(c, "error", "There was an error with your submission. Please try again.")
		Render(c, http.StatusBadRequest, "contact.html", gin.H{
			"Title": "Contact",
			"Form":  form,
		})
		return
	}

	request := models.ContactRequest{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}
	if err := db.DB.Create(&request).Error; err != nil {
		Flash(c, "error", "There was an error with your submission. Please try again.")
		Render(c, http.StatusInternalServerError, "contact.html", gin.H{
			"Title": "Contact",
			"Form":  form,
		})
		return
	}

	// Best-effort owner notice, the request itself is already saved.
	h.mailService.SendContactNotification(request.Name, request.Email, request.Message)

	Flash(c, "success", "Thank you for contacting us. We will get back to you shortly.")
	Render(c, http.StatusOK, "contact.html", gin.H{
		"Title": "Contact",
		"Form":  &forms.ContactForm{}, // Clear the form after successful submission
	})
}
