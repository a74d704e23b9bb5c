package handlers

import (
	"net/http"
	"strings"

	"devshelf/internal/db"
	"devshelf/internal/forms"
	"devshelf/internal/models"
	"devshelf/internal/services"
	"devshelf/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	captchaService *services.CaptchaService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		captchaService: services.NewCaptchaService(),
	}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	question, answer := h.captchaService.GenerateMathProblem()
	session := sessions.Default(c)
	session.Set("captcha_answer", answer)
	session.Save()
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Sign up", "Captcha": question})
}

func (h *AuthHandler) registerError(c *gin.Context, message string) {
	question, answer := h.captchaService.GenerateMathProblem()
	session := sessions.Default(c)
	session.Set("captcha_answer", answer)
	session.Save()
	Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Title": "Sign up", "Error": message, "Captcha": question})
}

func (h *AuthHandler) Register(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	captchaInput := c.PostForm("captcha")

	// Validate Captcha
	session := sessions.Default(c)
	expectedAnswer, ok := session.Get("captcha_answer").(int)
	if !ok || utils.StringToInt(captchaInput) != expectedAnswer {
		h.registerError(c, "Wrong captcha answer.")
		return
	}
	// Clear captcha after use
	session.Delete("captcha_answer")
	session.Save()

	if !forms.ValidEmail(email) {
		h.registerError(c, "Enter a valid email address.")
		return
	}

	if len(password) < 6 {
		h.registerError(c, "Password must be at least 6 characters.")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		h.registerError(c, "Could not create your account. Please try again.")
		return
	}

	// Username defaults to the email local part
	user := models.User{
		Username: email[:strings.LastIndex(email, "@")],
		Email:    email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		h.registerError(c, "This email is already registered.")
		return
	}

	session.Set("user_id", user.ID)
	session.Save()

	Flash(c, "success", "Welcome! Your account has been created.")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Log in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Title": "Log in", "Error": "Wrong email or password."})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Title": "Log in", "Error": "Wrong email or password."})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
