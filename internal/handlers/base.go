package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"devshelf/internal/middleware"
)

// Render helper to inject common variables like 'current user' and pop
// pending flash notices for the layout.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	// Pop flashes. Reading consumes them, so the session must be saved.
	session := sessions.Default(c)
	successes := session.Flashes("success")
	errs := session.Flashes("error")
	if len(successes) > 0 || len(errs) > 0 {
		session.Save()
	}
	obj["SuccessFlashes"] = successes
	obj["ErrorFlashes"] = errs

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Flash queues a one-shot notice for the next rendered page.
// level is "success" or "error".
func Flash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, level)
	session.Save()
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}
