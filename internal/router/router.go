package router

import (
	"devshelf/internal/handlers"
	"devshelf/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	contactHandler := handlers.NewContactHandler()
	resourceHandler := handlers.NewResourceHandler()
	categoryHandler := handlers.NewCategoryHandler()

	// Public Routes
	r.GET("/", resourceHandler.Index)                    // published categories
	r.GET("/category/:id", resourceHandler.CategoryDetail) // category + approved resources
	r.GET("/search", resourceHandler.Search)             // q / in / sort_by
	r.GET("/contact", contactHandler.Show)
	r.POST("/contact", contactHandler.Submit)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/add", resourceHandler.ShowSubmit)
		authorized.POST("/add", resourceHandler.Submit)
		authorized.GET("/edit/:id", resourceHandler.ShowEdit)
		authorized.POST("/edit/:id", resourceHandler.Edit)
		authorized.POST("/delete/:id", resourceHandler.Delete)
		authorized.POST("/favorite/:id", resourceHandler.Favorite)
		authorized.GET("/favorites", resourceHandler.ListFavorites)
		authorized.GET("/suggest", categoryHandler.ShowSuggest)
		authorized.POST("/suggest", categoryHandler.Suggest)
	}
}
