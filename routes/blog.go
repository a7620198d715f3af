package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	blogControllers "github.com/Ishaan-Rai09/coffee-shop/controllers/blog"
	"github.com/Ishaan-Rai09/coffee-shop/middleware"
)

// SetupBlogRoutes registers all "/api/blog" endpoints.
func SetupBlogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	blog := api.Group("/blog")
	{
		// ──────────────── Public Blog ────────────────
		blog.GET("", blogControllers.GetBlogPosts(db))
		blog.GET("/categories", blogControllers.GetBlogCategories(db))
		blog.GET("/:slug", blogControllers.GetBlogPostBySlug(db))

		// ──────────────── Admin Blog Management ────────────────
		admin := blog.Group("")
		admin.Use(middleware.Protect, middleware.AdminOnly)
		{
			admin.POST("", blogControllers.CreateBlogPost(db))
			admin.PUT("/:id", blogControllers.UpdateBlogPost(db))
			admin.DELETE("/:id", blogControllers.DeleteBlogPost(db))
		}
	}
}
