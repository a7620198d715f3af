package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Ishaan-Rai09/coffee-shop/controllers/user"
	"github.com/Ishaan-Rai09/coffee-shop/middleware"
)

// SetupUserRoutes registers all "/api/users" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		// ──────────────── Registration & Login ────────────────
		users.POST("", userControllers.RegisterUser(db))
		users.POST("/login", userControllers.AuthUser(db))

		// ──────────────── Profile (JWT‐protected) ────────────────
		users.GET("/check-auth", middleware.Protect, userControllers.CheckAuth(db))
		users.GET("/profile", middleware.Protect, userControllers.GetUserProfile(db))
		users.PUT("/profile", middleware.Protect, userControllers.UpdateUserProfile(db))
	}
}
