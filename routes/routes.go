package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up all /api route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupProductRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupBlogRoutes(api, db)
}
