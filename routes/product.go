package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Ishaan-Rai09/coffee-shop/controllers/product"
	"github.com/Ishaan-Rai09/coffee-shop/middleware"
)

// SetupProductRoutes registers all "/api/products" endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		// ──────────────── Public Catalog ────────────────
		products.GET("", productcontroller.GetProducts(db))

		// ──────────────── Admin Product Management ────────────────
		admin := products.Group("")
		admin.Use(middleware.Protect, middleware.AdminOnly)
		{
			admin.POST("", productcontroller.CreateProduct(db))
			admin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
			admin.PUT("/:id", productcontroller.UpdateProduct(db))
			admin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		products.GET("/:id", productcontroller.GetProductByID(db))
	}
}
