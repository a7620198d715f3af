package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Ishaan-Rai09/coffee-shop/controllers/order"
	"github.com/Ishaan-Rai09/coffee-shop/middleware"
)

// SetupOrderRoutes registers all "/api/orders" endpoints. All require auth.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.Protect)
	{
		// Create a new order
		orders.POST("", orderControllers.CreateOrder(db))

		// Fetch orders for the authenticated user
		orders.GET("/myorders", orderControllers.GetMyOrders(db))

		// websocket endpoint for real-time order updates (admin dashboard)
		orders.GET("/ws", middleware.AdminOnly, orderControllers.OrderWebSocketHandler)

		// Fetch a single order
		orders.GET("/:id", orderControllers.GetOrderByID(db))

		// Record a payment confirmation
		orders.PUT("/:id/pay", orderControllers.PayOrder(db))

		// Mark an order delivered
		orders.PUT("/:id/deliver", middleware.AdminOnly, orderControllers.DeliverOrder(db))
	}
}
