package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ishaan-Rai09/coffee-shop/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	Name    string  `json:"name" binding:"required"`
	Qty     int     `json:"qty" binding:"required,min=1"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Product uint    `json:"product"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemInput       `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

type PayOrderRequest struct {
	TransactionID string `json:"id" binding:"required"`
	Status        string `json:"status"`
	UpdateTime    string `json:"update_time"`
	EmailAddress  string `json:"email_address"`
	Payer         struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if len(req.OrderItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No order items"})
			return
		}

		items := make([]models.OrderItem, 0, len(req.OrderItems))
		for _, item := range req.OrderItems {
			items = append(items, models.OrderItem{
				ProductID: item.Product,
				Name:      item.Name,
				Qty:       item.Qty,
				Image:     item.Image,
				Price:     item.Price,
			})
		}

		order := models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			OrderItems:      items,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			ItemsPrice:      req.ItemsPrice,
			TaxPrice:        req.TaxPrice,
			ShippingPrice:   req.ShippingPrice,
			TotalPrice:      req.TotalPrice,
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("OrderItems").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/pay
//
// Re-invocation overwrites the previous payment result with the latest
// values. There is no double-pay guard.
func PayOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}

		var req PayOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		email := req.Payer.EmailAddress
		if email == "" {
			email = req.EmailAddress
		}

		now := time.Now()
		order.IsPaid = true
		order.PaidAt = &now
		order.PaymentResult = models.PaymentResult{
			TransactionID: req.TransactionID,
			Status:        req.Status,
			UpdateTime:    req.UpdateTime,
			EmailAddress:  email,
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/deliver (admin)
func DeliverOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}

		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now

		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders/myorders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("OrderItems").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
