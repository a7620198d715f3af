package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ishaan-Rai09/coffee-shop/models"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) models.User {
	user := models.User{Name: "Test User", Email: email, Password: "hash", IsAdmin: isAdmin}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// authAs stands in for the JWT middleware.
func authAs(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("is_admin", user.IsAdmin)
		c.Next()
	}
}

func setupRouter(db *gorm.DB, user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	orders := r.Group("/api/orders")
	orders.Use(authAs(user))
	{
		orders.POST("", CreateOrder(db))
		orders.GET("/myorders", GetMyOrders(db))
		orders.GET("/:id", GetOrderByID(db))
		orders.PUT("/:id/pay", PayOrder(db))
		orders.PUT("/:id/deliver", DeliverOrder(db))
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		OrderItems: []OrderItemInput{
			{Name: "Classic Espresso", Qty: 2, Price: 10, Product: 1},
			{Name: "Chocolate Chip Cookie", Qty: 1, Price: 5, Product: 2},
		},
		ShippingAddress: models.ShippingAddress{
			Address: "1 Roastery Lane", City: "Portland", PostalCode: "97201", Country: "USA",
		},
		PaymentMethod: "MetaMask",
		ItemsPrice:    25,
		TaxPrice:      2.5,
		ShippingPrice: 10,
		TotalPrice:    37.5,
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "user@example.com", false)
	r := setupRouter(db, user)

	req := sampleOrderRequest()
	req.OrderItems = nil
	w := doJSON(t, r, http.MethodPost, "/api/orders", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No order items")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateAndGetOrder(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "user@example.com", false)
	r := setupRouter(db, user)

	w := doJSON(t, r, http.MethodPost, "/api/orders", sampleOrderRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.OrderRef)
	assert.Equal(t, user.ID, created.UserID)
	assert.False(t, created.IsPaid)

	w = doJSON(t, r, http.MethodGet, "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Len(t, fetched.OrderItems, 2)
	assert.Equal(t, "Classic Espresso", fetched.OrderItems[0].Name)
	assert.Equal(t, 2, fetched.OrderItems[0].Qty)
	assert.Equal(t, 10.0, fetched.OrderItems[0].Price)
	assert.Equal(t, 37.5, fetched.TotalPrice)
	assert.Equal(t, "Portland", fetched.ShippingAddress.City)
	assert.Equal(t, user.Email, fetched.User.Email)
}

func TestGetOrderNotFound(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "user@example.com", false)
	r := setupRouter(db, user)

	w := doJSON(t, r, http.MethodGet, "/api/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestPayOrderLastWriteWins(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "user@example.com", false)
	r := setupRouter(db, user)

	w := doJSON(t, r, http.MethodPost, "/api/orders", sampleOrderRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	first := map[string]interface{}{
		"id": "0xaaa", "status": "COMPLETED", "update_time": "2026-01-01T00:00:00Z",
		"payer": map[string]string{"email_address": "user@example.com"},
	}
	w = doJSON(t, r, http.MethodPut, "/api/orders/1/pay", first)
	require.Equal(t, http.StatusOK, w.Code)

	second := map[string]interface{}{
		"id": "0xbbb", "status": "COMPLETED", "update_time": "2026-01-01T00:05:00Z",
		"payer": map[string]string{"email_address": "user@example.com"},
	}
	w = doJSON(t, r, http.MethodPut, "/api/orders/1/pay", second)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order, 1).Error)
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, "0xbbb", order.PaymentResult.TransactionID)
	assert.Equal(t, "user@example.com", order.PaymentResult.EmailAddress)
}

func TestPayOrderRequiresTransactionID(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "user@example.com", false)
	r := setupRouter(db, user)

	w := doJSON(t, r, http.MethodPost, "/api/orders", sampleOrderRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/1/pay", map[string]string{"status": "COMPLETED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliverOrder(t *testing.T) {
	db := setupDB(t)
	admin := createUser(t, db, "admin@example.com", true)
	r := setupRouter(db, admin)

	w := doJSON(t, r, http.MethodPost, "/api/orders", sampleOrderRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/1/deliver", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order, 1).Error)
	assert.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)
}

func TestGetMyOrdersReturnsOnlyOwn(t *testing.T) {
	db := setupDB(t)
	alice := createUser(t, db, "alice@example.com", false)
	bob := createUser(t, db, "bob@example.com", false)

	w := doJSON(t, setupRouter(db, alice), http.MethodPost, "/api/orders", sampleOrderRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, setupRouter(db, bob), http.MethodPost, "/api/orders", sampleOrderRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, setupRouter(db, alice), http.MethodGet, "/api/orders/myorders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, alice.ID, orders[0].UserID)
}
