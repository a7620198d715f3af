package userControllers

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

	"github.com/Ishaan-Rai09/coffee-shop/middleware"
	"github.com/Ishaan-Rai09/coffee-shop/models"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	users := r.Group("/api/users")
	{
		users.POST("", RegisterUser(db))
		users.POST("/login", AuthUser(db))
		users.GET("/profile", middleware.Protect, GetUserProfile(db))
		users.PUT("/profile", middleware.Protect, UpdateUserProfile(db))
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authPayload struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

func register(t *testing.T, r *gin.Engine) authPayload {
	w := doJSON(t, r, http.MethodPost, "/api/users", "", map[string]string{
		"name": "Test User", "email": "user@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var payload authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestRegisterIssuesToken(t *testing.T) {
	r, db := setupRouter(t)

	payload := register(t, r)
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "user@example.com", payload.Email)
	assert.False(t, payload.IsAdmin)

	// password is stored hashed and never serialized
	var user models.User
	require.NoError(t, db.First(&user, payload.ID).Error)
	assert.NotEqual(t, "password123", user.Password)
	assert.NotContains(t, user.Password, "password123")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := setupRouter(t)
	register(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", map[string]string{
		"name": "Other", "email": "user@example.com", "password": "password456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestLogin(t *testing.T) {
	r, _ := setupRouter(t)
	register(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/users/login", "", map[string]string{
		"email": "user@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var payload authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)
	register(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/users/login", "", map[string]string{
		"email": "user@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

// The issued token must round-trip through the auth middleware.
func TestProfileWithIssuedToken(t *testing.T) {
	r, _ := setupRouter(t)
	payload := register(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/users/profile", payload.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, payload.ID, user.ID)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestProfileWithoutToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r, db := setupRouter(t)
	payload := register(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/users/profile", payload.Token, map[string]string{
		"name": "Renamed User",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.First(&user, payload.ID).Error)
	assert.Equal(t, "Renamed User", user.Name)
	assert.Equal(t, "user@example.com", user.Email)
}
