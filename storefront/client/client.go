// Package client wraps the coffee-shop REST API. It attaches the
// bearer token from the session record when one exists and surfaces
// non-2xx responses as *APIError carrying the server's message. No
// retries, no backoff, no token refresh.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Ishaan-Rai09/coffee-shop/models"
	"github.com/Ishaan-Rai09/coffee-shop/storefront/session"
)

type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
}

func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{},
		sessions: sessions,
	}
}

// APIError carries the server's message payload for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	info, err := session.LoadUserInfo(ctx, c.sessions)
	if err != nil {
		return err
	}
	if info != nil && info.Token != "" {
		req.Header.Set("Authorization", "Bearer "+info.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &payload) != nil || payload.Message == "" {
			payload.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// -------- Products --------

type ProductList struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

func (c *Client) GetProducts(ctx context.Context, pageNumber, category string) (*ProductList, error) {
	params := url.Values{}
	if pageNumber != "" {
		params.Set("pageNumber", pageNumber)
	}
	if category != "" {
		params.Set("category", category)
	}
	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list ProductList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// -------- Users --------

// Login authenticates and persists the returned session record.
func (c *Client) Login(ctx context.Context, email, password string) (*session.UserInfo, error) {
	body := map[string]string{"email": email, "password": password}
	var info session.UserInfo
	if err := c.do(ctx, http.MethodPost, "/api/users/login", body, &info); err != nil {
		return nil, err
	}
	if err := session.SaveUserInfo(ctx, c.sessions, info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Register creates an account and persists the returned session record.
func (c *Client) Register(ctx context.Context, name, email, password string) (*session.UserInfo, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var info session.UserInfo
	if err := c.do(ctx, http.MethodPost, "/api/users", body, &info); err != nil {
		return nil, err
	}
	if err := session.SaveUserInfo(ctx, c.sessions, info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Logout drops the persisted session record.
func (c *Client) Logout(ctx context.Context) error {
	return session.ClearUserInfo(ctx, c.sessions)
}

func (c *Client) GetUserProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateUserProfile updates the profile and refreshes the persisted
// session record with the response.
func (c *Client) UpdateUserProfile(ctx context.Context, update ProfileUpdate) (*session.UserInfo, error) {
	var info session.UserInfo
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", update, &info); err != nil {
		return nil, err
	}
	if err := session.SaveUserInfo(ctx, c.sessions, info); err != nil {
		return nil, err
	}
	return &info, nil
}

// -------- Orders --------

type OrderItemInput struct {
	Name    string  `json:"name"`
	Qty     int     `json:"qty"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Product uint    `json:"product"`
}

type OrderRequest struct {
	OrderItems      []OrderItemInput       `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// PaymentConfirmation is forwarded verbatim to the pay-order endpoint.
type PaymentConfirmation struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time"`
	Payer      struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetMyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/myorders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) PayOrder(ctx context.Context, id uint, result PaymentConfirmation) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/pay", id), result, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Blog --------

type BlogPostList struct {
	Posts []models.BlogPost `json:"posts"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
	Total int64             `json:"total"`
}

func (c *Client) GetBlogPosts(ctx context.Context, pageNumber, category, keyword string) (*BlogPostList, error) {
	params := url.Values{}
	if pageNumber != "" {
		params.Set("pageNumber", pageNumber)
	}
	if category != "" {
		params.Set("category", category)
	}
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	path := "/api/blog"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list BlogPostList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.do(ctx, http.MethodGet, "/api/blog/"+url.PathEscape(slug), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) GetBlogCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/blog/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
