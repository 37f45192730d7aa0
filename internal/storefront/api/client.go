// Package api is the HTTP client of the storefront backend. It implements the
// catalog source and the persistence boundaries used by the storefront controllers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/storefront"
)

var (
	_ storefront.CatalogSource = (*Client)(nil)
	_ storefront.CartStore     = (*Client)(nil)
	_ storefront.FavoriteStore = (*Client)(nil)
)

// Client talks to the storefront HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", storefront.ErrValidation, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", storefront.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", storefront.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: %s (HTTP %d)", kindOf(resp.StatusCode), message, resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: decode response: %v", storefront.ErrTransport, decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decode response data: %v", storefront.ErrTransport, err)
		}
	}
	return nil
}

// kindOf maps a non-2xx status onto the storefront error kinds
func kindOf(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return storefront.ErrUnauthorized
	case status == http.StatusNotFound:
		return storefront.ErrNotFound
	case status == http.StatusTooManyRequests:
		return storefront.ErrTransport
	case status >= 400 && status < 500:
		return storefront.ErrValidation
	default:
		return storefront.ErrTransport
	}
}

// Catalog

func (c *Client) FetchPage(ctx context.Context, category string, page, limit int) ([]storefront.Product, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if category != "" {
		query.Set("category", category)
	}

	var result struct {
		Products []storefront.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/catalog/products", query, "", nil, &result); err != nil {
		return nil, err
	}
	return result.Products, nil
}

func (c *Client) CountProducts(ctx context.Context, category string) (int, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var result struct {
		Total int `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/catalog/products/count", query, "", nil, &result); err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var result struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/catalog/categories", nil, "", nil, &result); err != nil {
		return nil, err
	}
	return result.Categories, nil
}

// Product fetches a single catalog entry
func (c *Client) Product(ctx context.Context, id int) (*storefront.Product, error) {
	var product storefront.Product
	if err := c.do(ctx, http.MethodGet, "/api/catalog/products/"+strconv.Itoa(id), nil, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Cart

func (c *Client) ListCart(ctx context.Context, s storefront.Session) ([]storefront.CartLine, error) {
	query := url.Values{}
	query.Set("userId", strconv.FormatUint(uint64(s.UserID), 10))

	var result struct {
		Items []storefront.CartLine `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cart", query, s.Token, nil, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *Client) AddCartLine(ctx context.Context, s storefront.Session, line storefront.NewCartLine) (*storefront.CartLine, error) {
	body := struct {
		UserID uint `json:"user_id"`
		storefront.NewCartLine
	}{UserID: s.UserID, NewCartLine: line}

	var created storefront.CartLine
	if err := c.do(ctx, http.MethodPost, "/api/cart", nil, s.Token, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCartLine(ctx context.Context, s storefront.Session, lineID uint, quantity int) (*storefront.CartLine, error) {
	body := map[string]interface{}{
		"cart_item_id": lineID,
		"quantity":     quantity,
	}

	var updated storefront.CartLine
	if err := c.do(ctx, http.MethodPatch, "/api/cart", nil, s.Token, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) RemoveCartLine(ctx context.Context, s storefront.Session, lineID uint) error {
	query := url.Values{}
	query.Set("cartItemId", strconv.FormatUint(uint64(lineID), 10))
	return c.do(ctx, http.MethodDelete, "/api/cart", query, s.Token, nil, nil)
}

// Favorites

func (c *Client) ListFavorites(ctx context.Context, s storefront.Session) ([]storefront.FavoriteItem, error) {
	var result struct {
		Items []storefront.FavoriteItem `json:"favorite_items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/favorite", nil, s.Token, nil, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *Client) AddFavorite(ctx context.Context, s storefront.Session, item storefront.NewFavorite) (*storefront.FavoriteItem, error) {
	var created storefront.FavoriteItem
	if err := c.do(ctx, http.MethodPost, "/api/favorite", nil, s.Token, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, s storefront.Session, favoriteID uint) error {
	query := url.Values{}
	query.Set("id", strconv.FormatUint(uint64(favoriteID), 10))
	return c.do(ctx, http.MethodDelete, "/api/favorite", query, s.Token, nil, nil)
}

// Accounts

// User is the public profile of an account
type User struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

// ProfileUpdate carries the profile fields to change; nil fields stay as they are
type ProfileUpdate struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// Register creates an account
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, "", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, email, password string) (storefront.Session, *User, error) {
	body := map[string]string{"email": email, "password": password}

	var result struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, "", body, &result); err != nil {
		return storefront.Session{}, nil, err
	}
	return storefront.Session{UserID: result.User.ID, Token: result.Token}, &result.User, nil
}

// Profile returns the session user's profile
func (c *Client) Profile(ctx context.Context, s storefront.Session) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, s.Token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the given profile fields
func (c *Client) UpdateProfile(ctx context.Context, s storefront.Session, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/api/profile", nil, s.Token, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Orders

// OrderItem is one line of a placed order
type OrderItem struct {
	ProductID int             `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is a placed order
type Order struct {
	OrderID       string          `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Checkout places an order for the whole cart
func (c *Client) Checkout(ctx context.Context, s storefront.Session, paymentMethod string) (*Order, error) {
	body := map[string]string{"payment_method": paymentMethod}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/checkout", nil, s.Token, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists the session user's orders, newest first
func (c *Client) Orders(ctx context.Context, s storefront.Session) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, s.Token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order tracks one order
func (c *Client) Order(ctx context.Context, s storefront.Session, orderID string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, s.Token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
