package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the three storefront services. The bearer token lives in
// the attached Session and is sent on every protected call.
type Client struct {
	AuthURL    string
	ProductURL string
	OrderURL   string
	Session    *Session

	httpClient *http.Client
}

// New builds a client around a session. Base URLs carry no trailing slash,
// e.g. "http://localhost:5000".
func New(authURL, productURL, orderURL string, session *Session) *Client {
	return &Client{
		AuthURL:    authURL,
		ProductURL: productURL,
		OrderURL:   orderURL,
		Session:    session,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Product mirrors the catalog wire format.
type Product struct {
	ID           int     `json:"_id"`
	UserID       int     `json:"user"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
	ImageURL     string  `json:"imageUrl"`
}

// Order mirrors the order wire format.
type Order struct {
	ID              int             `json:"_id"`
	User            OrderUser       `json:"user"`
	OrderItems      []CartItem      `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type OrderUser struct {
	ID    int    `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type authReply struct {
	ID      int    `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

type errorReply struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Session != nil && c.Session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e errorReply
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, url, e.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, url, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates an account and stores the returned identity and token in
// the session.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	var reply authReply
	err := c.do(ctx, http.MethodPost, c.AuthURL+"/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &reply)
	if err != nil {
		return err
	}
	c.Session.Token = reply.Token
	c.Session.User = &Profile{ID: reply.ID, Name: reply.Name, Email: reply.Email}
	return nil
}

// Login authenticates and stores the returned identity and token in the
// session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var reply authReply
	err := c.do(ctx, http.MethodPost, c.AuthURL+"/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &reply)
	if err != nil {
		return err
	}
	c.Session.Token = reply.Token
	c.Session.User = &Profile{ID: reply.ID, Name: reply.Name, Email: reply.Email, IsAdmin: reply.IsAdmin}
	return nil
}

// Products fetches the whole catalog.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, c.ProductURL+"/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one catalog entry.
func (c *Client) Product(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/api/products/%d", c.ProductURL, id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Checkout places an order from the session's cart, shipping address and
// payment method, then clears the cart on success.
func (c *Client) Checkout(ctx context.Context) (*Order, error) {
	payload := map[string]any{
		"orderItems":      c.Session.Cart,
		"shippingAddress": c.Session.ShippingAddress,
		"paymentMethod":   c.Session.PaymentMethod,
		"totalPrice":      c.Session.Total(),
	}
	var order Order
	if err := c.do(ctx, http.MethodPost, c.OrderURL+"/api/orders", payload, &order); err != nil {
		return nil, err
	}
	c.Session.ClearCart()
	return &order, nil
}

// MyOrders lists the signed-in user's orders.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, c.OrderURL+"/api/orders/myorders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id int) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/api/orders/%d", c.OrderURL, id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
