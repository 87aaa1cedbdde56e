// Package client is a Go consumer of the three storefront services. It
// replaces the browser app's ambient local-storage state with an explicit
// Session store whose load/save boundaries sit at application start and stop.
package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Session holds the bearer token, the signed-in profile and the cart.
type Session struct {
	Token           string          `json:"token,omitempty"`
	User            *Profile        `json:"user,omitempty"`
	Cart            []CartItem      `json:"cart"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
}

// Profile is the identity returned by register/login. The IsAdmin flag is
// cosmetic on the client side; every admin check is enforced by the services.
type Profile struct {
	ID      int    `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type CartItem struct {
	Product int     `json:"product"`
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Qty     int     `json:"qty"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// LoadSession reads a session file. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, err
	}
	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the session to disk.
func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// AddItem puts an item in the cart. Adding a product already present
// replaces its line rather than accumulating quantity.
func (s *Session) AddItem(item CartItem) {
	for i := range s.Cart {
		if s.Cart[i].Product == item.Product {
			s.Cart[i] = item
			return
		}
	}
	s.Cart = append(s.Cart, item)
}

// RemoveItem drops a product from the cart.
func (s *Session) RemoveItem(productID int) {
	for i := range s.Cart {
		if s.Cart[i].Product == productID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return
		}
	}
}

// Total is the cart total.
func (s *Session) Total() float64 {
	var total float64
	for _, item := range s.Cart {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// ClearCart empties the cart, keeping identity and checkout fields.
func (s *Session) ClearCart() {
	s.Cart = nil
}

// Logout drops identity and cart state.
func (s *Session) Logout() {
	s.Token = ""
	s.User = nil
	s.Cart = nil
}
