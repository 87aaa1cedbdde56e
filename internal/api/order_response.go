package api

import "time"

// swagger:model api.OrderResponse
type OrderResponse struct {
	ID              int                     `json:"_id" example:"1"`
	User            OrderUserResponse       `json:"user"`
	OrderItems      []OrderItemResponse     `json:"orderItems"`
	ShippingAddress ShippingAddressResponse `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod" example:"PayPal"`
	TotalPrice      float64                 `json:"totalPrice" example:"119.98"`
	IsPaid          bool                    `json:"isPaid" example:"false"`
	PaidAt          *time.Time              `json:"paidAt,omitempty"`
	IsDelivered     bool                    `json:"isDelivered" example:"false"`
	DeliveredAt     *time.Time              `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time               `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// OrderUserResponse mirrors the purchaser join: name/email are filled on
// single-order reads, name only on the admin listing, id alone elsewhere.
// swagger:model api.OrderUserResponse
type OrderUserResponse struct {
	ID    int    `json:"_id" example:"1"`
	Name  string `json:"name,omitempty" example:"Alice"`
	Email string `json:"email,omitempty" example:"alice@example.com"`
}

// swagger:model api.OrderItemResponse
type OrderItemResponse struct {
	Product int     `json:"product" example:"1"`
	Name    string  `json:"name" example:"Keyboard"`
	Image   string  `json:"image" example:"https://example.com/kb.png"`
	Qty     int     `json:"qty" example:"2"`
	Price   float64 `json:"price" example:"59.99"`
}

// swagger:model api.ShippingAddressResponse
type ShippingAddressResponse struct {
	Address    string `json:"address" example:"1 Main St"`
	City       string `json:"city" example:"Springfield"`
	PostalCode string `json:"postalCode" example:"12345"`
	Country    string `json:"country" example:"USA"`
}
