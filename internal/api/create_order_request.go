package api

// swagger:model api.CreateOrderRequest
type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" validate:"dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required" example:"PayPal"`
	TotalPrice      float64                `json:"totalPrice" validate:"gte=0" example:"119.98"`
}

// swagger:model api.OrderItemRequest
type OrderItemRequest struct {
	Product int     `json:"product" validate:"required" example:"1"`
	Name    string  `json:"name" validate:"required" example:"Keyboard"`
	Image   string  `json:"image" validate:"required" example:"https://example.com/kb.png"`
	Qty     int     `json:"qty" validate:"required,gt=0" example:"2"`
	Price   float64 `json:"price" validate:"gte=0" example:"59.99"`
}

// swagger:model api.ShippingAddressRequest
type ShippingAddressRequest struct {
	Address    string `json:"address" validate:"required" example:"1 Main St"`
	City       string `json:"city" validate:"required" example:"Springfield"`
	PostalCode string `json:"postalCode" validate:"required" example:"12345"`
	Country    string `json:"country" validate:"required" example:"USA"`
}
