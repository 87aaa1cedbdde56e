package model

import "time"

type Order struct {
	ID            int         `db:"id" json:"id"`
	UserID        int         `db:"user_id" json:"user_id"`
	Items         []OrderItem `json:"items"`
	Address       string      `db:"address" json:"address"`
	City          string      `db:"city" json:"city"`
	PostalCode    string      `db:"postal_code" json:"postal_code"`
	Country       string      `db:"country" json:"country"`
	PaymentMethod string      `db:"payment_method" json:"payment_method"`
	TotalPrice    float64     `db:"total_price" json:"total_price"`
	IsPaid        bool        `db:"is_paid" json:"is_paid"`
	PaidAt        *time.Time  `db:"paid_at" json:"paid_at"`
	IsDelivered   bool        `db:"is_delivered" json:"is_delivered"`
	DeliveredAt   *time.Time  `db:"delivered_at" json:"delivered_at"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`

	// Filled from the users table on joined reads, empty otherwise.
	UserName  string `db:"user_name" json:"user_name"`
	UserEmail string `db:"user_email" json:"user_email"`
}

// OrderItem is a denormalized snapshot of a product at purchase time.
type OrderItem struct {
	ID        int     `db:"id" json:"id"`
	OrderID   int     `db:"order_id" json:"order_id"`
	ProductID int     `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Image     string  `db:"image" json:"image"`
	Qty       int     `db:"qty" json:"qty"`
	Price     float64 `db:"price" json:"price"`
}
